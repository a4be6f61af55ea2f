// SPDX-License-Identifier: MIT
// Package structure_test contains shared fixtures for the structure tests.

package structure_test

import (
	"iter"
	"testing"

	"github.com/katalvlaran/ndstruct/structure"
)

// MustExtent builds a single-band Extent or fails the test.
func MustExtent(t *testing.T, sizes ...int) structure.Extent {
	t.Helper()
	e, err := structure.NewExtent(sizes...)
	if err != nil {
		t.Fatalf("NewExtent(%v): %v", sizes, err)
	}

	return e
}

// MustBanded builds a banded Extent or fails the test.
func MustBanded(t *testing.T, bands int, sizes ...int) structure.Extent {
	t.Helper()
	e, err := structure.NewBandedExtent(bands, sizes...)
	if err != nil {
		t.Fatalf("NewBandedExtent(%d,%v): %v", bands, sizes, err)
	}

	return e
}

// MustRange builds a Range from raw start components and sizes.
func MustRange(t *testing.T, start []int, sizes ...int) structure.Range {
	t.Helper()
	r, err := structure.NewRange(structure.NewIndex(start...), MustExtent(t, sizes...))
	if err != nil {
		t.Fatalf("NewRange(%v,%v): %v", start, sizes, err)
	}

	return r
}

// Collect drains seq into raw component slices, which go-cmp can diff.
func Collect(seq iter.Seq[structure.Index]) [][]int {
	var out [][]int
	for x := range seq {
		out = append(out, x.Components())
	}

	return out
}

// Reversed returns a reversed copy; nil stays nil.
func Reversed(in [][]int) [][]int {
	if in == nil {
		return nil
	}
	out := make([][]int, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}

	return out
}

// Offsets maps every coordinate of s (forward order) through s.Offset.
func Offsets(t *testing.T, s structure.Structure) []int {
	t.Helper()
	var out []int
	for x := range s.Range().Forward() {
		off, err := s.Offset(x.Components()...)
		if err != nil {
			t.Fatalf("%v.Offset(%v): %v", s, x, err)
		}
		out = append(out, off)
	}

	return out
}
