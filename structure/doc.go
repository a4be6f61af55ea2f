// Package structure addresses N-dimensional rectangular data stored in one
// flat, linearly addressed buffer.
//
// The package provides:
//
//   - Value types: Extent (shape + band count), Index (coordinate), Stride.
//   - Layout: the affine coordinate <-> offset map (Affine), plus a gather
//     variant (Indexed) produced by Structure.Induced.
//   - Structure: the bounds-checked Extent+Layout pair with Offset and Index.
//   - Views and projections: View, Downsample, Transpose, Permute, Project,
//     Row, Column, Slice, SelectBand, Induced. None of them copies data.
//   - Range, Precedence and the odometer Iterator that enumerates every
//     coordinate of a Range in a chosen order, forward or backward.
//
// All values except Iterator are immutable and safe for concurrent use. The
// package never allocates or owns element storage; see package grid for a
// buffer-backed wrapper.
//
// Quick example (3×4, row-major):
//
//	e, _ := structure.NewExtent(3, 4)
//	s := structure.Of(e)
//	off, _ := s.Offset(1, 2) // 6
//	idx, _ := s.Index(6)     // (1,2)
package structure
