// Package grid pairs a structure.Structure with flat element storage.
//
// A Buffer holds elements; the Structure decides which offsets a coordinate
// reaches. Views (View, Transpose, Row, Column, Downsample, Band) share the
// buffer, so writes through any of them are visible through all of them.
// Materialize produces an independent dense copy.
//
// Wrapper types for specific element kinds build on Derive and a Factory so
// every view they return keeps the wrapper's own type.
package grid
