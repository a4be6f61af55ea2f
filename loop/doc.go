// Package loop provides allocation-free, dimension-specialized loops over a
// structure.Range.
//
//   - Loop1, Loop2, Loop3: nested for-loops for ranks 1..3 in RowMajor or
//     ColumnMajor order, Forward or Backward.
//   - LoopN: any rank, any structure.Precedence.
//   - Walk: coordinates fused with buffer offsets of a structure.Structure.
//
// Every loop offers ForEach plus the short-circuiting AnyMatch, AllMatch and
// NoneMatch. On an empty range the predicate is never called; AnyMatch
// returns false and AllMatch/NoneMatch return true.
package loop
