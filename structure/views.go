// SPDX-License-Identifier: MIT

// Package structure - views and projections.
//
// Purpose:
//   - Reinterpret a Structure without touching any buffer: only Extent and
//     Layout are recomputed.
//   - Composition law for range views: V.Offset(c) == S.Offset(r.Start()+c).
//
// Behavior highlights:
//   - All transforms require an Affine layout; an Indexed source yields
//     ErrUnsupportedTransform rather than an incorrect mapping.
//   - Error priority: dimensionality mismatch -> shape -> bounds -> unsupported.
//
// Complexity quicksheet:
//   - Every transform is O(n) in the rank; none allocates per element.

package structure

const (
	ctxView       = "Structure.View"
	ctxDownsample = "Structure.Downsample"
	ctxPermute    = "Structure.Permute"
	ctxProject    = "Structure.Project"
	ctxBand       = "Structure.SelectBand"
	ctxInduced    = "Structure.Induced"
)

// affine returns the canonical layout or ErrUnsupportedTransform.
func (s Structure) affine(op string) (Affine, error) {
	a, ok := s.layout.(Affine)
	if !ok {
		return Affine{}, opErrorf(op, s.layout, ErrUnsupportedTransform)
	}

	return a, nil
}

// View returns the sub-structure addressing r.
//
// Implementation:
//   - start'[i] = start[i] + stride[i]*r.start[i]; stride and base unchanged.
//   - extent' = r.extent with the source band count.
//
// Errors:
//   - ErrDimensionalityMismatch, ErrIndexOutOfBounds (r does not fit),
//     ErrUnsupportedTransform.
func (s Structure) View(r Range) (Structure, error) {
	if r.Dimensionality() != s.Dimensionality() {
		return Structure{}, opErrorf(ctxView, r, ErrDimensionalityMismatch)
	}
	if !r.Within(s.extent) {
		return Structure{}, opErrorf(ctxView, r, ErrIndexOutOfBounds)
	}
	a, err := s.affine(ctxView)
	if err != nil {
		return Structure{}, err
	}
	start := make([]int, len(a.start))
	for i := range start {
		start[i] = a.start[i] + a.stride[i]*r.start.c[i]
	}

	return Structure{
		extent: mustExtent(s.extent.bands, r.extent.sizes),
		layout: newAffine(start, cloneInts(a.stride), a.base),
	}, nil
}

// Downsample keeps every k[i]-th coordinate along each dimension.
// extent'[i] = ceil(extent[i]/k[i]) (0 stays 0), stride'[i] = stride[i]*k[i].
//
// Errors:
//   - ErrDimensionalityMismatch, ErrInvalidShape (stride overflow),
//     ErrUnsupportedTransform.
func (s Structure) Downsample(k Stride) (Structure, error) {
	if k.Dimensionality() != s.Dimensionality() {
		return Structure{}, opErrorf(ctxDownsample, k, ErrDimensionalityMismatch)
	}
	a, err := s.affine(ctxDownsample)
	if err != nil {
		return Structure{}, err
	}
	stride, err := a.Stride().Scale(k)
	if err != nil {
		return Structure{}, opErrorf(ctxDownsample, k, err)
	}
	sizes := make([]int, len(k.s))
	for i := range sizes {
		sizes[i] = ceilDiv(s.extent.sizes[i], k.s[i])
	}

	return Structure{
		extent: mustExtent(s.extent.bands, sizes),
		layout: newAffine(cloneInts(a.start), stride.s, a.base),
	}, nil
}

// Transpose swaps the two dimensions of a rank-2 Structure. Transposing twice
// yields a Structure Equal to the original.
// Errors: ErrDimensionalityMismatch for rank != 2, ErrUnsupportedTransform.
func (s Structure) Transpose() (Structure, error) {
	if s.Dimensionality() != 2 {
		return Structure{}, opErrorf("Structure.Transpose", s.extent, ErrDimensionalityMismatch)
	}

	return s.Permute(1, 0)
}

// Permute reorders dimensions: dimension i of the result is dimension major[i]
// of s.
// Errors: ErrDimensionalityMismatch, ErrInvalidPrecedence, ErrUnsupportedTransform.
func (s Structure) Permute(major ...int) (Structure, error) {
	if len(major) != s.Dimensionality() {
		return Structure{}, opErrorf(ctxPermute, major, ErrDimensionalityMismatch)
	}
	p, err := NewPrecedence(major...)
	if err != nil {
		return Structure{}, err
	}
	a, err := s.affine(ctxPermute)
	if err != nil {
		return Structure{}, err
	}
	n := len(p.major)
	sizes, start, stride := make([]int, n), make([]int, n), make([]int, n)
	for i, d := range p.major {
		sizes[i] = s.extent.sizes[d]
		start[i] = a.start[d]
		stride[i] = a.stride[d]
	}

	return Structure{
		extent: mustExtent(s.extent.bands, sizes),
		layout: newAffine(start, stride, a.base),
	}, nil
}

// Project fixes dimension dim at coordinate at and returns the rank-(n-1)
// Structure over the remaining dimensions. The fixed coordinate's contribution
// is folded into the layout base, so the result's origin is the flat offset of
// the fixed coordinate in s.
//
// Errors:
//   - ErrDimensionalityMismatch when dim is not a dimension of s.
//   - ErrIndexOutOfBounds when at is outside [0, extent[dim]).
//   - ErrUnsupportedTransform for rank-1 sources or non-affine layouts.
func (s Structure) Project(dim, at int) (Structure, error) {
	n := s.Dimensionality()
	if dim < 0 || dim >= n {
		return Structure{}, opErrorf(ctxProject, []int{dim, at}, ErrDimensionalityMismatch)
	}
	if at < 0 || at >= s.extent.sizes[dim] {
		return Structure{}, opErrorf(ctxProject, []int{dim, at}, ErrIndexOutOfBounds)
	}
	if n == 1 {
		return Structure{}, opErrorf(ctxProject, []int{dim, at}, ErrUnsupportedTransform)
	}
	a, err := s.affine(ctxProject)
	if err != nil {
		return Structure{}, err
	}
	sizes := make([]int, 0, n-1)
	start := make([]int, 0, n-1)
	stride := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i == dim {
			continue
		}
		sizes = append(sizes, s.extent.sizes[i])
		start = append(start, a.start[i])
		stride = append(stride, a.stride[i])
	}

	return Structure{
		extent: mustExtent(s.extent.bands, sizes),
		layout: newAffine(start, stride, a.base+a.start[dim]+at*a.stride[dim]),
	}, nil
}

// Row projects row i of a rank-2 Structure.
func (s Structure) Row(i int) (Structure, error) {
	if s.Dimensionality() != 2 {
		return Structure{}, opErrorf("Structure.Row", i, ErrDimensionalityMismatch)
	}

	return s.Project(0, i)
}

// Column projects column j of a rank-2 Structure.
func (s Structure) Column(j int) (Structure, error) {
	if s.Dimensionality() != 2 {
		return Structure{}, opErrorf("Structure.Column", j, ErrDimensionalityMismatch)
	}

	return s.Project(1, j)
}

// Slice projects slice k (dimension 0) of a rank-3 Structure.
func (s Structure) Slice(k int) (Structure, error) {
	if s.Dimensionality() != 3 {
		return Structure{}, opErrorf("Structure.Slice", k, ErrDimensionalityMismatch)
	}

	return s.Project(0, k)
}

// SelectBand returns a single-band Structure addressing band b of s.
// Errors: ErrIndexOutOfBounds, ErrUnsupportedTransform.
func (s Structure) SelectBand(b int) (Structure, error) {
	if b < 0 || b >= s.extent.bands {
		return Structure{}, opErrorf(ctxBand, b, ErrIndexOutOfBounds)
	}
	a, err := s.affine(ctxBand)
	if err != nil {
		return Structure{}, err
	}

	return Structure{
		extent: mustExtent(1, s.extent.sizes),
		layout: newAffine(cloneInts(a.start), cloneInts(a.stride), a.base+b),
	}, nil
}

// Induced selects rows along dimension 0 without copying: coordinate
// (i, rest...) of the result addresses (rows[i], rest...) of s. Duplicates are
// allowed. The result has an Indexed layout, so further transforms on it
// return ErrUnsupportedTransform.
//
// Errors:
//   - ErrIndexOutOfBounds for a row outside [0, extent[0]).
//   - ErrInvalidShape when the selected cell count overflows.
//   - ErrUnsupportedTransform for non-affine sources.
func (s Structure) Induced(rows []int) (Structure, error) {
	for _, r := range rows {
		if r < 0 || r >= s.extent.sizes[0] {
			return Structure{}, opErrorf(ctxInduced, rows, ErrIndexOutOfBounds)
		}
	}
	a, err := s.affine(ctxInduced)
	if err != nil {
		return Structure{}, err
	}
	sizes := s.extent.Sizes()
	sizes[0] = len(rows)
	e, err := NewBandedExtent(s.extent.bands, sizes...)
	if err != nil {
		return Structure{}, opErrorf(ctxInduced, rows, err)
	}

	return Structure{
		extent: e,
		layout: Indexed{inner: a, innerSizes: s.extent.Sizes(), rows: cloneInts(rows)},
	}, nil
}
