// Package vectorspace is a small, exact-precision vector toolkit for
// coordinate arithmetic and classical analytic geometry.
//
// What is in the box?
//
//	• Exact arithmetic: decimal coordinates (default 30 significant digits),
//	  so long chains of additions do not drift
//	• Geometry: magnitude, normalization, dot and cross products, angles
//	• Predicates: zero, parallel and orthogonal tests under a tolerance
//	• Decomposition: components parallel and orthogonal to a basis
//	• Areas: parallelogram and triangle spanned by two vectors
//
// Under the hood, everything is organized under two subpackages:
//
//	numeric/  exact-precision decimal backend (apd) and element-wise kernels
//	vector/   the immutable Vector type and its operations
//
// Quick example:
//
//	a, _ := vector.New([]int{1, 2, 3})
//	b, _ := vector.New([]int{4, 5, 6})
//	c, _ := a.CrossProduct(b) // Vector: (-3, 6, -3)
//
// Vectors are immutable and safe to share between goroutines. Failures are
// sentinel errors (vector.ErrZeroVector, vector.ErrDimensionMismatch, ...)
// matched with errors.Is.
//
//	go get github.com/katalvlaran/vectorspace
package vectorspace
