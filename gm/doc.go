// Package gm (stands for geometry math) provides the geometry primitives used
// by scale maps.
//
// It includes a 2d vector type called Vec, an axis-aligned rectangle Rect and
// an axis-aligned affine transform named Affine. FuzzyCompare compares values
// with a tolerance relative to an interval size.
package gm
