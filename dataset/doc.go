// SPDX-License-Identifier: MIT

// Package dataset produces and persists DAP instances (n, G, D).
//
// G is an n×n center→leaf weight matrix with integer entries in [1,100].
// D is a symmetric leaf→leaf matrix with a zero diagonal, drawn by one of
// four strategies:
//
//	uniform   every off-diagonal entry is 1
//	random    independent integers in [0,100]
//	distance  rounded Euclidean distance between random points of [0,100]²
//	disjoint  items split into two random classes; 1 across, 0 within
//
// Generation is deterministic for a given seed. Instances are stored as
// YAML documents and named "<strategy>_div_<n>_<i>".
package dataset
