// SPDX-License-Identifier: MIT

// Package store persists experiment outputs as small CSV files below a root
// directory:
//
//	<root>/pareto/approx/<instance>.csv   frontier points (cost,diversity)
//	<root>/pareto/exact/<instance>.csv    reference frontier points
//	<root>/pareto/stats/<name>.csv        numeric tables
//	<root>/timing/approx/<size>.csv       one duration per line, appended
//
// Paths passed to the methods are slash-separated and relative to the root;
// the ".csv" extension is added by the store.
package store
