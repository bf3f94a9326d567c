// Package interp builds the unique degree n-1 polynomial through n points.
//
// Two evaluation strategies are provided over the same interpolant:
//
//   - [Basis]: weighted Lagrange basis, O(n²) per query
//   - [Newton]: divided-difference coefficients built once in O(n²),
//     evaluated in nested form in O(n)
//
// Newton coefficients are tied to the grid, and the grid order, that
// produced them.
package interp
