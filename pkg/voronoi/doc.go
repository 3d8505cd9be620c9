// Package voronoi builds Voronoi diagrams clipped to an axis-aligned
// rectangle with Fortune's sweep-line algorithm.
//
// The result of Tessellate is a planar graph of straight edges: the bisectors
// between neighbouring sites that survive clipping, plus the border of the
// rectangle split wherever a bisector reaches it. Every edge links to the
// edges sharing one of its endpoints.
package voronoi
