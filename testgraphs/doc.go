// Package testgraphs builds small, deterministic graph.Graph fixtures for
// use across this module's test suites, so each package's tests don't
// have to hand-roll the same handful of shapes (a triangle, a square, a
// chain, a grid).
package testgraphs
