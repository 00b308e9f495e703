// Package memoryprov provides an in-memory props.Provider for tests and
// programmatic property sets.
package memoryprov
