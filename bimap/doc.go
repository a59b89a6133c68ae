// Package bimap implements a partial bijection between two sets of
// non-negative integers, used by package simplex to track which column of
// the A matrix (if any) is the "principal column" of each qubit.
package bimap
