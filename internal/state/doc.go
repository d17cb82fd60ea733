// Package state holds the shared mutable state of the controller: the
// system enable flag and the last distance sample, each with documented
// single-writer ownership and atomic word access.
package state
