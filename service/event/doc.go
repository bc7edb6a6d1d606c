// Package event provides a typed publish/consume stream used to surface gate
// state transitions (request built, response received, decision classified)
// to observers without any global mutable state.
package event
