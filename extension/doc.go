// Package extension provides run-time registries for the action services and
// Go types the review pipeline works with (for example custom action inputs
// or outputs).
//
// The registries are normally populated through the public APIs of the root
// conceptgate package, therefore most applications do not need to import
// this package directly.
package extension
