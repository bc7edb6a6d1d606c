// Package review defines the entities exchanged by the concept approval
// workflow - the approval request shown to a human reviewer, the human
// response envelope and the resulting routing decision - together with the
// classifier that resolves an arbitrary response value to a gate outcome.
package review
