// Package approval implements the human-in-the-loop gate of the concept
// evaluation workflow. It turns an upstream analysis payload into an approval
// request for a human reviewer, pairs the eventual free-text reply back to
// its request and normalizes the reply into a routing decision.
package approval
