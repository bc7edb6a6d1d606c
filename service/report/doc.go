// Package report renders the outcome documents of a concept review - the
// development report for approved concepts and the decision-notification
// letter for rejected ones - from a structured document model, and persists
// them as timestamped markdown files.
package report
