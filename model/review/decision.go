package review

import (
	"fmt"
	"time"
)

// Decision represents the routing outcome produced for a single approval
// request. Feedback holds the raw reviewer reply; AnalysisContent is copied
// verbatim from the originating request.
type Decision struct {
	ID              string    `json:"id"` // same as request.ID
	Approved        bool      `json:"approved"`
	Feedback        string    `json:"feedback,omitempty"`
	AnalysisContent string    `json:"analysisContent,omitempty"`
	DecidedAt       time.Time `json:"decidedAt"`
}

// IsApproved reports whether the concept was approved.
func (d *Decision) IsApproved() bool { return d.Approved }

// IsRejected reports whether the concept was rejected.
func (d *Decision) IsRejected() bool { return !d.Approved }

func (d *Decision) String() string {
	status := "REJECTED"
	if d.Approved {
		status = "APPROVED"
	}
	if d.Feedback == "" {
		return fmt.Sprintf("Decision: %s", status)
	}
	return fmt.Sprintf("Decision: %s - %s", status, d.Feedback)
}
