package review

import (
	"fmt"
	"time"
)

// DefaultQuestion is used when the caller does not supply an explicit
// approval question.
const DefaultQuestion = "Based on the comprehensive fashion analysis above, should Zava approve this clothing concept for development?"

// Request represents a request for a human reviewer to approve or reject a
// concept submission. It is created once per submission and never mutated;
// AnalysisContent carries the raw upstream analysis text so that it survives
// the round-trip through the human-response channel unmodified.
type Request struct {
	ID              string                 `json:"id"`
	Question        string                 `json:"question"`
	Context         string                 `json:"context"`
	AnalysisContent string                 `json:"analysisContent"`
	CreatedAt       time.Time              `json:"createdAt"`
	Meta            map[string]interface{} `json:"meta,omitempty"`
}

// String renders the request as the prompt presented to the reviewer.
func (r *Request) String() string {
	return fmt.Sprintf(`ZAVA CLOTHING CONCEPT APPROVAL REQUEST

%s

CONCEPT ANALYSIS CONTEXT:
%s

Please review the above analysis and decide whether to approve this clothing
concept for development or reject it for reconsideration.

Response Options:
- Type 'yes' to APPROVE the concept for development
- Type 'no' to REJECT the concept

Your decision will determine the next steps in our evaluation process.`, r.Question, r.Context)
}
