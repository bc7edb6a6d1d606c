package event

import "time"

// Standard gate event types, one per state transition of a submission.
const (
	TypeRequestCreated   = "request.created"
	TypeResponseReceived = "response.received"
	TypeDecisionCreated  = "decision.created"
	TypeReportSaved      = "report.saved"
)

// Context carries correlation identifiers so that every event of one
// submission can be tied together without any global state.
type Context struct {
	RequestID string `json:"requestID"`
	EventType string `json:"eventType"`
	Service   string `json:"service"`
	Method    string `json:"method"`
}

type Event[T any] struct {
	Context   *Context               `json:"context"`
	CreatedAt time.Time              `json:"createdAt"`
	Metadata  map[string]interface{} `json:"metadata"`
	Data      T                      `json:"data"`
}

func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		Context:   context,
		CreatedAt: time.Now(),
		Metadata:  make(map[string]interface{}),
		Data:      data,
	}
}
