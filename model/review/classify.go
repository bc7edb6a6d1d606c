package review

import (
	"strings"

	"github.com/viant/toolbox"
)

// Kind enumerates the closed set of value shapes the gate can receive.
type Kind int

const (
	KindUnknown Kind = iota
	KindRawText
	KindWrapper
	KindDecision
	KindRequest
	KindApprovedFlag
)

// Outcome is the result of classifying a gate value. Token is only
// populated for the text-bearing kinds; Approved only for KindDecision
// and KindApprovedFlag.
type Outcome struct {
	Kind     Kind
	Token    string
	Approved bool
}

// ApprovalReporter is satisfied by foreign decision types that expose their
// outcome directly.
type ApprovalReporter interface {
	IsApproved() bool
}

var approvedTokens = map[string]bool{
	"yes": true, "y": true, "approve": true, "approved": true,
}

var rejectedTokens = map[string]bool{
	"no": true, "n": true, "reject": true, "rejected": true, "deny": true, "denied": true,
}

// Classify resolves an arbitrary value to a gate Outcome. Shape dispatch
// happens here exactly once; the predicates below only branch on the
// resulting kind. A *Response whose Data is itself a *Response is unwrapped
// one level before its text is tokenized.
func Classify(value interface{}) Outcome {
	switch v := value.(type) {
	case *Response:
		if v == nil {
			return Outcome{Kind: KindUnknown}
		}
		data := v.Data
		if inner, ok := data.(*Response); ok && inner != nil {
			data = inner.Data
		}
		return Outcome{Kind: KindWrapper, Token: normalize(data)}
	case Response:
		return Classify(&v)
	case string:
		return Outcome{Kind: KindRawText, Token: normalize(v)}
	case *Decision:
		if v == nil {
			return Outcome{Kind: KindUnknown}
		}
		return Outcome{Kind: KindDecision, Approved: v.Approved}
	case Decision:
		return Outcome{Kind: KindDecision, Approved: v.Approved}
	case *Request:
		// a request reaching a decision gate is "not applicable", never an error
		return Outcome{Kind: KindRequest}
	case Request:
		return Outcome{Kind: KindRequest}
	}
	if reporter, ok := value.(ApprovalReporter); ok {
		return Outcome{Kind: KindApprovedFlag, Approved: reporter.IsApproved()}
	}
	return Outcome{Kind: KindUnknown}
}

// IsApproved reports whether value routes to the approved branch. Unknown
// shapes never route to approval.
func IsApproved(value interface{}) bool {
	outcome := Classify(value)
	switch outcome.Kind {
	case KindRawText, KindWrapper:
		return approvedTokens[outcome.Token]
	case KindDecision, KindApprovedFlag:
		return outcome.Approved
	}
	return false
}

// IsRejected reports whether value routes to the rejected branch. Unknown
// shapes default to rejection; a request value yields false for both
// predicates so that callers can treat it as "not applicable".
func IsRejected(value interface{}) bool {
	outcome := Classify(value)
	switch outcome.Kind {
	case KindRawText, KindWrapper:
		return rejectedTokens[outcome.Token]
	case KindDecision, KindApprovedFlag:
		return !outcome.Approved
	case KindRequest:
		return false
	}
	return true
}

// IsApprovedToken reports whether a normalized reply text is an affirmative token.
func IsApprovedToken(text string) bool {
	return approvedTokens[strings.ToLower(strings.TrimSpace(text))]
}

// IsRejectedToken reports whether a normalized reply text is a negative token.
func IsRejectedToken(text string) bool {
	return rejectedTokens[strings.ToLower(strings.TrimSpace(text))]
}

func normalize(data interface{}) string {
	if data == nil {
		return ""
	}
	text, ok := data.(string)
	if !ok {
		text = toolbox.AsString(data)
	}
	return strings.ToLower(strings.TrimSpace(text))
}
