package review

// Response pairs a reviewer reply with the request that solicited it. The
// envelope is produced by the human-response channel, not owned by this
// module. Data holds the raw reply and may be nil, a plain string, or -
// when the channel re-wraps a forwarded reply - another *Response; the
// classifier unwraps exactly one level of such nesting.
type Response struct {
	Data            interface{} `json:"data,omitempty"`
	OriginalRequest *Request    `json:"originalRequest,omitempty"`
}
