// Agent result and stream event types.

package agent

import "github.com/richinex/phonewise/catalog"

// ResponseType classifies how a result was produced.
type ResponseType string

const (
	// TypeRecommendation means the result carries phone cards.
	TypeRecommendation ResponseType = "recommendation"
	// TypeGeneral means a plain answer without cards.
	TypeGeneral ResponseType = "general"
	// TypeExplanation means a canned technical explanation.
	TypeExplanation ResponseType = "explanation"
	// TypeSafetyRedirect means the safety gate answered instead of the model.
	TypeSafetyRedirect ResponseType = "safety_redirect"
	// TypeError means the backend failed and a degraded answer was returned.
	TypeError ResponseType = "error"
)

// Result is the outcome of one chat turn.
type Result struct {
	Response string         `json:"response"`
	Phones   []catalog.Card `json:"phones"`
	Type     ResponseType   `json:"type"`
}

// EventType distinguishes stream event variants.
type EventType string

const (
	// EventStatus is an interim progress line.
	EventStatus EventType = "status"
	// EventComplete carries the final result and ends the stream.
	EventComplete EventType = "complete"
)

// StreamEvent is one event on a chat stream: any number of status
// events followed by exactly one complete event.
type StreamEvent struct {
	Type    EventType `json:"type"`
	Message string    `json:"message,omitempty"`
	Result  *Result   `json:"result,omitempty"`
}
