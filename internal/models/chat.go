package models

import (
	"encoding/json"
	"strings"
)

// Role tags a message in a conversation transcript.
type Role string

const (
	RoleSystem    Role = "system"
	RoleHuman     Role = "human"
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged piece of dialogue text.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentProduct   Intent = "product"
	IntentOrder     Intent = "order"
	IntentSmalltalk Intent = "smalltalk"
	IntentUnknown   Intent = "unknown"
)

// ParseIntent maps a raw classifier reply to an Intent. The match is exact
// after trimming and lowercasing; anything else degrades to IntentUnknown.
func ParseIntent(raw string) Intent {
	switch Intent(strings.ToLower(strings.TrimSpace(raw))) {
	case IntentProduct:
		return IntentProduct
	case IntentOrder:
		return IntentOrder
	case IntentSmalltalk:
		return IntentSmalltalk
	}
	return IntentUnknown
}

// ToolResult is the structured outcome of a catalog lookup performed on
// behalf of the user's intent. Exactly two variants exist.
type ToolResult interface {
	isToolResult()
}

// Product is one catalog item as returned by the external service.
type Product struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// ProductSearchResult holds up to five catalog items matching a query.
type ProductSearchResult struct {
	Query   string    `json:"query"`
	Results []Product `json:"results"`
}

func (*ProductSearchResult) isToolResult() {}

// OrderLookupResult reports whether an order exists and, when found, the raw
// cart payload returned by the catalog service.
type OrderLookupResult struct {
	OrderID int             `json:"order_id"`
	Found   bool            `json:"found"`
	Cart    json.RawMessage `json:"cart,omitempty"`
}

func (*OrderLookupResult) isToolResult() {}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the externally visible result of one pipeline run.
type ChatResponse struct {
	Intent     *Intent    `json:"intent"`
	ToolResult ToolResult `json:"tool_result"`
	Answer     string     `json:"answer"`
}
