package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"agentic-backend/internal/models"
)

// LLM generates a text reply for an ordered list of role-tagged messages.
type LLM interface {
	Generate(ctx context.Context, messages []models.Message) (string, error)
}

// Catalog exposes the two read-only lookups of the external catalog service.
type Catalog interface {
	SearchProducts(ctx context.Context, query string) (*models.ProductSearchResult, error)
	LookupOrder(ctx context.Context, orderID int) (*models.OrderLookupResult, error)
}

// State is the per-request workflow value. It is created fresh for every
// incoming message, mutated in place by each stage, and discarded once the
// response is assembled.
type State struct {
	Messages   []models.Message
	Intent     *models.Intent
	ToolResult models.ToolResult
}

// Agent runs the four-stage support pipeline:
// normalize -> classify -> maybe-invoke-tool -> respond.
type Agent struct {
	llm     LLM
	catalog Catalog
}

func New(llm LLM, catalog Catalog) *Agent {
	return &Agent{
		llm:     llm,
		catalog: catalog,
	}
}

// Run executes one full pipeline pass for a single user message. Failures
// from the LLM or the catalog service propagate to the caller; there are no
// retries and no partial responses.
func (a *Agent) Run(ctx context.Context, userText string) (*models.ChatResponse, error) {
	state := &State{
		Messages: []models.Message{{Role: models.RoleHuman, Content: userText}},
	}

	a.normalize(state)
	if err := a.classify(ctx, state); err != nil {
		return nil, fmt.Errorf("classify intent: %w", err)
	}
	if err := a.invokeTool(ctx, state); err != nil {
		return nil, err
	}
	if err := a.respond(ctx, state); err != nil {
		return nil, fmt.Errorf("generate reply: %w", err)
	}

	answer := state.Messages[len(state.Messages)-1].Content
	return &models.ChatResponse{
		Intent:     state.Intent,
		ToolResult: state.ToolResult,
		Answer:     answer,
	}, nil
}

// normalize guarantees the transcript ends with a human message and starts
// with the system instruction. A transcript without a trailing human message
// gets a literal greeting substituted.
func (a *Agent) normalize(state *State) {
	msgs := state.Messages
	if len(msgs) == 0 || msgs[len(msgs)-1].Role != models.RoleHuman {
		msgs = append(msgs, models.Message{Role: models.RoleHuman, Content: "Hello"})
	}
	state.Messages = append([]models.Message{{Role: models.RoleSystem, Content: systemPrompt}}, msgs...)
}

// classify sends the latest human message through the classification prompt
// and stores the parsed label. Malformed model output degrades to "unknown"
// silently; only transport-level failures are returned.
func (a *Agent) classify(ctx context.Context, state *State) error {
	prompt := fmt.Sprintf(classifyPrompt, lastHumanText(state))
	raw, err := a.llm.Generate(ctx, []models.Message{
		{Role: models.RoleHuman, Content: prompt},
	})
	if err != nil {
		return err
	}
	intent := models.ParseIntent(raw)
	state.Intent = &intent
	return nil
}

// invokeTool performs at most one catalog lookup depending on the classified
// intent. Smalltalk and unknown intents leave the tool result absent.
func (a *Agent) invokeTool(ctx context.Context, state *State) error {
	text := lastHumanText(state)

	switch *state.Intent {
	case models.IntentProduct:
		result, err := a.catalog.SearchProducts(ctx, text)
		if err != nil {
			return fmt.Errorf("product search: %w", err)
		}
		state.ToolResult = result

	case models.IntentOrder:
		result, err := a.catalog.LookupOrder(ctx, extractOrderID(text))
		if err != nil {
			return fmt.Errorf("order lookup: %w", err)
		}
		state.ToolResult = result

	case models.IntentSmalltalk, models.IntentUnknown:
		// no lookup
	}

	return nil
}

// respond makes the final LLM call with the tool context embedded and appends
// the reply to the transcript as an assistant message.
func (a *Agent) respond(ctx context.Context, state *State) error {
	summary := clarifyContext
	if state.ToolResult != nil {
		encoded, err := json.Marshal(state.ToolResult)
		if err != nil {
			return fmt.Errorf("encode tool result: %w", err)
		}
		summary = "Here is what I found: " + string(encoded)
	}

	prompt := fmt.Sprintf("User: %s\nContext: %s\nReply in 2-3 sentences.", lastHumanText(state), summary)
	reply, err := a.llm.Generate(ctx, []models.Message{
		{Role: models.RoleSystem, Content: systemPrompt},
		{Role: models.RoleHuman, Content: prompt},
	})
	if err != nil {
		return err
	}

	state.Messages = append(state.Messages, models.Message{Role: models.RoleAssistant, Content: reply})
	return nil
}

func lastHumanText(state *State) string {
	for i := len(state.Messages) - 1; i >= 0; i-- {
		if state.Messages[i].Role == models.RoleHuman {
			return state.Messages[i].Content
		}
	}
	return ""
}

var digitRun = regexp.MustCompile(`\d+`)

// extractOrderID returns the first contiguous run of decimal digits in the
// text. A message without digits falls back to order id 1, which can look up
// the wrong order; the fallback is kept as-is and pinned by tests.
func extractOrderID(text string) int {
	match := digitRun.FindString(text)
	if match == "" {
		return 1
	}
	id, err := strconv.Atoi(match)
	if err != nil {
		return 1
	}
	return id
}
