package completion

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"integrated-bots/pkg/gemini"
	"integrated-bots/pkg/log"
)

// Completer is the text-generation contract the personas consume.
// Neither method ever returns an error: backend failures degrade to a
// diagnostic string (Text) or a nil map (JSON).
type Completer interface {
	// Text runs a plain-text completion with model fallback.
	Text(ctx context.Context, prompt string) string

	// JSON runs a structured completion and parses the result into a map.
	// A parse failure or empty result yields nil — callers must treat a
	// missing key as "unclassified".
	JSON(ctx context.Context, prompt string) map[string]any
}

// Manager walks an ordered model list over a single Gemini client,
// first non-empty response wins.
type Manager struct {
	client gemini.Generator
	models []string
	l      log.Logger
}

var _ Completer = (*Manager)(nil)

// NewManager creates a completion manager. models is the fallback order,
// primary first.
func NewManager(client gemini.Generator, models []string, l log.Logger) *Manager {
	return &Manager{
		client: client,
		models: models,
		l:      l,
	}
}

// Text iterates the model list in order. A transport or API error is a soft
// failure: log it, remember it, try the next model. The first trimmed
// non-empty candidate text is returned. When every model is exhausted the
// result is a visible diagnostic embedding the last error, or "" when no
// model erred but none produced text.
func (m *Manager) Text(ctx context.Context, prompt string) string {
	var lastErr error

	req := gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
	}

	for _, model := range m.models {
		resp, err := m.client.GenerateContent(ctx, model, req)
		if err != nil {
			lastErr = err
			m.l.Warnf(ctx, "%s: model %s failed: %v", LogPrefixText, model, err)
			continue
		}
		if text := strings.TrimSpace(resp.Text()); text != "" {
			return text
		}
	}

	// If all models failed, return the error so the user sees it.
	if lastErr != nil {
		return fmt.Sprintf(DiagnosticFormat, lastErr)
	}
	return ""
}

// codeFenceRe strips leading/trailing markdown code fences the backend adds
// despite the JSON-only instruction.
var codeFenceRe = regexp.MustCompile("(?m)^```(json)?|```$")

// JSON wraps the prompt with the JSON-only instruction, runs the same
// fallback chain, and parses the result. Returns nil on any parse failure.
func (m *Manager) JSON(ctx context.Context, prompt string) map[string]any {
	text := m.Text(ctx, JSONOnlyInstruction+prompt)

	text = strings.TrimSpace(codeFenceRe.ReplaceAllString(strings.TrimSpace(text), ""))

	var out map[string]any
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		m.l.Warnf(ctx, "%s: failed to parse structured output: %v", LogPrefixJSON, err)
		return nil
	}
	return out
}
