package completion_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"integrated-bots/pkg/completion"
	"integrated-bots/pkg/gemini"
	"integrated-bots/pkg/log"
)

// scriptedGenerator returns a canned result per model name and records the
// call order.
type scriptedGenerator struct {
	results map[string]scriptedResult
	calls   []string
	prompts []string
}

type scriptedResult struct {
	text string
	err  error
}

func (g *scriptedGenerator) GenerateContent(ctx context.Context, model string, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	g.calls = append(g.calls, model)
	g.prompts = append(g.prompts, req.Contents[0].Parts[0].Text)
	res, ok := g.results[model]
	if !ok {
		return nil, errors.New("unexpected model " + model)
	}
	if res.err != nil {
		return nil, res.err
	}
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: res.text}}}},
		},
	}, nil
}

func TestManager_Text(t *testing.T) {
	ctx := context.Background()
	models := []string{"model-1", "model-2", "model-3"}

	t.Run("Primary Success", func(t *testing.T) {
		gen := &scriptedGenerator{results: map[string]scriptedResult{
			"model-1": {text: " primary \n"},
		}}
		m := completion.NewManager(gen, models, log.NewNop())

		if got := m.Text(ctx, "hi"); got != "primary" {
			t.Errorf("expected trimmed primary text, got %q", got)
		}
		if len(gen.calls) != 1 {
			t.Errorf("expected 1 backend call, got %d", len(gen.calls))
		}
	})

	t.Run("Fallback After Error", func(t *testing.T) {
		gen := &scriptedGenerator{results: map[string]scriptedResult{
			"model-1": {err: errors.New("quota exceeded")},
			"model-2": {text: "ok"},
		}}
		m := completion.NewManager(gen, models, log.NewNop())

		if got := m.Text(ctx, "hi"); got != "ok" {
			t.Errorf("expected fallback result 'ok', got %q", got)
		}
		if len(gen.calls) != 2 {
			t.Errorf("expected 2 backend calls, got %d", len(gen.calls))
		}
	})

	t.Run("Empty Text Also Falls Back", func(t *testing.T) {
		gen := &scriptedGenerator{results: map[string]scriptedResult{
			"model-1": {text: "   "},
			"model-2": {text: "second"},
		}}
		m := completion.NewManager(gen, models, log.NewNop())

		if got := m.Text(ctx, "hi"); got != "second" {
			t.Errorf("expected 'second', got %q", got)
		}
	})

	t.Run("All Models Error", func(t *testing.T) {
		gen := &scriptedGenerator{results: map[string]scriptedResult{
			"model-1": {err: errors.New("first boom")},
			"model-2": {err: errors.New("second boom")},
			"model-3": {err: errors.New("last boom")},
		}}
		m := completion.NewManager(gen, models, log.NewNop())

		got := m.Text(ctx, "hi")
		if got == "" {
			t.Fatalf("expected diagnostic string, got empty")
		}
		if !strings.Contains(got, "last boom") {
			t.Errorf("diagnostic should embed the last error, got %q", got)
		}
	})

	t.Run("All Models Empty", func(t *testing.T) {
		gen := &scriptedGenerator{results: map[string]scriptedResult{
			"model-1": {text: ""},
			"model-2": {text: ""},
			"model-3": {text: ""},
		}}
		m := completion.NewManager(gen, models, log.NewNop())

		if got := m.Text(ctx, "hi"); got != "" {
			t.Errorf("expected empty result when no model erred, got %q", got)
		}
	})
}

func TestManager_JSON(t *testing.T) {
	ctx := context.Background()
	models := []string{"model-1"}

	t.Run("Plain JSON", func(t *testing.T) {
		gen := &scriptedGenerator{results: map[string]scriptedResult{
			"model-1": {text: `{"category": "news"}`},
		}}
		m := completion.NewManager(gen, models, log.NewNop())

		out := m.JSON(ctx, "classify this")
		if out == nil || out["category"] != "news" {
			t.Errorf("unexpected parsed output: %v", out)
		}
	})

	t.Run("Fenced JSON", func(t *testing.T) {
		gen := &scriptedGenerator{results: map[string]scriptedResult{
			"model-1": {text: "```json\n{\"category\": \"movies\"}\n```"},
		}}
		m := completion.NewManager(gen, models, log.NewNop())

		out := m.JSON(ctx, "classify this")
		if out == nil || out["category"] != "movies" {
			t.Errorf("expected fences stripped, got: %v", out)
		}
	})

	t.Run("Garbage Output", func(t *testing.T) {
		gen := &scriptedGenerator{results: map[string]scriptedResult{
			"model-1": {text: "sure! here is your answer"},
		}}
		m := completion.NewManager(gen, models, log.NewNop())

		if out := m.JSON(ctx, "classify this"); out != nil {
			t.Errorf("expected nil map on parse failure, got %v", out)
		}
	})

	t.Run("Instruction Is Prefixed", func(t *testing.T) {
		gen := &scriptedGenerator{results: map[string]scriptedResult{
			"model-1": {text: `{}`},
		}}
		m := completion.NewManager(gen, models, log.NewNop())
		m.JSON(ctx, "classify this")
		if len(gen.prompts) != 1 {
			t.Fatalf("expected one call, got %d", len(gen.prompts))
		}
		if !strings.HasPrefix(gen.prompts[0], completion.JSONOnlyInstruction) {
			t.Errorf("wrapped prompt should carry the JSON-only instruction: %q", gen.prompts[0])
		}
	})
}
