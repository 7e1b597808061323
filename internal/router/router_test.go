package router_test

import (
	"context"
	"strings"
	"testing"

	"integrated-bots/internal/bot/banking"
	"integrated-bots/internal/bot/cooking"
	"integrated-bots/internal/bot/finance"
	"integrated-bots/internal/bot/genz"
	"integrated-bots/internal/bot/gptmaster"
	"integrated-bots/internal/router"
	"integrated-bots/pkg/log"
)

type fakeCompleter struct {
	text  string
	calls int
}

func (f *fakeCompleter) Text(ctx context.Context, prompt string) string {
	f.calls++
	return f.text
}

func (f *fakeCompleter) JSON(ctx context.Context, prompt string) map[string]any {
	f.calls++
	return nil
}

type fixedAnswerer string

func (f fixedAnswerer) Answer(ctx context.Context, query string) string { return string(f) }

type fixedScriptBot string

func (f fixedScriptBot) Generate(ctx context.Context, query string, opts genz.Options) (string, string) {
	return string(f), "en"
}

func newRouter(llm *fakeCompleter) *router.Router {
	return router.New(llm,
		fixedAnswerer("banking reply"),
		fixedAnswerer("cooking reply"),
		fixedAnswerer("finance reply"),
		fixedAnswerer("mentor reply"),
		fixedScriptBot("genz reply"),
		log.NewNop(),
	)
}

func TestClassifyModel(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want router.Category
	}{
		{"Clean Label", "banking", router.CategoryBanking},
		{"Punctuation Stripped", "Banking!", router.CategoryBanking},
		{"Whitespace And Case", "  GPT_MASTER \n", router.CategoryGPTMaster},
		{"Unlisted Label", "weather", router.CategoryUnknown},
		{"Empty Completion", "", router.CategoryUnknown},
		{"Diagnostic String", "[Gemini API Error] boom", router.CategoryUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(&fakeCompleter{text: tc.raw})
			if got := r.ClassifyModel(context.Background(), "whatever"); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("Keyword Hit Skips Model", func(t *testing.T) {
		llm := &fakeCompleter{text: "cooking"}
		r := newRouter(llm)

		out := r.Classify(ctx, "best pasta recipe with few ingredients", false)
		if out.Category != router.CategoryCooking {
			t.Errorf("expected cooking, got %s", out.Category)
		}
		if out.Confidence != router.ConfidenceMedium {
			t.Errorf("expected medium confidence, got %s", out.Confidence)
		}
		if llm.calls != 0 {
			t.Errorf("keyword path must not call the model, got %d calls", llm.calls)
		}
	})

	t.Run("Highest Score Wins", func(t *testing.T) {
		r := newRouter(&fakeCompleter{})

		// One banking hit ("loan") vs two finance hits ("interest", "budget").
		out := r.Classify(ctx, "how does loan interest affect my budget", false)
		if out.Category != router.CategoryFinance {
			t.Errorf("expected finance, got %s", out.Category)
		}
	})

	t.Run("Tie Goes To First Enumerated", func(t *testing.T) {
		r := newRouter(&fakeCompleter{})

		// "card" scores banking, "recipe" scores cooking; banking enumerates first.
		out := r.Classify(ctx, "recipe card ideas", false)
		if out.Category != router.CategoryBanking {
			t.Errorf("expected banking on tie, got %s", out.Category)
		}
	})

	t.Run("Force Model Overrides Keywords", func(t *testing.T) {
		llm := &fakeCompleter{text: "genz"}
		r := newRouter(llm)

		out := r.Classify(ctx, "best pasta recipe", true)
		if out.Category != router.CategoryGenZ {
			t.Errorf("expected genz from model, got %s", out.Category)
		}
		if out.Confidence != router.ConfidenceHigh {
			t.Errorf("expected high confidence, got %s", out.Confidence)
		}
		if llm.calls != 1 {
			t.Errorf("expected one model call, got %d", llm.calls)
		}
	})

	t.Run("No Match Falls To Model", func(t *testing.T) {
		llm := &fakeCompleter{text: "gpt_master"}
		r := newRouter(llm)

		out := r.Classify(ctx, "tell me something fun about space", false)
		if out.Category != router.CategoryGPTMaster || out.Confidence != router.ConfidenceHigh {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("Unrecognized Model Label Defaults", func(t *testing.T) {
		r := newRouter(&fakeCompleter{text: "gibberish!!"})

		out := r.Classify(ctx, "zzz", false)
		if out.Category != router.CategoryFinance {
			t.Errorf("expected default finance, got %s", out.Category)
		}
		if out.Confidence != router.ConfidenceLow {
			t.Errorf("expected low confidence, got %s", out.Confidence)
		}
	})
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		label string
		reply string
	}{
		{"Banking", "banking", "banking reply"},
		{"Cooking", "cooking", "cooking reply"},
		{"Finance", "finance", "finance reply"},
		{"Mentor", "gpt_master", "mentor reply"},
		{"GenZ", "genz", "genz reply"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(&fakeCompleter{text: tc.label})

			out := r.Dispatch(ctx, "some query")
			if string(out.Bot) != tc.label || out.Reply != tc.reply {
				t.Errorf("unexpected output: %+v", out)
			}
			if out.RoutedTo != out.Bot {
				t.Errorf("routed_to must mirror bot, got %+v", out)
			}
		})
	}

	t.Run("Unknown Gets Rephrase", func(t *testing.T) {
		r := newRouter(&fakeCompleter{text: "no idea"})

		out := r.Dispatch(ctx, "???")
		if out.Bot != router.CategoryUnknown {
			t.Errorf("expected unknown bot, got %s", out.Bot)
		}
		if !strings.Contains(out.Reply, "rephrase") {
			t.Errorf("expected rephrase message, got %q", out.Reply)
		}
	})
}

// End-to-end dispatch through real personas: the scripted completer
// serves the classifier call, and the persona pre-checks short-circuit
// before any further backend use.
func TestDispatchEndToEnd(t *testing.T) {
	ctx := context.Background()

	newRealRouter := func(llm *fakeCompleter) *router.Router {
		return router.New(llm,
			banking.New(llm),
			cooking.New(llm),
			finance.New(llm),
			gptmaster.New(llm),
			fixedScriptBot("genz reply"),
			log.NewNop(),
		)
	}

	t.Run("Account Balance Requires Auth", func(t *testing.T) {
		llm := &fakeCompleter{text: "banking"}
		r := newRealRouter(llm)

		out := r.Dispatch(ctx, "What's my account balance?")
		if out.Bot != router.CategoryBanking {
			t.Fatalf("expected banking, got %s", out.Bot)
		}
		if out.Reply != banking.AuthRequiredMsg {
			t.Errorf("expected auth short-circuit, got %q", out.Reply)
		}
		if llm.calls != 1 {
			t.Errorf("expected only the classifier call, got %d", llm.calls)
		}
	})

	t.Run("Single Word Cooking Clarification", func(t *testing.T) {
		llm := &fakeCompleter{text: "cooking"}
		r := newRealRouter(llm)

		out := r.Dispatch(ctx, "eggs")
		if out.Bot != router.CategoryCooking {
			t.Fatalf("expected cooking, got %s", out.Bot)
		}
		if out.Reply != cooking.FallbackMsg {
			t.Errorf("expected clarification fallback, got %q", out.Reply)
		}
		if llm.calls != 1 {
			t.Errorf("expected only the classifier call, got %d", llm.calls)
		}
	})
}
