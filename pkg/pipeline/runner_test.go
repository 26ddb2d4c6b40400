package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/spinesort/pkg/arrange"
	"github.com/matzehuels/spinesort/pkg/errors"
	"github.com/matzehuels/spinesort/pkg/observability"
	"github.com/matzehuels/spinesort/pkg/palette"
	"github.com/matzehuels/spinesort/pkg/render/sink"
)

const primaries = `Red rgb(255,0,0)
Green rgb(0,255,0)
Blue rgb(0,0,255)
not a color`

func titles(recs []palette.Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func TestExecute(t *testing.T) {
	runner := NewRunner(nil)
	res, err := runner.Execute(context.Background(), primaries, Options{
		Method:  arrange.Luminosity,
		Groups:  3,
		Formats: []string{FormatText, FormatJSON, FormatSVG, FormatHTML},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.Stats.Lines != 4 || res.Stats.Records != 3 || res.Stats.Skipped != 1 {
		t.Errorf("stats = %+v, want 4 lines, 3 records, 1 skipped", res.Stats)
	}
	if len(res.Groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(res.Groups))
	}
	want := [][]string{{"Blue"}, {"Red"}, {"Green"}}
	for i, grp := range res.Groups {
		got := titles(grp)
		if strings.Join(got, ",") != strings.Join(want[i], ",") {
			t.Errorf("group %d = %v, want %v", i, got, want[i])
		}
	}
	if len(res.Elements) != 5 {
		t.Errorf("got %d elements, want 5 (3 stripes, 2 dividers)", len(res.Elements))
	}

	for _, f := range []string{FormatText, FormatJSON, FormatSVG, FormatHTML} {
		if len(res.Artifacts[f]) == 0 {
			t.Errorf("missing %s artifact", f)
		}
	}

	wantText := "Blue rgb(0,0,255)\n---\nRed rgb(255,0,0)\n---\nGreen rgb(0,255,0)\n"
	if got := string(res.Artifacts[FormatText]); got != wantText {
		t.Errorf("text artifact =\n%s\nwant\n%s", got, wantText)
	}

	var doc sink.JSONOutput
	if err := json.Unmarshal(res.Artifacts[FormatJSON], &doc); err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	if doc.Method != "luminosity" || doc.GroupCount != 3 || doc.Count != 3 {
		t.Errorf("json doc = %+v", doc)
	}
}

func TestExecuteTerminal(t *testing.T) {
	res, err := NewRunner(nil).Execute(context.Background(), primaries, Options{
		Formats:       []string{FormatTerminal},
		Terminal:      lipgloss.NewRenderer(io.Discard),
		TerminalWidth: 30,
		Swatch:        true,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	out := string(res.Artifacts[FormatTerminal])
	if !strings.Contains(out, "Blue") || !strings.Contains(out, "rgb(0,0,255)") {
		t.Errorf("terminal artifact missing swatch label:\n%s", out)
	}
}

func TestExecuteEmptyInput(t *testing.T) {
	res, err := NewRunner(nil).Execute(context.Background(), "  \n\n ", Options{Groups: 2})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(res.Records) != 0 {
		t.Errorf("got %d records, want 0", len(res.Records))
	}
	if len(res.Groups) != 2 || res.Groups.Len() != 0 {
		t.Errorf("groups = %v, want two empty groups", res.Groups)
	}
}

func TestExecuteInvalidOptions(t *testing.T) {
	_, err := NewRunner(nil).Execute(context.Background(), primaries, Options{Groups: 9})
	if !errors.Is(err, errors.ErrCodeInvalidGroupCount) {
		t.Errorf("error = %v, want INVALID_GROUP_COUNT", err)
	}
}

func TestExecuteRejectsNUL(t *testing.T) {
	_, err := NewRunner(nil).Execute(context.Background(), "Red rgb(1,2,3)\x00", Options{})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil).Execute(ctx, primaries, Options{})
	if err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) add(e string) {
	h.mu.Lock()
	h.events = append(h.events, e)
	h.mu.Unlock()
}

func (h *recordingHooks) OnParseStart(context.Context, int) { h.add("parse") }
func (h *recordingHooks) OnParseComplete(_ context.Context, records, skipped int, _ time.Duration, _ error) {
	h.add("parsed")
}
func (h *recordingHooks) OnArrangeStart(_ context.Context, method string, _ int) {
	h.add("arrange:" + method)
}
func (h *recordingHooks) OnArrangeComplete(context.Context, string, int, time.Duration, error) {
	h.add("arranged")
}
func (h *recordingHooks) OnRenderStart(context.Context, []string) { h.add("render") }
func (h *recordingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.add("rendered")
}

func TestExecuteEmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	if _, err := NewRunner(nil).Execute(context.Background(), primaries, Options{Method: arrange.HSV}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := "parse,parsed,arrange:hsv,arranged,render,rendered"
	if got := strings.Join(hooks.events, ","); got != want {
		t.Errorf("events = %s, want %s", got, want)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if _, err := Render(nil, Options{Formats: []string{"pdf"}}); err == nil {
		t.Error("unknown format should fail")
	}
}
