package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/spinesort/pkg/arrange"
	"github.com/matzehuels/spinesort/pkg/observability"
	"github.com/matzehuels/spinesort/pkg/pipeline"
)

const primaries = "Red rgb(255,0,0)\nGreen rgb(0,255,0)\nBlue rgb(0,0,255)\nnoise"

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func do(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	s := newTestServer(t, Config{Defaults: pipeline.Options{Method: arrange.HLS, Groups: 2}})
	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"Book Color Input",
		"Sort Now",
		`type="range" name="groups" min="1" max="4" value="2"`,
		`<option value="hls" selected>HLS</option>`,
		`<option value="step">Step Sorting</option>`,
		"Paste lines like: book title rgb(233,24,22)",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(body, `class="stripe"`) {
		t.Error("index should not contain stripes")
	}
}

func TestSortForm(t *testing.T) {
	s := newTestServer(t, Config{})
	form := url.Values{"text": {primaries}, "method": {"luminosity"}, "groups": {"3"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := do(t, s, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	body := rec.Body.String()
	if got := strings.Count(body, `class="stripe"`); got != 3 {
		t.Errorf("got %d stripes, want 3", got)
	}
	if got := strings.Count(body, `class="divider"`); got != 2 {
		t.Errorf("got %d dividers, want 2", got)
	}
	blue := strings.Index(body, "rgb(0,0,255);")
	red := strings.Index(body, "rgb(255,0,0);")
	green := strings.Index(body, "rgb(0,255,0);")
	if !(blue < red && red < green) {
		t.Errorf("stripe order wrong: blue=%d red=%d green=%d", blue, red, green)
	}
	if !strings.Contains(body, "3 colors, 1 lines skipped") {
		t.Error("summary missing")
	}
	// The submitted text is kept in the textarea.
	if !strings.Contains(body, "Red rgb(255,0,0)\nGreen") {
		t.Error("textarea lost input")
	}
	if !strings.Contains(body, `value="3"`) {
		t.Error("group slider lost value")
	}
}

func TestSortFormInvalid(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		code string
	}{
		{"method", url.Values{"text": {primaries}, "method": {"rainbow"}}, "INVALID_METHOD"},
		{"groups range", url.Values{"text": {primaries}, "groups": {"7"}}, "INVALID_GROUP_COUNT"},
		{"groups nan", url.Values{"text": {primaries}, "groups": {"lots"}}, "INVALID_GROUP_COUNT"},
	}
	s := newTestServer(t, Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := do(t, s, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.code) {
				t.Errorf("body missing %s", tt.code)
			}
		})
	}
}

func TestAPISort(t *testing.T) {
	s := newTestServer(t, Config{})
	body := `{"text":"Blue rgb(0,0,255)\nRed rgb(255,0,0)\nYellow rgb(255,255,0)","method":"hsv","groups":2}`
	rec := do(t, s, httptest.NewRequest(http.MethodPost, "/api/sort", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp sortResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Method != "hsv" || resp.GroupCount != 2 || resp.Count != 3 {
		t.Errorf("resp = %+v", resp)
	}
	var got [][]string
	for _, g := range resp.Groups {
		var names []string
		for _, c := range g {
			names = append(names, c.Title)
		}
		got = append(got, names)
	}
	if len(got) != 2 || strings.Join(got[0], ",") != "Red,Blue" || strings.Join(got[1], ",") != "Yellow" {
		t.Errorf("groups = %v, want [[Red Blue] [Yellow]]", got)
	}
}

func TestAPISortDefaults(t *testing.T) {
	s := newTestServer(t, Config{Defaults: pipeline.Options{Method: arrange.Step, Groups: 2}})
	rec := do(t, s, httptest.NewRequest(http.MethodPost, "/api/sort", strings.NewReader(`{"text":"x\nA rgb(1,2,3)"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var resp sortResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Method != "step" || resp.GroupCount != 2 || resp.Skipped != 1 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestAPISortErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"bad json", `{"text":`, "INVALID_INPUT"},
		{"method", `{"text":"A rgb(1,2,3)","method":"zigzag"}`, "INVALID_METHOD"},
		{"groups", `{"text":"A rgb(1,2,3)","groups":5}`, "INVALID_GROUP_COUNT"},
		{"negative groups", `{"text":"A rgb(1,2,3)","groups":-1}`, "INVALID_GROUP_COUNT"},
		{"nul", `{"text":"A rgb(1,2,3)\u0000"}`, "INVALID_INPUT"},
	}
	s := newTestServer(t, Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, httptest.NewRequest(http.MethodPost, "/api/sort", strings.NewReader(tt.body)))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Code != tt.code {
				t.Errorf("code = %q, want %q", resp.Code, tt.code)
			}
		})
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, Config{})
	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status": "ok"`) {
		t.Errorf("healthz = %d %s", rec.Code, rec.Body)
	}
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if _, err := uuid.Parse(rec.Header().Get(RequestIDHeader)); err != nil {
		t.Errorf("generated request ID %q is not a uuid", rec.Header().Get(RequestIDHeader))
	}

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	rec = do(t, s, req)
	if got := rec.Header().Get(RequestIDHeader); got != id {
		t.Errorf("request ID = %q, want %q", got, id)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	rec = do(t, s, req)
	if got := rec.Header().Get(RequestIDHeader); got == "<script>" {
		t.Error("malformed request ID should be replaced")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	observability.SetPipelineHooks(m)
	observability.SetHTTPHooks(m)
	t.Cleanup(observability.Reset)

	s := newTestServer(t, Config{Gatherer: reg})
	do(t, s, httptest.NewRequest(http.MethodPost, "/api/sort", strings.NewReader(`{"text":"`+strings.ReplaceAll(primaries, "\n", `\n`)+`"}`)))

	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"spinesort_records_parsed_total 3",
		"spinesort_lines_skipped_total 1",
		`spinesort_http_requests_total{method="POST",route="/api/sort",status="200"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestMetricsDisabled(t *testing.T) {
	s := newTestServer(t, Config{})
	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code == http.StatusOK {
		t.Error("metrics should be disabled without a gatherer")
	}
}

func TestNewInvalidConfig(t *testing.T) {
	if _, err := New(Config{Addr: "no port"}); err == nil {
		t.Error("invalid addr should fail")
	}
	if _, err := New(Config{Defaults: pipeline.Options{Groups: 9}}); err == nil {
		t.Error("invalid default groups should fail")
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t, Config{})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
