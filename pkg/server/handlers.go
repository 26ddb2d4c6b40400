package server

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/spinesort/pkg/arrange"
	"github.com/matzehuels/spinesort/pkg/buildinfo"
	"github.com/matzehuels/spinesort/pkg/errors"
	"github.com/matzehuels/spinesort/pkg/palette"
	"github.com/matzehuels/spinesort/pkg/render"
	"github.com/matzehuels/spinesort/pkg/render/sink"
)

// maxBodyBytes leaves room for the form or JSON envelope around the text.
const maxBodyBytes = errors.MaxInputBytes + 64<<10

// sortRequest is the body of POST /api/sort.
type sortRequest struct {
	Text   string `json:"text"`
	Method string `json:"method"`
	Groups int    `json:"groups"`
}

// sortResponse is the body returned by POST /api/sort.
type sortResponse struct {
	sink.JSONOutput
	Skipped int `json:"skipped"`
}

type sortOutcome struct {
	elements []render.Element
	stats    palette.ParseStats
}

// sort parses, arranges and flattens text. Omitted fields fall back to the
// server defaults.
func (s *Server) sort(ctx context.Context, text string, method arrange.Method, groups int) (sortOutcome, error) {
	if err := errors.ValidateInput(text); err != nil {
		return sortOutcome{}, err
	}
	opts := s.cfg.Defaults
	opts.Method = method
	opts.Groups = groups
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return sortOutcome{}, err
	}

	records, stats := s.runner.Parse(ctx, text)
	grouped, err := s.runner.Arrange(ctx, records, opts)
	if err != nil {
		return sortOutcome{}, err
	}
	return sortOutcome{elements: render.Build(grouped), stats: stats}, nil
}

// parseMethod maps an empty value to the server default.
func (s *Server) parseMethod(name string) (arrange.Method, error) {
	if strings.TrimSpace(name) == "" {
		return s.cfg.Defaults.Method, nil
	}
	return arrange.ParseMethod(name)
}

func (s *Server) handleAPISort(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req sortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	method, err := s.parseMethod(req.Method)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if req.Groups == 0 {
		req.Groups = s.cfg.Defaults.Groups
	}

	out, err := s.sort(r.Context(), req.Text, method, req.Groups)
	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}
	respondJSON(w, http.StatusOK, sortResponse{
		JSONOutput: sink.BuildJSON(out.elements, sink.WithJSONMethod(method.String())),
		Skipped:    out.stats.Skipped,
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, s.newPageData(s.cfg.Defaults.Method, s.cfg.Defaults.Groups, ""))
}

func (s *Server) handleSortForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		data := s.newPageData(s.cfg.Defaults.Method, s.cfg.Defaults.Groups, "")
		data.Error = errors.Wrap(errors.ErrCodeInvalidInput, err, "read form").Error()
		s.renderPage(w, http.StatusBadRequest, data)
		return
	}

	text := r.PostFormValue("text")
	data := s.newPageData(s.cfg.Defaults.Method, s.cfg.Defaults.Groups, text)

	method, err := s.parseMethod(r.PostFormValue("method"))
	if err != nil {
		data.Error = err.Error()
		s.renderPage(w, http.StatusBadRequest, data)
		return
	}
	data.Method = method.String()

	groups := s.cfg.Defaults.Groups
	if raw := strings.TrimSpace(r.PostFormValue("groups")); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			data.Error = errors.New(errors.ErrCodeInvalidGroupCount, "group count %q is not a number", raw).Error()
			s.renderPage(w, http.StatusBadRequest, data)
			return
		}
		groups = n
	}
	data.Groups = groups

	out, err := s.sort(r.Context(), text, method, groups)
	if err != nil {
		data.Error = err.Error()
		s.renderPage(w, statusFor(err), data)
		return
	}

	var buf bytes.Buffer
	sink.WriteHTMLStripes(&buf, out.elements)
	data.Stripes = template.HTML(buf.String())
	data.Sorted = true
	data.Records = out.stats.Records
	data.Skipped = out.stats.Skipped
	s.renderPage(w, http.StatusOK, data)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, struct {
		Status string         `json:"status"`
		Time   string         `json:"time"`
		Build  buildinfo.Info `json:"build"`
	}{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
		Build:  buildinfo.Get(),
	})
}

// statusFor maps validation failures to 400 and everything else to 500.
func statusFor(err error) int {
	if errors.IsValidation(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}

// errorResponse is the JSON body for failed API requests.
type errorResponse struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	code := errors.GetCode(err)
	if code == "" && status >= http.StatusInternalServerError {
		code = errors.ErrCodeInternal
	}
	respondJSON(w, status, errorResponse{
		Error:   http.StatusText(status),
		Status:  status,
		Code:    string(code),
		Message: errors.UserMessage(err),
	})
}
