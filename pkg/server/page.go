package server

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/matzehuels/spinesort/pkg/arrange"
)

const placeholder = "Paste lines like: book title rgb(233,24,22)"

type methodOption struct {
	Value string
	Label string
}

type pageData struct {
	Text        string
	Placeholder string
	Method      string
	Methods     []methodOption
	Groups      int
	MinGroups   int
	MaxGroups   int
	Stripes     template.HTML
	Sorted      bool
	Records     int
	Skipped     int
	Error       string
}

func (s *Server) newPageData(method arrange.Method, groups int, text string) pageData {
	opts := make([]methodOption, 0, len(arrange.Methods()))
	for _, m := range arrange.Methods() {
		opts = append(opts, methodOption{Value: m.String(), Label: m.Label()})
	}
	return pageData{
		Text:        text,
		Placeholder: placeholder,
		Method:      method.String(),
		Methods:     opts,
		Groups:      groups,
		MinGroups:   arrange.MinGroups,
		MaxGroups:   arrange.MaxGroups,
	}
}

func (s *Server) renderPage(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.logger.Error("render page", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Book Color Input</title>
<style>
  body { margin: 2rem auto; max-width: 640px; font-family: "Segoe UI", sans-serif; }
  textarea { width: 100%; min-height: 12rem; font-family: monospace; }
  .controls { display: flex; gap: 1rem; align-items: center; margin: 1rem 0; flex-wrap: wrap; }
  .error { color: #b00020; font-weight: bold; }
  .summary { color: #555; }
</style>
</head>
<body>
<h1>Book Color Input</h1>
<form method="post" action="/">
  <textarea name="text" placeholder="{{.Placeholder}}">{{.Text}}</textarea>
  <div class="controls">
    <label>Sort by
      <select name="method">
        {{- range .Methods}}
        <option value="{{.Value}}"{{if eq .Value $.Method}} selected{{end}}>{{.Label}}</option>
        {{- end}}
      </select>
    </label>
    <label>Groups
      <input type="range" name="groups" min="{{.MinGroups}}" max="{{.MaxGroups}}" value="{{.Groups}}"
        oninput="this.nextElementSibling.value = this.value">
      <output>{{.Groups}}</output>
    </label>
    <button type="submit">Sort Now</button>
  </div>
</form>
{{- if .Error}}
<p class="error" role="alert">{{.Error}}</p>
{{- end}}
{{- if .Sorted}}
<p class="summary">{{.Records}} colors{{if .Skipped}}, {{.Skipped}} lines skipped{{end}}</p>
<div class="stripes">
{{.Stripes}}</div>
{{- end}}
</body>
</html>
`))
