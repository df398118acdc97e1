package view

import (
	"html/template"
	"io"

	"agentverse-browser/internal/model"
)

// HTML renderers for the result cards, pagination bar and detail overlay.
// Everything goes through html/template so untrusted catalog text is
// escaped; no string concatenation builds markup anywhere.

var cardsTmpl = template.Must(template.New("cards").Parse(`<div class="results">
{{- range . }}
<div class="card card-{{ .Color }}" data-id="{{ .ID }}">
  <div class="card-head">
    <span class="icon">{{ .Icon }}</span>
    <span class="type">{{ .ContentType }}</span>
    <span class="indexed">{{ .Indexed }}</span>
  </div>
  <h3 class="title">{{ .Title }}</h3>
  {{- if .Description }}
  <p class="description">{{ .Description }}</p>
  {{- end }}
  <div class="agent">
    <span class="avatar">{{ .AgentInitial }}</span>
    <span class="agent-name">{{ .AgentName }}</span>
    {{- if .AgentType }}<span class="agent-type">{{ .AgentType }}</span>{{ end }}
  </div>
  {{- if .Tags }}
  <div class="tags">
    {{- range .Tags }}<span class="tag">{{ . }}</span>{{ end }}
  </div>
  {{- end }}
  <div class="counts">
    <span class="views">{{ .Views }}</span>
    <span class="likes">{{ .Likes }}</span>
    <span class="shares">{{ .Shares }}</span>
    <span class="downloads">{{ .Downloads }}</span>
  </div>
</div>
{{- end }}
</div>
`))

var paginationTmpl = template.Must(template.New("pagination").Parse(`<nav class="pagination">
<button class="prev"{{ if not .HasPrev }} disabled{{ end }}>Prev</button>
{{- range .Buttons }}
<button class="page{{ if eq . $.Page }} current{{ end }}">{{ . }}</button>
{{- end }}
<button class="next"{{ if not .HasNext }} disabled{{ end }}>Next</button>
</nav>
`))

var detailTmpl = template.Must(template.New("detail").Parse(`<div class="overlay">
<div class="overlay-head">
  <span class="icon">{{ .Icon }}</span>
  <h2 class="title">{{ .Title }}</h2>
</div>
{{- if .Description }}
<p class="description">{{ .Description }}</p>
{{- end }}
<div class="agent">
  <span class="avatar">{{ .AgentInitial }}</span>
  <span class="agent-name">{{ .AgentName }}</span>
</div>
<dl class="meta">
  <dt>Type</dt><dd>{{ .ContentType }}</dd>
  {{- if .Platform }}<dt>Platform</dt><dd>{{ .Platform }}</dd>{{ end }}
  <dt>Indexed</dt><dd>{{ .Indexed }}</dd>
</dl>
{{- if .ContentURL }}
<a class="content-link" href="{{ .ContentURL }}">Open</a>
{{- end }}
{{- if .SourceURL }}
<a class="source-link" href="{{ .SourceURL }}">Source</a>
{{- end }}
</div>
`))

// RenderCards writes the result list markup for a page of items.
func RenderCards(w io.Writer, items []model.ContentItem) error {
	return cardsTmpl.Execute(w, Cards(items))
}

// RenderPagination writes the pagination bar markup.
func RenderPagination(w io.Writer, page, totalPages int) error {
	return paginationTmpl.Execute(w, PageWindow(page, totalPages))
}

// RenderDetail writes the detail overlay markup for a single item.
func RenderDetail(w io.Writer, item model.ContentItem) error {
	return detailTmpl.Execute(w, NewCard(item))
}
