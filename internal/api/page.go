package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/dgallion1/mdview/internal/docstore"
	"github.com/dgallion1/mdview/internal/viewer"
	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/google/safehtml/uncheckedconversions"
)

const appTitle = "Markdown Viewer"

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{if .DocTitle}}{{.DocTitle}} - {{end}}{{.AppTitle}}</title>
<style>
body { margin: 0; font-family: sans-serif; display: flex; min-height: 100vh; }
aside { width: 20rem; padding: 1rem; background: #f0f2f6; overflow-y: auto; }
main { flex: 1; padding: 1rem 2rem; max-width: none; }
aside a { text-decoration: none; color: inherit; }
aside summary { cursor: pointer; }
mark { background: #ffe066; }
.hint { color: #555; }
.matches { font-size: 0.9rem; color: #555; }
</style>
</head>
<body>
<aside>
{{if .HasDoc}}
{{if not .Standalone}}
<form method="get">
<input type="search" name="q" value="{{.Query}}" placeholder="Search">
<button type="submit">Search</button>
</form>
{{end}}
{{if .Query}}<p class="matches">{{.Matches}} matches</p>{{end}}
<hr>
{{if .HasTOC}}
<h2>Table of Contents</h2>
<nav>
{{.TOC}}
</nav>
{{end}}
{{end}}
</aside>
<main>
<h1>{{.AppTitle}}</h1>
{{if not .Standalone}}
<form method="post" action="/documents" enctype="multipart/form-data">
<input type="file" name="file" accept=".md,.markdown,.txt,.html,.htm,.csv,.pdf,.docx">
<button type="submit">Upload</button>
</form>
{{end}}
{{if .HasDoc}}
<p class="hint">{{.Filename}}</p>
<article>
{{.Content}}
</article>
{{else}}
<p class="hint">Upload a markdown file to get started.</p>
{{end}}
</main>
</body>
</html>
`

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// pageData feeds pageTemplate. TOC and Content are produced by the viewer
// and trusted as HTML.
type pageData struct {
	AppTitle string
	DocTitle string
	Filename string
	Query    string
	Matches  int
	HasDoc   bool
	HasTOC   bool
	// Standalone pages are written to disk and carry no forms.
	Standalone bool
	TOC        safehtml.HTML
	Content    safehtml.HTML
}

func indexPage() pageData {
	return pageData{AppTitle: appTitle}
}

func documentPage(doc docstore.Document, query string, page *viewer.Page) pageData {
	return pageData{
		AppTitle: appTitle,
		DocTitle: doc.Title,
		Filename: doc.Filename,
		Query:    query,
		Matches:  page.Matches,
		HasDoc:   true,
		HasTOC:   len(page.Headings) > 0,
		TOC:      uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(page.TOC),
		Content:  uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(page.Content),
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, indexPage())
}

// writePage renders data as the HTML response.
func (s *Server) writePage(w http.ResponseWriter, data pageData) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		s.log.Error("page template failed", "error", err)
		jsonError(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// WritePage writes a self-contained viewer page for an already rendered
// document.
func WritePage(w io.Writer, title, query string, page *viewer.Page) error {
	data := documentPage(docstore.Document{Title: title}, query, page)
	data.Standalone = true
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}
