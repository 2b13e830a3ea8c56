package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
)

var (
	//go:embed templates/introspect.gohtml
	templateFS embed.FS
	tmpl       = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

// IntrospectHandler serves the dependency graph the introspector rendered at
// startup as an HTML page with an embedded Mermaid diagram.
func IntrospectHandler(w http.ResponseWriter, r *http.Request) {
	mermaidGraph, err := depend.ResolveNamed[string]("introspection-graph-mermaid")
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	page := struct {
		Graph string
		Title string
	}{
		Title: "TaskApp Introspection Graph",
		Graph: mermaidGraph,
	}
	if err := tmpl.Execute(w, page); err != nil {
		http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
	}
}
