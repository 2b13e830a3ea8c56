package app

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// mermaidGraphDependency is the name under which the rendered graph is
// registered. The HTTP introspection endpoint resolves it by this name.
const mermaidGraphDependency = "introspection-graph-mermaid"

// MermaidGraphIntrospector renders the application's configuration and
// dependency report as a Mermaid graph so it can be served over HTTP.
type MermaidGraphIntrospector struct {
}

// Introspect converts the introspection report into Mermaid syntax and
// registers the result as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, mermaidGraphDependency)
	return nil
}
