// Package render serializes dom snapshots to HTML.
//
// The renderer walks an immutable dom.Node tree and produces valid HTML5:
//
//   - Text in attribute values is escaped
//   - Raw inner HTML is written verbatim
//   - Void elements (img, br, input, ...) get no closing tag
//   - Attributes are emitted in sorted order for deterministic output
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(el.Snapshot())
//
// # Full Page Rendering
//
//	err := renderer.RenderPage(w, render.PageData{
//	    Title:       "Notifications",
//	    Body:        doc.Snapshot(),
//	    StyleSheets: []string{"/static/toast.css"},
//	})
//
// EscapeHTML is exported so that markup builders outside this package share
// one escaping routine.
package render
