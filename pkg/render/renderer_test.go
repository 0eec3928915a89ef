package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/toastkit/pkg/dom"
)

func TestRenderElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	doc := dom.NewDocument()
	el := doc.CreateElement("div")
	el.ClassList().Add("toast", "active")
	el.Style().Set("color", "red")
	el.SetAttr("role", "status")
	el.SetData("id", "42")

	html, err := renderer.RenderToString(el.Snapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<div class="toast active" style="color: red" data-id="42" role="status"></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderInnerHTMLIsRaw(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	doc := dom.NewDocument()
	el := doc.CreateElement("div")
	el.SetInnerHTML(`<strong>Saved</strong>`)

	html, err := renderer.RenderToString(el.Snapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<div><strong>Saved</strong></div>` {
		t.Errorf("got %q", html)
	}
}

func TestRenderAttributeEscaping(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	doc := dom.NewDocument()
	el := doc.CreateElement("div")
	el.SetAttr("title", `"quoted" <tag>`)

	html, err := renderer.RenderToString(el.Snapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, `title="&quot;quoted&quot; &lt;tag&gt;"`) {
		t.Errorf("attribute should be escaped, got %q", html)
	}
}

func TestRenderVoidElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	doc := dom.NewDocument()
	el := doc.CreateElement("img")
	el.SetAttr("src", "/icon.png")

	html, err := renderer.RenderToString(el.Snapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<img src="/icon.png">` {
		t.Errorf("got %q", html)
	}
}

func TestRenderNested(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	doc := dom.NewDocument()
	outer := doc.CreateElement("section")
	inner := doc.CreateElement("p")
	inner.SetInnerHTML("x")
	outer.AppendChild(inner)

	html, err := renderer.RenderToString(outer.Snapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != `<section><p>x</p></section>` {
		t.Errorf("got %q", html)
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})

	doc := dom.NewDocument()
	outer := doc.CreateElement("div")
	outer.AppendChild(doc.CreateElement("span"))

	html, err := renderer.RenderToString(outer.Snapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<div>\n  <span></span>\n</div>\n" {
		t.Errorf("got %q", html)
	}
}

func TestRenderNil(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	html, err := renderer.RenderToString(nil)
	if err != nil || html != "" {
		t.Errorf("nil node should render nothing, got %q, %v", html, err)
	}
}

func TestRenderPage(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	doc := dom.NewDocument()
	el := doc.CreateElement("div")
	el.ClassList().Add("toastify-container")
	doc.Body().AppendChild(el)

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Title:       "A & B",
		Body:        doc.Snapshot(),
		StyleSheets: []string{"/static/toast.css"},
		Script:      "console.log(1)",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>A &amp; B</title>",
		`<link rel="stylesheet" href="/static/toast.css">`,
		`<div class="toastify-container"></div>`,
		"<script>console.log(1)</script>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q:\n%s", want, html)
		}
	}
	if strings.Contains(html, "<body><body>") || strings.Count(html, "<body>") != 1 {
		t.Error("body wrapper should not be rendered twice")
	}
}

func TestEscapeHTML(t *testing.T) {
	got := EscapeHTML(`<a href="x">Tom & 'Jerry'</a>`)
	want := "&lt;a href=&quot;x&quot;&gt;Tom &amp; &#39;Jerry&#39;&lt;/a&gt;"
	if got != want {
		t.Errorf("EscapeHTML() = %q, want %q", got, want)
	}
}

func TestEscapeAttrWhitespace(t *testing.T) {
	if got := escapeAttr("a\nb\tc"); got != "a&#10;b&#9;c" {
		t.Errorf("escapeAttr() = %q", got)
	}
}
