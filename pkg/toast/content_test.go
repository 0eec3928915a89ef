package toast

import (
	"strings"
	"testing"
)

func TestBuildHTMLOverride(t *testing.T) {
	html := `<em>custom</em>`
	got := Build(Content{Variant: "error", Title: "ignored", Message: "ignored", WithIcon: true, HTML: html})
	if got != html {
		t.Errorf("Build() = %q, want verbatim override", got)
	}
}

func TestBuildDefaultTitle(t *testing.T) {
	got := Build(Content{Variant: "success"})
	if !strings.Contains(got, `<div class="toastify-title">Success</div>`) {
		t.Errorf("expected default title Success, got %q", got)
	}

	got = Build(Content{Variant: "bogus", Title: "   "})
	if !strings.Contains(got, `<div class="toastify-title">Info</div>`) {
		t.Errorf("blank title should fall back to Info, got %q", got)
	}
}

func TestBuildMessage(t *testing.T) {
	got := Build(Content{Message: "x"})
	if !strings.Contains(got, `<div class="toastify-message">x</div>`) {
		t.Errorf("expected message block, got %q", got)
	}

	got = Build(Content{})
	if strings.Contains(got, MessageClass) {
		t.Errorf("absent message must not render a placeholder, got %q", got)
	}
}

func TestBuildIcon(t *testing.T) {
	with := Build(Content{Variant: "warning", WithIcon: true})
	if !strings.HasPrefix(with, IconFor(VariantWarning)) {
		t.Errorf("icon should precede the body, got %q", with)
	}

	without := Build(Content{Variant: "warning"})
	if strings.Contains(without, "toastify-icon") {
		t.Errorf("icon should be omitted, got %q", without)
	}
}

func TestBuildEscapesText(t *testing.T) {
	got := Build(Content{Title: "<b>", Message: "a & b"})
	if strings.Contains(got, "<b>") {
		t.Errorf("title should be escaped, got %q", got)
	}
	if !strings.Contains(got, "a &amp; b") {
		t.Errorf("message should be escaped, got %q", got)
	}
}

func TestBuildStructure(t *testing.T) {
	got := Build(Content{Variant: "info", Title: "T", Message: "M"})
	want := `<div class="toastify-body"><div class="toastify-title">T</div><div class="toastify-message">M</div></div>`
	if got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}
