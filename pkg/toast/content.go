package toast

import (
	"strings"

	"github.com/vango-dev/toastkit/pkg/render"
)

// Class names shared with the external stylesheet.
const (
	ContainerClass = "toastify-container"
	ToastClass     = "toastify"
	ExitClass      = "toastify-exit"
	BodyClass      = "toastify-body"
	TitleClass     = "toastify-title"
	MessageClass   = "toastify-message"
)

// Content is the input to Build.
type Content struct {
	Variant  string
	Title    string
	Message  string
	WithIcon bool

	// HTML, when non-empty, is used verbatim as the toast body and every
	// other field is ignored.
	HTML string
}

// Build composes the toast body markup.
func Build(c Content) string {
	if c.HTML != "" {
		return c.HTML
	}

	v := Normalize(c.Variant)
	title := c.Title
	if strings.TrimSpace(title) == "" {
		title = v.Title()
	}

	var b strings.Builder
	if c.WithIcon {
		b.WriteString(IconFor(v))
	}
	b.WriteString(`<div class="` + BodyClass + `">`)
	b.WriteString(`<div class="` + TitleClass + `">`)
	b.WriteString(render.EscapeHTML(title))
	b.WriteString(`</div>`)
	if c.Message != "" {
		b.WriteString(`<div class="` + MessageClass + `">`)
		b.WriteString(render.EscapeHTML(c.Message))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}
