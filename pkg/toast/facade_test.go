package toast

import (
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/toastkit/pkg/dom"
)

func TestFacadeVariants(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name string
		show func(title, message string, opts ...Toastify) *Handle
		icon string
	}{
		{"success", h.toaster.Success, "toastify-icon--success"},
		{"error", h.toaster.Error, "toastify-icon--error"},
		{"warning", h.toaster.Warning, "toastify-icon--warning"},
		{"info", h.toaster.Info, "toastify-icon--info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := h.element(t, tt.show("Title", "Body"))
			html := el.InnerHTML()
			if !strings.Contains(html, tt.icon) {
				t.Errorf("missing %s in %q", tt.icon, html)
			}
			if !strings.Contains(html, ">Title<") || !strings.Contains(html, ">Body<") {
				t.Errorf("title or message missing in %q", html)
			}
		})
	}
}

func TestFacadeEmptyTitleUsesVariant(t *testing.T) {
	h := newHarness(t)
	el := h.element(t, h.toaster.Warning("", ""))
	if !strings.Contains(el.InnerHTML(), ">Warning<") {
		t.Errorf("expected default title Warning, got %q", el.InnerHTML())
	}
	if strings.Contains(el.InnerHTML(), MessageClass) {
		t.Error("empty message should be omitted")
	}
}

func TestFacadePassesToastify(t *testing.T) {
	h := newHarness(t)

	clicked := false
	handle := h.toaster.Error("Failed", "", Toastify{
		Duration: Int(0),
		Style:    map[string]string{"color": "red"},
		OnClick:  func(dom.Event, *dom.Element) { clicked = true },
	})
	el := h.element(t, handle)

	if h.sched.Pending() != 0 {
		t.Error("duration 0 should disable auto-dismiss")
	}
	if el.Style().Get("color") != "red" {
		t.Error("style should be applied")
	}
	el.Dispatch(dom.Event{Type: dom.EventClick})
	if !clicked {
		t.Error("OnClick should be attached")
	}
}

func TestFacadeAutoDismisses(t *testing.T) {
	h := newHarness(t)
	el := h.element(t, h.toaster.Success("Saved", ""))

	h.sched.Advance(4 * time.Second)
	if !el.ClassList().Contains(ExitClass) {
		t.Error("success toast should auto-dismiss after the default duration")
	}
}

func TestPackageLevelShowUsesGlobalDocument(t *testing.T) {
	handle := Info("Hello", "", Toastify{Duration: Int(0)})
	defer func() {
		handle.Dismiss()
		if el := dom.Global().ByData(DataID, handle.ID()); el != nil {
			finishExit(el)
		}
	}()

	if n := len(dom.Global().QueryAllClass(ContainerClass)); n != 1 {
		t.Fatalf("global document has %d surfaces, want 1", n)
	}
	if dom.Global().ByData(DataID, handle.ID()) == nil {
		t.Error("toast should be attached to the global document")
	}

	second := Show(Options{Variant: "loading"})
	defer second.Dismiss()
	if n := len(dom.Global().QueryAllClass(ContainerClass)); n != 1 {
		t.Errorf("global document has %d surfaces after second toast, want 1", n)
	}
}
