package dom

import (
	"sync"
	"testing"
)

func TestAppendAndRemove(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("DIV")

	if el.Tag() != "div" {
		t.Errorf("Tag() = %q, want div", el.Tag())
	}
	if el.IsConnected() {
		t.Error("new element should be detached")
	}

	doc.Body().AppendChild(el)
	if !el.IsConnected() {
		t.Error("appended element should be connected")
	}
	if el.Parent() != doc.Body() {
		t.Error("parent should be body")
	}

	if !el.Remove() {
		t.Error("Remove() on attached element should report true")
	}
	if el.IsConnected() {
		t.Error("removed element should be detached")
	}
	if el.Remove() {
		t.Error("second Remove() should report false")
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	doc.Body().AppendChild(parent)

	a := doc.CreateElement("span")
	b := doc.CreateElement("span")
	c := doc.CreateElement("span")
	parent.AppendChild(a)
	parent.AppendChild(b)
	parent.AppendChild(c)

	got := parent.Children()
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Fatalf("children out of order: %v", got)
	}

	parent.AppendChild(a)
	got = parent.Children()
	if got[2] != a {
		t.Error("re-appending should move the element to the end")
	}
}

func TestQueryClass(t *testing.T) {
	doc := NewDocument()
	if doc.QueryClass("box") != nil {
		t.Fatal("empty document should not match")
	}

	outer := doc.CreateElement("div")
	outer.ClassList().Add("box outer")
	inner := doc.CreateElement("div")
	inner.ClassList().Add("box")
	outer.AppendChild(inner)
	doc.Body().AppendChild(outer)

	if got := doc.QueryClass("box"); got != outer {
		t.Error("QueryClass should return the first match in document order")
	}
	if n := len(doc.QueryAllClass("box")); n != 2 {
		t.Errorf("QueryAllClass() found %d, want 2", n)
	}

	detached := doc.CreateElement("div")
	detached.ClassList().Add("lonely")
	if doc.QueryClass("lonely") != nil {
		t.Error("detached elements must not be found")
	}
}

func TestByData(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.SetData("toast-id", "abc")
	doc.Body().AppendChild(el)

	if doc.ByData("toast-id", "abc") != el {
		t.Error("ByData should find the element")
	}
	if doc.ByData("toast-id", "xyz") != nil {
		t.Error("ByData should not match other values")
	}
}

func TestClassList(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	el.ClassList().Add("a", "b", "a")
	if got := el.ClassList().String(); got != "a b" {
		t.Errorf("classes = %q, want %q", got, "a b")
	}

	el.ClassList().Remove("a")
	if el.ClassList().Contains("a") {
		t.Error("a should be removed")
	}
	if !el.ClassList().Contains("b") {
		t.Error("b should remain")
	}
}

func TestStyle(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	el.Style().Set("color", "red")
	el.Style().Set("background", "blue")
	el.Style().Set("color", "green")

	if got := el.Style().CSSText(); got != "color: green; background: blue" {
		t.Errorf("CSSText() = %q", got)
	}

	el.Style().Set("color", "")
	if el.Style().Get("color") != "" || el.Style().Len() != 1 {
		t.Error("empty value should remove the property")
	}

	el.Style().SetAll(map[string]string{"z-index": "3", "margin": "0"})
	if got := el.Style().CSSText(); got != "background: blue; margin: 0; z-index: 3" {
		t.Errorf("CSSText() after SetAll = %q", got)
	}
}

func TestSetInnerHTMLDropsChildren(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	child := doc.CreateElement("span")
	parent.AppendChild(child)

	parent.SetInnerHTML("<b>hi</b>")

	if len(parent.Children()) != 0 {
		t.Error("children should be dropped")
	}
	if child.Parent() != nil {
		t.Error("dropped child should be detached")
	}
	if parent.InnerHTML() != "<b>hi</b>" {
		t.Errorf("InnerHTML() = %q", parent.InnerHTML())
	}
}

func TestOnceListenerFiresOnce(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	calls := 0
	el.AddEventListener(EventAnimationEnd, func(Event) { calls++ }, ListenerOptions{Once: true})

	el.Dispatch(Event{Type: EventAnimationEnd})
	el.Dispatch(Event{Type: EventAnimationEnd})

	if calls != 1 {
		t.Errorf("once listener called %d times, want 1", calls)
	}
	if el.ListenerCount(EventAnimationEnd) != 0 {
		t.Error("once listener should be detached after firing")
	}
}

func TestListenerRemoveAndTarget(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	var target *Element
	remove := el.AddEventListener(EventClick, func(ev Event) { target = ev.Target })

	if n := el.Dispatch(Event{Type: EventClick}); n != 1 {
		t.Errorf("Dispatch() invoked %d listeners, want 1", n)
	}
	if target != el {
		t.Error("target should default to the dispatching element")
	}

	remove()
	if n := el.Dispatch(Event{Type: EventClick}); n != 0 {
		t.Errorf("Dispatch() after remove invoked %d listeners", n)
	}
}

func TestListenerMayMutateDocument(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	doc.Body().AppendChild(el)

	el.AddEventListener(EventAnimationEnd, func(Event) {
		el.Remove()
	}, ListenerOptions{Once: true})

	el.Dispatch(Event{Type: EventAnimationEnd})

	if el.IsConnected() {
		t.Error("listener should have detached the element")
	}
}

func TestObserve(t *testing.T) {
	doc := NewDocument()
	var got []MutationKind
	stop := doc.Observe(func(m Mutation) { got = append(got, m.Kind) })

	el := doc.CreateElement("div")
	doc.Body().AppendChild(el)
	el.ClassList().Add("x")
	el.ClassList().Remove("x")
	el.Remove()

	want := []MutationKind{MutationAppend, MutationClassAdd, MutationClassRemove, MutationRemove}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mutation %d = %s, want %s", i, got[i], want[i])
		}
	}

	stop()
	doc.Body().AppendChild(doc.CreateElement("p"))
	if len(got) != len(want) {
		t.Error("stopped observer should not receive mutations")
	}
}

func TestSnapshot(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.ClassList().Add("card")
	el.Style().Set("color", "red")
	el.SetAttr("role", "status")
	el.SetInnerHTML("<p>x</p>")
	doc.Body().AppendChild(el)

	snap := doc.Snapshot()
	if len(snap.Children) != 1 {
		t.Fatalf("body snapshot has %d children", len(snap.Children))
	}
	card := snap.Children[0]
	if !card.HasClass("card") || card.Style != "color: red" || card.Attrs["role"] != "status" {
		t.Errorf("unexpected snapshot: %+v", card)
	}
	if card.Children[0].Kind != KindRaw || card.Children[0].Text != "<p>x</p>" {
		t.Error("inner HTML should snapshot as a raw node")
	}

	el.ClassList().Add("later")
	if card.HasClass("later") {
		t.Error("snapshot must not observe later mutations")
	}
}

func TestGlobalIsSingleton(t *testing.T) {
	if Global() != Global() {
		t.Error("Global() should always return the same document")
	}
}

func TestConcurrentMutation(t *testing.T) {
	doc := NewDocument()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			el := doc.CreateElement("div")
			doc.Body().AppendChild(el)
			el.ClassList().Add("c")
			el.Remove()
		}()
	}
	wg.Wait()

	if n := len(doc.Body().Children()); n != 0 {
		t.Errorf("body has %d children, want 0", n)
	}
}
