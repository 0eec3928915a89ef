// Package dom provides the server-side document model toasts are rendered into.
//
// A Document owns a tree of mutable Elements rooted at its body. Unlike a
// virtual DOM that is rebuilt and diffed on every render, elements here are
// mutated in place: classes are toggled, inline styles applied, children
// appended and removed. Every structural change is published to observers as
// a Mutation so a transport can mirror the document to connected browsers.
//
// # Elements
//
//	doc := dom.NewDocument()
//	el := doc.CreateElement("div")
//	el.ClassList().Add("card")
//	el.Style().Set("color", "red")
//	doc.Body().AppendChild(el)
//
// # Events
//
// Listeners are registered per event type. A listener registered with
// Once is detached before it runs, so it fires at most once:
//
//	el.AddEventListener(dom.EventAnimationEnd, func(ev dom.Event) {
//	    el.Remove()
//	}, dom.ListenerOptions{Once: true})
//
// # Snapshots
//
// Snapshot returns an immutable Node tree that can be rendered to HTML
// without holding the document lock.
//
// # Concurrency
//
// All elements of a document share the document's lock. Listeners and
// observers are always invoked with the lock released, so they may freely
// mutate the document.
package dom
