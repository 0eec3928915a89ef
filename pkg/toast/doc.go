// Package toast shows transient notification messages ("toasts") in a
// server-side document.
//
// A Toaster owns a single display surface, a div.toastify-container
// attached to the document body on first use. Every Show call appends a
// new div.toastify element to it and returns a Handle:
//
//	h := toast.Show(toast.Options{
//	    Variant: "success",
//	    Title:   "Settings",
//	    Message: "Your changes have been saved.",
//	})
//	defer h.Dismiss()
//
// With the shorthand helpers:
//
//	toast.Success("Project deleted", "")
//	toast.Error("Upload failed", err.Error(), toast.Toastify{Duration: toast.Int(0)})
//
// # Lifecycle
//
// A toast moves through created, displayed, exiting and removed. Unless the
// variant is loading or the duration is 0, the toast is dismissed after
// max(500ms, duration). Dismissing adds the toastify-exit class; the element
// is detached when the stylesheet's exit animation reports completion with
// an animationend event. Dismiss is idempotent.
//
// # Defaults
//
// SetDefaults and GetDefaults manage the process-wide duration (4000ms) and
// inline style. Per-call Toastify options override them for one toast only.
//
// # Styling
//
// The package emits class names and structure only. Colors, positioning and
// keyframes belong to the stylesheet.
package toast
