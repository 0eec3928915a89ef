package toast

// icons holds one static markup fragment per variant. The fragments only
// carry class names; colors and animation live in the stylesheet.
var icons = map[Variant]string{
	VariantSuccess: `<span class="toastify-icon toastify-icon--success" aria-hidden="true">` +
		`<svg viewBox="0 0 24 24" width="20" height="20"><circle cx="12" cy="12" r="10"/>` +
		`<path d="M7 12.5l3 3 7-7" fill="none"/></svg></span>`,
	VariantError: `<span class="toastify-icon toastify-icon--error" aria-hidden="true">` +
		`<svg viewBox="0 0 24 24" width="20" height="20"><circle cx="12" cy="12" r="10"/>` +
		`<path d="M8 8l8 8M16 8l-8 8" fill="none"/></svg></span>`,
	VariantWarning: `<span class="toastify-icon toastify-icon--warning" aria-hidden="true">` +
		`<svg viewBox="0 0 24 24" width="20" height="20"><path d="M12 2L1 21h22L12 2z"/>` +
		`<path d="M12 9v5M12 17v1" fill="none"/></svg></span>`,
	VariantInfo: `<span class="toastify-icon toastify-icon--info" aria-hidden="true">` +
		`<svg viewBox="0 0 24 24" width="20" height="20"><circle cx="12" cy="12" r="10"/>` +
		`<path d="M12 11v6M12 7v1" fill="none"/></svg></span>`,
	VariantLoading: `<span class="toastify-icon toastify-icon--loading" aria-hidden="true">` +
		`<svg viewBox="0 0 24 24" width="20" height="20"><circle cx="12" cy="12" r="9" fill="none" ` +
		`stroke-dasharray="42 14"/></svg></span>`,
}

// IconFor returns the icon fragment for v, or "" when none is registered.
func IconFor(v Variant) string {
	return icons[v]
}
