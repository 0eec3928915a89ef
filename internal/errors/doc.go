// Package errors provides structured error messages for toastkit's
// configuration, server and CLI layers.
//
// Each error carries a code (e.g., "E100") that maps to a category, a
// short message, a detailed explanation and, for server errors, an HTTP
// status:
//
//	err := errors.New("E100").
//	    WithDetail("No toastkit.json found in /srv/app").
//	    WithSuggestion("Run 'toastkit serve --config path/to/toastkit.json'")
//
//	fmt.Println(err.Format())
//
// The toast lifecycle itself never returns errors; malformed input there
// degrades to a default rendering.
package errors
