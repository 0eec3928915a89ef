package errors

import (
	"net/http"
	"sort"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	Status   int
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E100-E199)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be read or parsed.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid server port",
		Detail:   "Port must be between 0 and 65535.",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Unsupported configuration format",
		Detail:   "Supported extensions are .json, .yaml, .yml and .toml.",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Invalid toast defaults",
		Detail:   "Duration must be a non-negative number of milliseconds.",
	},

	// ============================================
	// Server Errors (E200-E299)
	// ============================================

	"E200": {
		Category: CategoryValidation,
		Message:  "Invalid request body",
		Status:   http.StatusBadRequest,
	},
	"E201": {
		Category: CategoryRuntime,
		Message:  "Toast not found",
		Detail:   "The toast does not exist or has already been removed.",
		Status:   http.StatusNotFound,
	},
	"E202": {
		Category: CategoryProtocol,
		Message:  "Rate limit exceeded",
		Detail:   "Too many toasts requested; retry shortly.",
		Status:   http.StatusTooManyRequests,
	},
	"E203": {
		Category: CategoryProtocol,
		Message:  "WebSocket upgrade failed",
		Status:   http.StatusBadRequest,
	},
	"E204": {
		Category: CategoryRuntime,
		Message:  "Server failed",
		Status:   http.StatusInternalServerError,
	},

	// ============================================
	// CLI Errors (E300-E399)
	// ============================================

	"E300": {
		Category: CategoryCLI,
		Message:  "Request to toastkit server failed",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for a code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
