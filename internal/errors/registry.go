package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryRuntime,
		Message:  "Render failed",
		Detail:   "Writing rendered markup to its destination failed. The output may be incomplete.",
	},
	"E002": {
		Category: CategoryRuntime,
		Message:  "Escape stream failed",
		Detail:   "Reading the input or writing the escaped output failed part way through.",
	},
	"E003": {
		Category: CategoryRuntime,
		Message:  "Output upload failed",
		Detail:   "The escaped document could not be uploaded to object storage.",
	},
	"E004": {
		Category: CategoryRuntime,
		Message:  "Output write failed",
		Detail:   "The output file could not be written. An existing file at that path is left untouched.",
	},

	// ============================================
	// Config Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "A value in markup.json is out of range.",
	},
	"E021": {
		Category: CategoryConfig,
		Message:  "Configuration unreadable",
		Detail:   "markup.json exists but could not be read or parsed.",
	},
	"E022": {
		Category: CategoryConfig,
		Message:  "Configuration not found",
		Detail:   "No markup.json was found in the directory or any parent directory.",
	},
	"E023": {
		Category: CategoryConfig,
		Message:  "Configuration already exists",
		Detail:   "markup.json is already present in this directory.",
	},

	// ============================================
	// Validation Errors (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryValidation,
		Message:  "Unknown page",
		Detail:   "No page is registered under that name.",
	},
	"E041": {
		Category: CategoryValidation,
		Message:  "Invalid buffer size",
		Detail:   "The read buffer must hold at least one byte.",
	},
	"E042": {
		Category: CategoryValidation,
		Message:  "Invalid output location",
		Detail:   "Output must be a file path or an s3://bucket/key URL.",
	},

	// ============================================
	// CLI Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategoryCLI,
		Message:  "Server failed",
		Detail:   "The preview server stopped with an error.",
	},
}

// GetAllCodes returns all registered error codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
