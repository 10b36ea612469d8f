// Package validator defines the input validation contract used across the
// application.
//
// Handlers and use cases depend on the Validator interface; the concrete
// implementation (go-playground/validator v10) lives in this package as well.
package validator

// Validator validates a struct against its declared rules.
type Validator interface {
	// Validate returns nil when data satisfies all rules, or an error
	// describing the violations.
	Validate(data any) error
}
