package portfolio

import "errors"

// Configuration errors: broken deployment asset or caller misuse, never retried.
var (
	ErrUnsupportedTemplateMode = errors.New("unsupported site template")
	ErrUnsupportedDesignTheme  = errors.New("unsupported design theme")
	ErrBrokenTemplate          = errors.New("template project loop block ({% for project in projects %}...{% endfor %}) not found or appears multiple times in template")
)

// State-precondition errors
var (
	ErrNoDraft = errors.New("missing or invalid data/workflow_state.json, generate a draft first")
)

// Lookup errors
var (
	ErrPortfolioNotFound = errors.New("portfolio not found")
)
