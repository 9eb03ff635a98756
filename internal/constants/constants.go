package constants

// Pagination
const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// Validation bounds
const (
	MinUsernameLength = 3
	MaxUsernameLength = 100
	MinPasswordLength = 7
	MaxPasswordLength = 100
	MaxTitleLength    = 100
)

// Context keys
const (
	ContextKeyUser = "current_user"
)
