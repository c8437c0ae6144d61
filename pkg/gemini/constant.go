package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// MimeTypeJSON asks the model for a JSON document matching ResponseSchema.
	MimeTypeJSON = "application/json"

	RoleUser  = "user"
	RoleModel = "model"
)

// Schema type names understood by responseSchema.
const (
	TypeObject  = "OBJECT"
	TypeArray   = "ARRAY"
	TypeString  = "STRING"
	TypeInteger = "INTEGER"
	TypeBoolean = "BOOLEAN"
)
