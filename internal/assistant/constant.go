package assistant

import "time"

// Log prefixes
const (
	LogPrefixExtract   = "internal.assistant.ExtractTasks"
	LogPrefixChecklist = "internal.assistant.GenerateChecklist"
	LogPrefixAsk       = "internal.assistant.Ask"
)

// Prompts
const (
	SystemPromptExtract = "You are a UAE Life Admin assistant. Help users track Ejari, DEWA, Visa renewals, and Emirates ID dates."

	PromptExtractText  = `Current Date: %s. Analyze this text and extract UAE Life Admin tasks: "%s"`
	PromptExtractAudio = "Current Date: %s. Listen to this audio and extract tasks into the specified JSON format."

	PromptChecklist = `Generate a checklist (max %d items) for: "%s" in category "%s". If it's too simple, return empty.`

	SystemPromptAsk = "You are a helpful life admin assistant. Answer questions about the user's schedule."
	PromptAsk       = `Query: "%s". Context: %s. Answer briefly.`

	FallbackAnswer = "I couldn't find that information."
)

// Limits
const (
	MaxChecklistItems = 5

	DefaultRequestsPerMin = 30
	DefaultBurst          = 5
	DefaultCacheSize      = 256
	DefaultCacheTTL       = 24 * time.Hour

	ExtractTemperature   = 0.2
	ChecklistTemperature = 0.4
	AskMaxOutputTokens   = 512
)
