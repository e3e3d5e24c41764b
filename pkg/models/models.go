// Package models defines the data types exchanged between the prompt store,
// the completion service and the API layer.
package models

// Message roles accepted on the chat surface.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Prompt is the atomic stored unit: one text template identified by
// category and name. ID is always category + "/" + name.
type Prompt struct {
	ID       string `json:"id" doc:"Composite prompt identifier" example:"backend/nodejs-api"`
	Category string `json:"category" doc:"Category the prompt belongs to" example:"backend"`
	Name     string `json:"name" doc:"Sanitized prompt name" example:"nodejs-api"`
	Content  string `json:"content,omitempty" doc:"Raw template text"`
}

// Category groups prompts stored under one directory.
type Category struct {
	Name    string   `json:"name" doc:"Category name" example:"backend"`
	Count   int      `json:"count" doc:"Number of prompts in the category" example:"1"`
	Prompts []Prompt `json:"prompts" doc:"Prompt summaries (content omitted)"`
}

// SearchResult is one hit from a substring scan of the store.
type SearchResult struct {
	ID       string `json:"id" example:"backend/nodejs-api"`
	Category string `json:"category" example:"backend"`
	Name     string `json:"name" example:"nodejs-api"`
	Preview  string `json:"preview" doc:"First 150 characters of content"`
}

// Message is an ephemeral role/content pair used inside a single
// generation or chat call. Nothing is persisted between calls; the
// client owns the full transcript.
type Message struct {
	Role    string `json:"role" enum:"system,user,assistant" doc:"Message role"`
	Content string `json:"content" doc:"Message text"`
}

// GenerationResult carries the outcome of a one-shot generation call.
type GenerationResult struct {
	Response   string `json:"response" doc:"Completion text, returned verbatim"`
	Model      string `json:"model" doc:"Model that produced the completion"`
	PromptUsed string `json:"promptUsed" doc:"Prompt id injected as system message, or 'default'"`
}
