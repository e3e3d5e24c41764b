package llm

import (
	"testing"

	"github.com/tmc/langchaingo/llms"

	"github.com/fermm870-del/prompt-system-pro/pkg/models"
)

func TestMessageTypeMapping(t *testing.T) {
	cases := []struct {
		role string
		want llms.ChatMessageType
	}{
		{models.RoleSystem, llms.ChatMessageTypeSystem},
		{models.RoleUser, llms.ChatMessageTypeHuman},
		{models.RoleAssistant, llms.ChatMessageTypeAI},
		{"tool", llms.ChatMessageTypeGeneric},
		{"", llms.ChatMessageTypeGeneric},
	}
	for _, tc := range cases {
		if got := messageType(tc.role); got != tc.want {
			t.Errorf("messageType(%q) = %q, want %q", tc.role, got, tc.want)
		}
	}
}
