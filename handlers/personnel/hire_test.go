package personnel

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		input string
		first string
		last  string
	}{
		{"Иван Иванов", "Иван", "Иванов"},
		{"  Иван   Иванов  ", "Иван", "Иванов"},
		{"Иван", "Иван", ""},
		{"Анна Мария Петрова", "Анна", "Мария Петрова"},
		{"", "", ""},
	}
	for _, tt := range tests {
		first, last := splitFullName(tt.input)
		assert.Equal(t, tt.first, first, "input %q", tt.input)
		assert.Equal(t, tt.last, last, "input %q", tt.input)
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "", displayName(nil))
	assert.Equal(t, "Ник", displayName(&discordgo.Member{Nick: "Ник"}))
	assert.Equal(t, "Глобальное", displayName(&discordgo.Member{
		User: &discordgo.User{Username: "user", GlobalName: "Глобальное"},
	}))
	assert.Equal(t, "user", displayName(&discordgo.Member{
		User: &discordgo.User{Username: "user"},
	}))
}
