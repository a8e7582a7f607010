package utils

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestModalInputValue(t *testing.T) {
	data := discordgo.ModalSubmitInteractionData{
		CustomID: "test_modal",
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: "name", Value: "  Иван Иванов  "},
				},
			},
			&discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: "static", Value: "12345"},
				},
			},
		},
	}

	assert.Equal(t, "Иван Иванов", ModalInputValue(data, "name"))
	assert.Equal(t, "12345", ModalInputValue(data, "static"))
	assert.Equal(t, "", ModalInputValue(data, "missing"))
}
