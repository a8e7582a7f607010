package utils

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// TextInputRow wraps a text input into the action row a modal expects.
func TextInputRow(input discordgo.TextInput) discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{input},
	}
}

// ModalInputValue extracts the trimmed value of a modal text input by
// its custom ID, or "" when the input is absent.
func ModalInputValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionsRow.Components {
			input, ok := component.(*discordgo.TextInput)
			if !ok {
				continue
			}
			if input.CustomID == customID {
				return strings.TrimSpace(input.Value)
			}
		}
	}
	return ""
}
