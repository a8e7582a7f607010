package sheets

import (
	"context"
	"log"
	"strings"

	"personnel-bot/utils"
)

// ModeratorRegistry resolves moderators to their audit signatures from
// the registry worksheet: column B holds full names, column J the
// "Имя Фамилия | статик" composite used to sign audit rows.
type ModeratorRegistry struct {
	client *Client
	sheet  string
}

// NewModeratorRegistry binds the registry to its worksheet.
func NewModeratorRegistry(client *Client, sheet string) *ModeratorRegistry {
	return &ModeratorRegistry{client: client, sheet: sheet}
}

// SignatureBySurname scans the name column for a case-insensitive surname
// match and returns the corresponding column J value. Returns ErrNotFound
// when no registered moderator matches.
func (m *ModeratorRegistry) SignatureBySurname(ctx context.Context, surname string) (string, error) {
	rows, err := m.client.ReadRange(ctx, m.sheet, "A:J")
	if err != nil {
		return "", err
	}

	target := strings.ToLower(strings.TrimSpace(surname))
	if target == "" {
		return "", ErrNotFound
	}

	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		name := strings.TrimSpace(row[1])
		if name == "" {
			continue
		}
		parts := strings.Fields(name)
		if len(parts) < 2 {
			continue
		}
		if strings.ToLower(parts[len(parts)-1]) == target {
			if len(row) >= 10 && strings.TrimSpace(row[9]) != "" {
				return strings.TrimSpace(row[9]), nil
			}
		}
	}
	return "", ErrNotFound
}

// Signature resolves the audit signature for a moderator's display name:
// the registry entry when the surname is registered, otherwise the
// cleaned display name itself.
func (m *ModeratorRegistry) Signature(ctx context.Context, displayName string) string {
	cleaned := utils.CleanNickname(displayName)

	surname := utils.Surname(cleaned)
	if surname == "" {
		return cleaned
	}

	signature, err := m.SignatureBySurname(ctx, surname)
	if err != nil {
		if err != ErrNotFound {
			log.Printf("Error resolving moderator signature for %q: %v", displayName, err)
		}
		return cleaned
	}
	return signature
}
