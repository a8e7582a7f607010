package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// FormatStatic normalizes a raw static ID to the standard dashed form:
// five digits become XX-XXX, six digits become XXX-XXX. Any other digit
// count is rejected.
func FormatStatic(input string) (string, error) {
	digits := nonDigitRegex.ReplaceAllString(strings.TrimSpace(input), "")
	switch len(digits) {
	case 5:
		return digits[:2] + "-" + digits[2:], nil
	case 6:
		return digits[:3] + "-" + digits[3:], nil
	default:
		return "", fmt.Errorf("static must contain 5 or 6 digits, got %d", len(digits))
	}
}

// IsValidStaticFormat reports whether the static is already in the
// normalized dashed form.
func IsValidStaticFormat(static string) bool {
	formatted, err := FormatStatic(static)
	return err == nil && formatted == static
}

var leadingMarksRegex = regexp.MustCompile(`^[!\s]+`)

// CleanNickname strips the department or position prefix from a Discord
// display name. Two server formats exist: "{Подразделение} | Имя Фамилия"
// and "[Должность] Имя Фамилия" (optionally with leading exclamation marks).
func CleanNickname(displayName string) string {
	if _, after, found := strings.Cut(displayName, " | "); found {
		return after
	}

	if idx := strings.LastIndex(displayName, "]"); idx != -1 {
		name := leadingMarksRegex.ReplaceAllString(displayName[idx+1:], "")
		name = strings.TrimSpace(name)
		if name != "" {
			return name
		}
	}

	return displayName
}

// Surname returns the last word of a cleaned name, used to look up the
// moderator registry.
func Surname(fullName string) string {
	parts := strings.Fields(strings.TrimSpace(fullName))
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-1]
}
