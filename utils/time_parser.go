package utils

import (
	"fmt"
	"strings"
	"time"
)

// MoscowTime returns the current time in the Moscow timezone. The
// spreadsheet and the leave-request day boundary both run on MSK.
func MoscowTime() time.Time {
	return time.Now().In(MoscowLocation())
}

// MoscowLocation resolves Europe/Moscow, falling back to a fixed UTC+3
// when the tz database is unavailable.
func MoscowLocation() *time.Location {
	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		return time.FixedZone("MSK", 3*60*60)
	}
	return loc
}

// ParseClock parses an HH:MM string into hours and minutes.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return t.Hour(), t.Minute(), nil
}

// Sheet date formats. The audit sheet carries dates both dotted and
// dashed, with or without a time component.
var sheetDateLayouts = []string{
	"02.01.2006 15:04:05",
	"02-01-2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
	"02-01-2006",
}

// ParseSheetDate parses a date cell from the audit sheet.
func ParseSheetDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range sheetDateLayouts {
		if t, err := time.ParseInLocation(layout, s, MoscowLocation()); err == nil {
			return t, nil
		}
	}
	// Date part only, when the cell carries extra trailing text.
	if datePart, _, found := strings.Cut(s, " "); found {
		for _, layout := range []string{"02.01.2006", "02-01-2006"} {
			if t, err := time.ParseInLocation(layout, datePart, MoscowLocation()); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("could not parse sheet date %q", s)
}

// FormatSheetDate renders a date cell value.
func FormatSheetDate(t time.Time) string {
	return t.In(MoscowLocation()).Format("02.01.2006")
}

// FormatSheetTimestamp renders a timestamp cell value.
func FormatSheetTimestamp(t time.Time) string {
	return t.In(MoscowLocation()).Format("02.01.2006 15:04")
}
