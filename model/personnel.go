package model

import "time"

// PersonnelRecord is one row of the personnel worksheet (columns A-G).
// Discord ID is the de facto primary key; the sheet itself enforces nothing.
type PersonnelRecord struct {
	FirstName  string
	LastName   string
	Static     string
	Rank       string
	Department string
	Position   string
	DiscordID  string
}

// FullName joins first and last name, tolerating either being empty.
func (r PersonnelRecord) FullName() string {
	switch {
	case r.FirstName == "":
		return r.LastName
	case r.LastName == "":
		return r.FirstName
	default:
		return r.FirstName + " " + r.LastName
	}
}

// AuditRecord is one row of the append-only personnel audit worksheet.
// Thirteen columns, newest row inserted right below the header.
type AuditRecord struct {
	Timestamp   time.Time
	Name        string
	Static      string
	Action      string
	ActionDate  time.Time
	Department  string
	Position    string
	Rank        string
	DiscordID   string
	Reason      string
	SignedBy    string
	MessageLink string
}

// NameWithStatic renders the "Имя Фамилия | статик" composite used in
// column B of the audit sheet and column B of the blacklist sheet.
func (r AuditRecord) NameWithStatic() string {
	if r.Static == "" {
		return r.Name
	}
	return r.Name + " | " + r.Static
}

// BlacklistRecord is one row of the blacklist worksheet (columns A-G).
type BlacklistRecord struct {
	Term            string
	Name            string
	Static          string
	Reason          string
	EntryDate       time.Time
	EnforcementDate time.Time
	SignedBy        string
}

// Rank is one entry of the rank ladder. Level 1 is the highest rank;
// larger levels sit lower in the hierarchy.
type Rank struct {
	Name   string `db:"name"`
	RoleID string `db:"role_id"`
	Level  int    `db:"rank_level"`
}

// AuditAction is a named personnel action from the registry database.
type AuditAction struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}
