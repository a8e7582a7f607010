package dismissal

import (
	"sync"
	"time"
)

// Dismissal grounds accepted by the report modal.
const (
	ReasonOwnWish  = "ПСЖ"
	ReasonTransfer = "Перевод"
)

// Report is a submitted dismissal report awaiting review.
type Report struct {
	UserID      string
	GuildID     string
	Name        string
	Static      string
	Reason      string
	SubmittedAt time.Time
}

// reports keeps one open dismissal report per user. A second /dismiss
// while the first is unresolved is rejected.
var reports = struct {
	sync.Mutex
	byUser map[string]Report
}{byUser: make(map[string]Report)}

func addReport(r Report) bool {
	reports.Lock()
	defer reports.Unlock()
	if _, exists := reports.byUser[r.UserID]; exists {
		return false
	}
	reports.byUser[r.UserID] = r
	return true
}

func takeReport(userID string) (Report, bool) {
	reports.Lock()
	defer reports.Unlock()
	r, ok := reports.byUser[userID]
	if ok {
		delete(reports.byUser, userID)
	}
	return r, ok
}
