package model

// Leave request statuses.
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// LeaveRequest is one leave-of-absence request, stored in the local JSON
// file keyed by its Moscow-time day.
type LeaveRequest struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	GuildID         string `json:"guild_id"`
	Name            string `json:"name"`
	Static          string `json:"static"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Reason          string `json:"reason"`
	Department      string `json:"department"`
	Status          string `json:"status"`
	Timestamp       string `json:"timestamp"`
	ReviewerID      string `json:"reviewer_id,omitempty"`
	ReviewerName    string `json:"reviewer_name,omitempty"`
	ReviewTimestamp string `json:"review_timestamp,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}

// Active reports whether the request still counts against the daily limit.
func (r LeaveRequest) Active() bool {
	return r.Status == LeaveStatusPending || r.Status == LeaveStatusApproved
}
