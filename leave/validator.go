package leave

import (
	"fmt"
	"sync"
	"time"

	"personnel-bot/model"
	"personnel-bot/utils"
)

// Validator checks leave requests against the configured day window.
// Rules may be swapped at runtime by a config reload, so reads go
// through the mutex.
type Validator struct {
	mu          sync.RWMutex
	workStart   string
	workEnd     string
	maxDuration int
}

// NewValidator builds a validator from the leave configuration.
func NewValidator(cfg model.LeaveConfig) *Validator {
	v := &Validator{}
	v.Update(cfg)
	return v
}

// Update replaces the window rules in place.
func (v *Validator) Update(cfg model.LeaveConfig) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.workStart = cfg.WorkStart
	v.workEnd = cfg.WorkEnd
	v.maxDuration = cfg.MaxDurationMinutes
}

func (v *Validator) rules() (workStart, workEnd string, maxDuration int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.workStart, v.workEnd, v.maxDuration
}

func clockMinutes(s string) (int, error) {
	hour, minute, err := utils.ParseClock(s)
	if err != nil {
		return 0, err
	}
	return hour*60 + minute, nil
}

// Duration returns the request length in minutes, or an error when the
// end does not fall after the start on the same day.
func (v *Validator) Duration(startTime, endTime string) (int, error) {
	start, err := clockMinutes(startTime)
	if err != nil {
		return 0, err
	}
	end, err := clockMinutes(endTime)
	if err != nil {
		return 0, err
	}
	if end <= start {
		return 0, fmt.Errorf("время конца должно быть позже времени начала")
	}
	return end - start, nil
}

// validateWindow checks the request against the work-hours window and the
// maximum duration, at the given reference time.
func (v *Validator) validateWindow(startTime, endTime string, now time.Time) (int, error) {
	duration, err := v.Duration(startTime, endTime)
	if err != nil {
		return 0, err
	}

	workStartStr, workEndStr, maxDuration := v.rules()

	start, _ := clockMinutes(startTime)
	end, _ := clockMinutes(endTime)
	workStart, err := clockMinutes(workStartStr)
	if err != nil {
		return 0, fmt.Errorf("invalid work_start in config: %w", err)
	}
	workEnd, err := clockMinutes(workEndStr)
	if err != nil {
		return 0, fmt.Errorf("invalid work_end in config: %w", err)
	}

	if start < workStart || start > workEnd || end < workStart || end > workEnd {
		return 0, fmt.Errorf("отгул возможен только с %s до %s", workStartStr, workEndStr)
	}
	if duration > maxDuration {
		return 0, fmt.Errorf("длительность отгула не может превышать %d минут", maxDuration)
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	if start <= nowMinutes {
		return 0, fmt.Errorf("время начала отгула должно быть в будущем")
	}

	return duration, nil
}

// Validate checks the time window rules and the one-active-request daily
// limit, returning the request duration in minutes.
func (v *Validator) Validate(startTime, endTime, userID string, storage *Storage) (int, error) {
	duration, err := v.validateWindow(startTime, endTime, utils.MoscowTime())
	if err != nil {
		return 0, err
	}

	for _, request := range storage.UserRequestsToday(userID) {
		if request.Active() {
			return 0, fmt.Errorf("у вас уже есть активный запрос на отгул сегодня")
		}
	}

	return duration, nil
}
