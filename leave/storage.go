package leave

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"personnel-bot/model"
	"personnel-bot/utils"
)

// ErrNotFound reports that no request matched the given ID.
var ErrNotFound = fmt.Errorf("leave: request not found")

// ErrAlreadyProcessed reports that another moderator got there first. It
// is a post-hoc status check, not a correctness guarantee.
var ErrAlreadyProcessed = fmt.Errorf("leave: request already processed")

// ErrNotPermitted reports that the caller may not touch the request.
var ErrNotPermitted = fmt.Errorf("leave: operation not permitted")

// storageData maps a Moscow-time day key to user ID to that user's
// requests for the day.
type storageData map[string]map[string][]model.LeaveRequest

// Storage keeps leave requests in a local JSON file. Data is daily: the
// midnight cleanup drops every key except today's.
type Storage struct {
	mu   sync.Mutex
	path string
}

// NewStorage creates a storage backed by the given file.
func NewStorage(path string) *Storage {
	return &Storage{path: path}
}

func (s *Storage) load() storageData {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return storageData{}
	}
	var data storageData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Printf("Error parsing leave request storage, starting fresh: %v", err)
		return storageData{}
	}
	if data == nil {
		data = storageData{}
	}
	return data
}

func (s *Storage) save(data storageData) error {
	if err := os.MkdirAll(filepath.Dir(s.path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create leave data directory: %w", err)
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal leave requests: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write leave requests: %w", err)
	}
	return nil
}

func todayKey() string {
	return utils.MoscowTime().Format("2006-01-02")
}

func newRequestID(now time.Time) string {
	return fmt.Sprintf("LR_%s_%d", now.Format("20060102_150405"), now.Nanosecond()/1000)
}

// Add stores a new pending request and returns its ID.
func (s *Storage) Add(request model.LeaveRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := utils.MoscowTime()
	request.ID = newRequestID(now)
	request.Status = model.LeaveStatusPending
	request.Timestamp = now.Format(time.RFC3339)

	data := s.load()
	today := todayKey()
	if data[today] == nil {
		data[today] = make(map[string][]model.LeaveRequest)
	}
	data[today][request.UserID] = append(data[today][request.UserID], request)

	if err := s.save(data); err != nil {
		return "", err
	}
	return request.ID, nil
}

// UserRequestsToday returns all of the user's requests for today.
func (s *Storage) UserRequestsToday(userID string) []model.LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	day, ok := data[todayKey()]
	if !ok {
		return nil
	}
	return day[userID]
}

// AllRequestsToday returns today's requests across all users, ordered by
// submission time. Used by the moderation view.
func (s *Storage) AllRequestsToday() []model.LeaveRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	day, ok := data[todayKey()]
	if !ok {
		return nil
	}

	var all []model.LeaveRequest
	for _, requests := range day {
		all = append(all, requests...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Timestamp < all[j].Timestamp })
	return all
}

// Get returns the request with the given ID, searching every stored day.
func (s *Storage) Get(requestID string) (model.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	for _, day := range data {
		for _, requests := range day {
			for _, request := range requests {
				if request.ID == requestID {
					return request, nil
				}
			}
		}
	}
	return model.LeaveRequest{}, ErrNotFound
}

// SetStatus transitions a pending request to approved or rejected,
// recording the reviewer. A request that already left pending state
// returns ErrAlreadyProcessed.
func (s *Storage) SetStatus(requestID, status, reviewerID, reviewerName, rejectionReason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	for _, day := range data {
		for userID, requests := range day {
			for i, request := range requests {
				if request.ID != requestID {
					continue
				}
				if request.Status != model.LeaveStatusPending {
					return ErrAlreadyProcessed
				}
				request.Status = status
				request.ReviewerID = reviewerID
				request.ReviewerName = reviewerName
				request.ReviewTimestamp = utils.MoscowTime().Format(time.RFC3339)
				if rejectionReason != "" {
					request.RejectionReason = rejectionReason
				}
				day[userID][i] = request
				return s.save(data)
			}
		}
	}
	return ErrNotFound
}

// Delete removes a request. Owners may delete their own pending requests;
// admins may delete anything.
func (s *Storage) Delete(requestID, callerID string, isAdmin bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	for _, day := range data {
		for userID, requests := range day {
			for i, request := range requests {
				if request.ID != requestID {
					continue
				}
				if !isAdmin {
					if request.UserID != callerID {
						return ErrNotPermitted
					}
					if request.Status != model.LeaveStatusPending {
						return ErrNotPermitted
					}
				}
				day[userID] = append(requests[:i], requests[i+1:]...)
				if len(day[userID]) == 0 {
					delete(day, userID)
				}
				return s.save(data)
			}
		}
	}
	return ErrNotFound
}

// CleanupOldData drops every day except today. Runs at midnight MSK.
func (s *Storage) CleanupOldData() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	today := todayKey()
	cleaned := storageData{}
	if day, ok := data[today]; ok {
		cleaned[today] = day
	}
	if err := s.save(cleaned); err != nil {
		return err
	}
	log.Printf("Leave request storage cleaned up, kept data for %s", today)
	return nil
}
