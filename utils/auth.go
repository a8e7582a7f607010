package utils

import "personnel-bot/model"

// Permission levels
const (
	AdminPermission     = "admin"
	ModeratorPermission = "moderator"
	GuestPermission     = "guest"
)

func contains(slice []string, item string) bool {
	for _, a := range slice {
		if a == item {
			return true
		}
	}
	return false
}

func matchesList(userID string, roleIDs []string, list model.IDList) bool {
	if contains(list.Users, userID) {
		return true
	}
	for _, roleID := range roleIDs {
		if contains(list.Roles, roleID) {
			return true
		}
	}
	return false
}

// CheckPermission returns the highest permission level the user holds
// against the configured moderator and administrator lists.
func CheckPermission(userID string, roleIDs []string, cfg *model.Config) string {
	if matchesList(userID, roleIDs, cfg.Administrators) {
		return AdminPermission
	}
	if matchesList(userID, roleIDs, cfg.Moderators) {
		return ModeratorPermission
	}
	return GuestPermission
}

// IsModerator reports whether the user holds at least moderator permission.
func IsModerator(userID string, roleIDs []string, cfg *model.Config) bool {
	return CheckPermission(userID, roleIDs, cfg) != GuestPermission
}

// IsAdministrator reports whether the user holds administrator permission.
func IsAdministrator(userID string, roleIDs []string, cfg *model.Config) bool {
	return CheckPermission(userID, roleIDs, cfg) == AdminPermission
}
