package utils

import (
	"testing"

	"personnel-bot/model"

	"github.com/stretchr/testify/assert"
)

func authConfig() *model.Config {
	return &model.Config{
		Moderators: model.IDList{
			Users: []string{"100"},
			Roles: []string{"mod-role"},
		},
		Administrators: model.IDList{
			Users: []string{"200"},
			Roles: []string{"admin-role"},
		},
	}
}

func TestCheckPermission(t *testing.T) {
	cfg := authConfig()

	assert.Equal(t, AdminPermission, CheckPermission("200", nil, cfg))
	assert.Equal(t, AdminPermission, CheckPermission("1", []string{"admin-role"}, cfg))
	assert.Equal(t, ModeratorPermission, CheckPermission("100", nil, cfg))
	assert.Equal(t, ModeratorPermission, CheckPermission("1", []string{"x", "mod-role"}, cfg))
	assert.Equal(t, GuestPermission, CheckPermission("1", []string{"x"}, cfg))
}

func TestAdminOutranksModerator(t *testing.T) {
	cfg := authConfig()
	cfg.Moderators.Users = append(cfg.Moderators.Users, "200")
	assert.Equal(t, AdminPermission, CheckPermission("200", nil, cfg))
}

func TestIsModeratorAndIsAdministrator(t *testing.T) {
	cfg := authConfig()

	assert.True(t, IsModerator("100", nil, cfg))
	assert.True(t, IsModerator("200", nil, cfg))
	assert.False(t, IsModerator("1", nil, cfg))

	assert.True(t, IsAdministrator("200", nil, cfg))
	assert.False(t, IsAdministrator("100", nil, cfg))
}
