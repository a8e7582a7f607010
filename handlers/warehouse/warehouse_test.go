package warehouse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCooldown(t *testing.T) {
	assert.Equal(t, "5 ч 30 мин", formatCooldown(5*time.Hour+30*time.Minute))
	assert.Equal(t, "1 ч 0 мин", formatCooldown(time.Hour))
	assert.Equal(t, "45 мин", formatCooldown(45*time.Minute))
	assert.Equal(t, "1 мин", formatCooldown(30*time.Second))
}

func TestPingContent(t *testing.T) {
	cfg := map[string][]string{
		"dept-a": {"ping-1", "ping-2"},
		"dept-b": {"ping-2", "ping-3"},
	}

	assert.Equal(t, "", pingContent(cfg, []string{"other"}))
	assert.Equal(t, "<@&ping-1> <@&ping-2>", pingContent(cfg, []string{"dept-a"}))
	// Duplicate ping roles across departments are mentioned once.
	assert.Equal(t, "<@&ping-1> <@&ping-2> <@&ping-3>", pingContent(cfg, []string{"dept-a", "dept-b"}))
}
