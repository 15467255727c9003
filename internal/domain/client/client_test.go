package client

import (
	"testing"
	"time"

	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(status Status) *Client {
	return &Client{
		BaseEntity: shared.NewBaseEntity(),
		FirstName:  "Anna",
		LastName:   "Petrova",
		Status:     status,
	}
}

func TestClient_RecordActivity(t *testing.T) {
	now := time.Now()

	t.Run("reactivates inactive client", func(t *testing.T) {
		c := newClient(StatusInactive)

		changed := c.RecordActivity(now)

		assert.True(t, changed)
		assert.Equal(t, StatusActive, c.Status)
		require.NotNil(t, c.LastActivityAt)
		assert.Equal(t, now, *c.LastActivityAt)
	})

	t.Run("only bumps timestamp for active client", func(t *testing.T) {
		c := newClient(StatusActive)

		changed := c.RecordActivity(now)

		assert.False(t, changed)
		assert.Equal(t, StatusActive, c.Status)
		require.NotNil(t, c.LastActivityAt)
	})

	t.Run("keeps VIP status", func(t *testing.T) {
		c := newClient(StatusVIP)

		changed := c.RecordActivity(now)

		assert.False(t, changed)
		assert.Equal(t, StatusVIP, c.Status)
	})
}

func TestClient_IsDormantSince(t *testing.T) {
	cutoff := time.Now().AddDate(0, 0, -90)
	old := cutoff.AddDate(0, 0, -1)
	recent := cutoff.AddDate(0, 0, 1)

	tests := []struct {
		name     string
		status   Status
		last     *time.Time
		created  time.Time
		expected bool
	}{
		{"active with old activity", StatusActive, &old, old, true},
		{"active with recent activity", StatusActive, &recent, old, false},
		{"active without activity falls back to creation", StatusActive, nil, old, true},
		{"vip never dormant", StatusVIP, &old, old, false},
		{"inactive already", StatusInactive, &old, old, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(tt.status)
			c.CreatedAt = tt.created
			c.LastActivityAt = tt.last
			assert.Equal(t, tt.expected, c.IsDormantSince(cutoff))
		})
	}
}

func TestClient_Deactivate(t *testing.T) {
	c := newClient(StatusActive)
	require.NoError(t, c.Deactivate())
	assert.Equal(t, StatusInactive, c.Status)

	err := newClient(StatusVIP).Deactivate()
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestClient_FullName(t *testing.T) {
	assert.Equal(t, "Anna Petrova", newClient(StatusActive).FullName())
	c := newClient(StatusActive)
	c.LastName = ""
	assert.Equal(t, "Anna", c.FullName())
}
