package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knotapp/circle-management-backend/middleware"
)

func TestSummarize_Unbounded(t *testing.T) {
	summary := Summarize(3, 1, 2, nil)

	assert.Equal(t, 3, summary.Yes)
	assert.Equal(t, 1, summary.No)
	assert.Equal(t, 2, summary.Maybe)
	assert.Nil(t, summary.Remaining)
	assert.False(t, summary.Full)
}

func TestSummarize_WithCapacity(t *testing.T) {
	capacity := 5
	summary := Summarize(3, 0, 0, &capacity)

	require.NotNil(t, summary.Remaining)
	assert.Equal(t, 2, *summary.Remaining)
	assert.False(t, summary.Full)
}

func TestSummarize_FullAndOverbooked(t *testing.T) {
	capacity := 3

	full := Summarize(3, 0, 0, &capacity)
	require.NotNil(t, full.Remaining)
	assert.Equal(t, 0, *full.Remaining)
	assert.True(t, full.Full)

	// Manager overrides can push yes past capacity; remaining never goes negative.
	over := Summarize(4, 0, 0, &capacity)
	require.NotNil(t, over.Remaining)
	assert.Equal(t, 0, *over.Remaining)
	assert.True(t, over.Full)
}

func TestCreateEvent_ManagerOnly(t *testing.T) {
	svc := NewService(nil, nil)
	accessContext := middleware.AccessContext{UserID: "u-alice", CircleID: 1, RoleName: middleware.RoleMember}

	_, err := svc.CreateEvent(&CreateEventRequest{}, accessContext)
	assert.ErrorIs(t, err, ErrManagerOnly)
}

func TestCreateEvent_RejectsBadTimestamps(t *testing.T) {
	svc := NewService(nil, nil)
	accessContext := middleware.AccessContext{UserID: "u-owner", CircleID: 1, RoleName: middleware.RoleOwner}

	_, err := svc.CreateEvent(&CreateEventRequest{
		Title:        "Practice",
		Datetime:     "next tuesday",
		RsvpDeadline: "2025-06-01T12:00:00Z",
	}, accessContext)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid datetime")
}
