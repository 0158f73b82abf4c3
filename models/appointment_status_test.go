package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusValid(t *testing.T) {
	for _, status := range []AppointmentStatus{StatusPending, StatusApproved, StatusCompleted, StatusCancelled} {
		assert.True(t, status.Valid(), "expected %q to be valid", status)
	}

	assert.False(t, AppointmentStatus("").Valid())
	assert.False(t, AppointmentStatus("rejected").Valid())
	assert.False(t, AppointmentStatus("PENDING").Valid())
}

func TestAppointmentStatusTransitions(t *testing.T) {
	cases := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusCompleted, true},
		{StatusApproved, StatusCancelled, false},
		{StatusApproved, StatusPending, false},
		{StatusCompleted, StatusCompleted, true},
		{StatusCompleted, StatusApproved, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusApproved, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusCancelled, StatusCancelled, false},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}
