package services

import "errors"

// Service failures handlers care about. Anything else that comes out of a
// service call is an internal error.
var (
	// ErrUnknownTeacher: the target teacher does not resolve to an
	// approved teacher account.
	ErrUnknownTeacher = errors.New("teacher not found")

	// ErrSlotTaken: the teacher already has a live appointment at the
	// requested date and time.
	ErrSlotTaken = errors.New("the teacher already has an appointment at this time")

	// ErrAppointmentNotFound covers both a missing appointment and one
	// owned by another party. Callers cannot tell the two apart.
	ErrAppointmentNotFound = errors.New("appointment not found")

	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidTransition = errors.New("appointment cannot move to the requested status")

	// ErrNotEligible: the appointment/student/completed/unrated predicate
	// did not match. Deliberately one error for all four causes.
	ErrNotEligible = errors.New("eligible appointment not found for rating")

	ErrDuplicateRating = errors.New("a rating for this appointment has already been submitted")

	// ErrNoActiveAppointment: messaging requires an approved appointment
	// between the two parties.
	ErrNoActiveAppointment = errors.New("no active appointment found with this teacher")
)
