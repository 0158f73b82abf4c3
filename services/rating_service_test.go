package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infoaniket1007/Tutor-app/models"
)

func TestRoundAverage(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{4.0, 4.0},
		{4.5, 4.5},
		{4.25, 4.3},
		{4.333333, 4.3},
		{4.666666, 4.7},
		{0, 0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, roundAverage(tc.in), 1e-9, "round(%v)", tc.in)
	}
}

func TestSubmitRatingScenario(t *testing.T) {
	env := newTestEnv(t)
	student := env.createUser(t, "student", "Sana")
	teacher := env.createUser(t, "teacher", "Prof. Rao")

	appointment := env.mustCreateAppointment(t, student.ID, teacher.ID, "2024-06-01", "10:00")
	env.mustComplete(t, appointment.ID, teacher.ID)

	rating, err := SubmitRating(env.db, appointment.ID, student.ID, 4, "Helpful")
	require.NoError(t, err)
	assert.Equal(t, 4, rating.Score)
	assert.Equal(t, teacher.ID, rating.TeacherID)
	assert.Equal(t, student.Name, rating.Student.Name)
	assert.Equal(t, teacher.Name, rating.Teacher.Name)

	updated := reloadTeacher(t, env.db, teacher.ID)
	assert.InDelta(t, 4.0, updated.AverageRating, 1e-9)
	assert.Equal(t, 1, updated.TotalRatings)

	// A second attempt on the same appointment is rejected and leaves a
	// single persisted rating.
	_, err = SubmitRating(env.db, appointment.ID, student.ID, 5, "Again")
	assert.ErrorIs(t, err, ErrNotEligible)

	var count int64
	require.NoError(t, env.db.Model(&models.Rating{}).Where("appointment_id = ?", appointment.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	requireRatedImpliesCompleted(t, env.db)
}

func TestSubmitRatingEligibility(t *testing.T) {
	env := newTestEnv(t)
	student := env.createUser(t, "student", "Sana")
	teacher := env.createUser(t, "teacher", "Prof. Rao")

	t.Run("PendingAppointmentNotRatable", func(t *testing.T) {
		appointment := env.mustCreateAppointment(t, student.ID, teacher.ID, "2025-11-03", "10:00")
		_, err := SubmitRating(env.db, appointment.ID, student.ID, 4, "")
		assert.ErrorIs(t, err, ErrNotEligible)
	})

	t.Run("ApprovedAppointmentNotRatable", func(t *testing.T) {
		appointment := env.mustCreateAppointment(t, student.ID, teacher.ID, "2025-11-03", "11:00")
		_, err := TransitionAppointment(env.db, appointment.ID, teacher.ID, models.StatusApproved)
		require.NoError(t, err)

		_, err = SubmitRating(env.db, appointment.ID, student.ID, 4, "")
		assert.ErrorIs(t, err, ErrNotEligible)
	})

	t.Run("OnlyTheBookingStudentMayRate", func(t *testing.T) {
		appointment := env.mustCreateAppointment(t, student.ID, teacher.ID, "2025-11-03", "12:00")
		env.mustComplete(t, appointment.ID, teacher.ID)

		other := env.createUser(t, "student", "Noor")
		_, err := SubmitRating(env.db, appointment.ID, other.ID, 4, "")
		assert.ErrorIs(t, err, ErrNotEligible)

		// The failed attempt must not consume the appointment's
		// eligibility.
		_, err = SubmitRating(env.db, appointment.ID, student.ID, 4, "")
		assert.NoError(t, err)
	})

	t.Run("RearmedAppointmentHitsRatingBackstop", func(t *testing.T) {
		appointment := env.mustCreateAppointment(t, student.ID, teacher.ID, "2025-11-03", "13:00")
		env.mustComplete(t, appointment.ID, teacher.ID)

		_, err := SubmitRating(env.db, appointment.ID, student.ID, 5, "")
		require.NoError(t, err)

		// Re-completing re-arms eligibility, but the one-rating-per-
		// appointment index still holds the line.
		_, err = TransitionAppointment(env.db, appointment.ID, teacher.ID, models.StatusCompleted)
		require.NoError(t, err)

		_, err = SubmitRating(env.db, appointment.ID, student.ID, 4, "")
		assert.ErrorIs(t, err, ErrDuplicateRating)

		var count int64
		require.NoError(t, env.db.Model(&models.Rating{}).Where("appointment_id = ?", appointment.ID).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}

func TestAggregateRecomputation(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.createUser(t, "teacher", "Prof. Rao")

	rate := func(day, timeOfDay string, score int) {
		t.Helper()
		student := env.createUser(t, "student", "Student")
		appointment := env.mustCreateAppointment(t, student.ID, teacher.ID, day, timeOfDay)
		env.mustComplete(t, appointment.ID, teacher.ID)
		_, err := SubmitRating(env.db, appointment.ID, student.ID, score, "")
		require.NoError(t, err)
	}

	rate("2025-11-03", "09:00", 5)
	rate("2025-11-03", "10:00", 3)

	updated := reloadTeacher(t, env.db, teacher.ID)
	assert.InDelta(t, 4.0, updated.AverageRating, 1e-9)
	assert.Equal(t, 2, updated.TotalRatings)

	rate("2025-11-03", "11:00", 4)

	updated = reloadTeacher(t, env.db, teacher.ID)
	assert.InDelta(t, 4.0, updated.AverageRating, 1e-9)
	assert.Equal(t, 3, updated.TotalRatings)

	// One more pushes the mean off a whole number and exercises the
	// single-digit rounding: (5+3+4+5)/4 = 4.25 -> 4.3.
	rate("2025-11-03", "12:00", 5)

	updated = reloadTeacher(t, env.db, teacher.ID)
	assert.InDelta(t, 4.3, updated.AverageRating, 1e-9)
	assert.Equal(t, 4, updated.TotalRatings)

	ratings, err := TeacherRatings(env.db, teacher.ID)
	require.NoError(t, err)
	assert.Len(t, ratings, 4)
}

func TestConcurrentRatingSubmissions(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.createUser(t, "teacher", "Prof. Rao")

	const n = 8
	students := make([]models.User, n)
	appointments := make([]*models.Appointment, n)
	for i := 0; i < n; i++ {
		students[i] = env.createUser(t, "student", fmt.Sprintf("Student %d", i))
		appointments[i] = env.mustCreateAppointment(t, students[i].ID, teacher.ID, "2025-11-03", fmt.Sprintf("%02d:00", 8+i))
		env.mustComplete(t, appointments[i].ID, teacher.ID)
	}

	scores := []int{5, 3, 4, 5, 2, 4, 5, 4}
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = SubmitRating(env.db, appointments[i].ID, students[i].ID, scores[i], "")
		}(i)
	}
	wg.Wait()

	sum := 0
	for i, err := range errs {
		require.NoError(t, err, "submission %d", i)
		sum += scores[i]
	}

	// No lost updates: the aggregate equals the arithmetic mean of every
	// submitted score regardless of interleaving.
	updated := reloadTeacher(t, env.db, teacher.ID)
	assert.Equal(t, n, updated.TotalRatings)
	assert.InDelta(t, roundAverage(float64(sum)/float64(n)), updated.AverageRating, 1e-9)

	requireRatedImpliesCompleted(t, env.db)
}

func TestConcurrentRatingsSameAppointment(t *testing.T) {
	env := newTestEnv(t)
	student := env.createUser(t, "student", "Sana")
	teacher := env.createUser(t, "teacher", "Prof. Rao")

	appointment := env.mustCreateAppointment(t, student.ID, teacher.ID, "2025-11-03", "10:00")
	env.mustComplete(t, appointment.ID, teacher.ID)

	const attempts = 4
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = SubmitRating(env.db, appointment.ID, student.ID, 5, "")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrNotEligible)
		}
	}
	assert.Equal(t, 1, succeeded)

	var count int64
	require.NoError(t, env.db.Model(&models.Rating{}).Where("appointment_id = ?", appointment.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	updated := reloadTeacher(t, env.db, teacher.ID)
	assert.Equal(t, 1, updated.TotalRatings)
	assert.InDelta(t, 5.0, updated.AverageRating, 1e-9)
}
