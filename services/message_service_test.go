package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infoaniket1007/Tutor-app/models"
)

func TestSendMessageToTeacher(t *testing.T) {
	env := newTestEnv(t)
	student := env.createUser(t, "student", "Sana")
	teacher := env.createUser(t, "teacher", "Prof. Rao")

	t.Run("RequiresApprovedAppointment", func(t *testing.T) {
		_, err := SendMessageToTeacher(env.db, student.ID, teacher.ID, "Hello")
		assert.ErrorIs(t, err, ErrNoActiveAppointment)

		appointment := env.mustCreateAppointment(t, student.ID, teacher.ID, "2025-11-03", "10:00")
		_, err = SendMessageToTeacher(env.db, student.ID, teacher.ID, "Hello")
		assert.ErrorIs(t, err, ErrNoActiveAppointment)

		_, err = TransitionAppointment(env.db, appointment.ID, teacher.ID, models.StatusApproved)
		require.NoError(t, err)

		message, err := SendMessageToTeacher(env.db, student.ID, teacher.ID, "Hello")
		require.NoError(t, err)
		assert.Equal(t, appointment.ID, message.AppointmentID)
		assert.Equal(t, student.ID, message.SenderID)
	})
}

func TestAppointmentMessages(t *testing.T) {
	env := newTestEnv(t)
	student := env.createUser(t, "student", "Sana")
	teacher := env.createUser(t, "teacher", "Prof. Rao")

	appointment := env.mustCreateAppointment(t, student.ID, teacher.ID, "2025-11-03", "10:00")
	_, err := TransitionAppointment(env.db, appointment.ID, teacher.ID, models.StatusApproved)
	require.NoError(t, err)

	_, err = SaveAppointmentMessage(env.db, appointment.ID, student.ID, "Hi, about tomorrow")
	require.NoError(t, err)
	_, err = SaveAppointmentMessage(env.db, appointment.ID, teacher.ID, "Yes, see you at ten")
	require.NoError(t, err)

	t.Run("ParticipantsSeeMessagesInOrder", func(t *testing.T) {
		messages, err := AppointmentMessages(env.db, appointment.ID, teacher.ID)
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, "Hi, about tomorrow", messages[0].Content)
		assert.Equal(t, student.Name, messages[0].Sender.Name)
	})

	t.Run("OutsidersGetNotFound", func(t *testing.T) {
		outsider := env.createUser(t, "student", "Noor")
		_, err := AppointmentMessages(env.db, appointment.ID, outsider.ID)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("OutsidersCannotWrite", func(t *testing.T) {
		outsider := env.createUser(t, "student", "Noor")
		_, err := SaveAppointmentMessage(env.db, appointment.ID, outsider.ID, "Let me in")
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("UnknownAppointment", func(t *testing.T) {
		_, err := AppointmentMessages(env.db, uuid.New(), student.ID)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}
