package submission_test

import (
	"testing"
	"time"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/domain/model/notification"
	"punarvasthra/internal/core/domain/model/submission"
	"punarvasthra/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() submission.Details {
	return submission.Details{
		FullName:        "Anita Perera",
		ContactNumber:   "0771234567",
		Email:           "anita@example.com",
		Address:         "12 Temple Road, Colombo",
		SareeCount:      3,
		SareeCondition:  "Good",
		MaterialType:    "Silk",
		PreferredDate:   "2025-09-01",
		PreferredTime:   "10:00",
		PreferredBranch: "Colombo",
	}
}

func newPendingSubmission(t *testing.T) *submission.Submission {
	t.Helper()
	s, err := submission.NewSubmission(kernel.NewUUID(), validDetails(), time.Now())
	require.NoError(t, err)
	return s
}

func TestNewSubmission(t *testing.T) {
	t.Run("creates a pending submission with no notification", func(t *testing.T) {
		s := newPendingSubmission(t)

		assert.Equal(t, submission.Pending, s.Status())
		assert.Equal(t, notification.None, s.Delivery().Status())
		assert.Nil(t, s.Delivery().SentAt())
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		details := validDetails()
		details.Email = ""

		_, err := submission.NewSubmission(kernel.NewUUID(), details, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects a non-positive saree count", func(t *testing.T) {
		details := validDetails()
		details.SareeCount = 0

		_, err := submission.NewSubmission(kernel.NewUUID(), details, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects an invalid id", func(t *testing.T) {
		_, err := submission.NewSubmission(kernel.UUID{}, validDetails(), time.Now())
		require.Error(t, err)
	})
}

func TestSubmission_Validate(t *testing.T) {
	t.Run("constructed submission is valid", func(t *testing.T) {
		require.NoError(t, newPendingSubmission(t).Validate())
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		var s submission.Submission
		require.ErrorIs(t, s.Validate(), submission.ErrSubmissionIsNotConstructed)
	})
}

func TestSubmission_ChangeStatus(t *testing.T) {
	t.Run("pending submission can be approved", func(t *testing.T) {
		s := newPendingSubmission(t)

		require.NoError(t, s.ChangeStatus(submission.Approved))
		assert.Equal(t, submission.Approved, s.Status())
	})

	t.Run("denied transition leaves the aggregate untouched", func(t *testing.T) {
		s := newPendingSubmission(t)
		require.NoError(t, s.ChangeStatus(submission.Rejected))

		err := s.ChangeStatus(submission.Approved)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, submission.Rejected, s.Status())
	})
}

func TestSubmission_Notification(t *testing.T) {
	t.Run("pending submission is not eligible", func(t *testing.T) {
		s := newPendingSubmission(t)

		err := s.BeginNotification()

		require.ErrorIs(t, err, notification.ErrNotEligible)
		assert.Equal(t, notification.None, s.Delivery().Status())
	})

	t.Run("rejected submission is not eligible", func(t *testing.T) {
		s := newPendingSubmission(t)
		require.NoError(t, s.ChangeStatus(submission.Rejected))

		require.ErrorIs(t, s.BeginNotification(), notification.ErrNotEligible)
	})

	t.Run("approved submission runs the attempt protocol", func(t *testing.T) {
		s := newPendingSubmission(t)
		require.NoError(t, s.ChangeStatus(submission.Approved))

		require.NoError(t, s.BeginNotification())
		assert.Equal(t, notification.Pending, s.Delivery().Status())

		at := time.Now()
		s.RecordNotificationSent(at)
		assert.Equal(t, notification.Sent, s.Delivery().Status())
		require.NotNil(t, s.Delivery().SentAt())
		assert.Equal(t, at, *s.Delivery().SentAt())
	})

	t.Run("second begin while pending is rejected", func(t *testing.T) {
		s := newPendingSubmission(t)
		require.NoError(t, s.ChangeStatus(submission.Approved))
		require.NoError(t, s.BeginNotification())

		require.ErrorIs(t, s.BeginNotification(), notification.ErrDeliveryInProgress)
	})

	t.Run("failed attempt can be retried", func(t *testing.T) {
		s := newPendingSubmission(t)
		require.NoError(t, s.ChangeStatus(submission.Approved))
		require.NoError(t, s.BeginNotification())
		s.RecordNotificationFailed()

		assert.Equal(t, notification.Failed, s.Delivery().Status())
		assert.Nil(t, s.Delivery().SentAt())

		require.NoError(t, s.BeginNotification())
		assert.Equal(t, notification.Pending, s.Delivery().Status())
	})
}

func TestSubmission_EnsureDeletable(t *testing.T) {
	t.Run("pending submission can be deleted", func(t *testing.T) {
		require.NoError(t, newPendingSubmission(t).EnsureDeletable())
	})

	t.Run("reviewed submission cannot be deleted", func(t *testing.T) {
		s := newPendingSubmission(t)
		require.NoError(t, s.ChangeStatus(submission.Approved))

		require.ErrorIs(t, s.EnsureDeletable(), submission.ErrNotDeletable)
	})
}

func TestRestoreSubmission(t *testing.T) {
	t.Run("round-trips persisted state", func(t *testing.T) {
		at := time.Now()
		delivery, err := notification.RestoreDelivery(notification.Sent, &at)
		require.NoError(t, err)

		id := kernel.NewUUID()
		s, err := submission.RestoreSubmission(id, validDetails(), at, submission.Approved, delivery)

		require.NoError(t, err)
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, submission.Approved, s.Status())
		assert.Equal(t, notification.Sent, s.Delivery().Status())
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		_, err := submission.RestoreSubmission(
			kernel.NewUUID(), validDetails(), time.Now(), submission.Unknown, notification.NewDelivery())
		require.Error(t, err)
	})
}
