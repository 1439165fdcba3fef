package notification_test

import (
	"testing"
	"time"

	"punarvasthra/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   notification.Status
		expected string
	}{
		{notification.None, "none"},
		{notification.Pending, "pending"},
		{notification.Sent, "sent"},
		{notification.Failed, "failed"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("accepts all delivery states", func(t *testing.T) {
		for _, s := range []notification.Status{
			notification.None,
			notification.Pending,
			notification.Sent,
			notification.Failed,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("rejects values outside the enum", func(t *testing.T) {
		require.Error(t, notification.Status(-1).Validate())
		require.Error(t, notification.Status(4).Validate())
	})
}

func TestDelivery_Begin(t *testing.T) {
	t.Run("from none enters pending", func(t *testing.T) {
		d := notification.NewDelivery()

		began, err := d.Begin()

		require.NoError(t, err)
		assert.Equal(t, notification.Pending, began.Status())
		assert.Nil(t, began.SentAt())
	})

	t.Run("from failed enters pending for a resend", func(t *testing.T) {
		d := notification.NewDelivery().RecordFailed()

		began, err := d.Begin()

		require.NoError(t, err)
		assert.Equal(t, notification.Pending, began.Status())
	})

	t.Run("from sent enters pending for a resend", func(t *testing.T) {
		sent := notification.NewDelivery().RecordSent(time.Now())

		began, err := sent.Begin()

		require.NoError(t, err)
		assert.Equal(t, notification.Pending, began.Status())
		assert.Nil(t, began.SentAt())
	})

	t.Run("rejects a second concurrent attempt", func(t *testing.T) {
		d := notification.NewDelivery()
		began, err := d.Begin()
		require.NoError(t, err)

		_, err = began.Begin()

		require.ErrorIs(t, err, notification.ErrDeliveryInProgress)
	})
}

func TestDelivery_RecordOutcome(t *testing.T) {
	t.Run("sent carries the transport acceptance time", func(t *testing.T) {
		began, err := notification.NewDelivery().Begin()
		require.NoError(t, err)

		at := time.Now()
		sent := began.RecordSent(at)

		assert.Equal(t, notification.Sent, sent.Status())
		require.NotNil(t, sent.SentAt())
		assert.Equal(t, at, *sent.SentAt())
	})

	t.Run("failed clears the sent timestamp", func(t *testing.T) {
		sent := notification.NewDelivery().RecordSent(time.Now())

		failed := sent.RecordFailed()

		assert.Equal(t, notification.Failed, failed.Status())
		assert.Nil(t, failed.SentAt())
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		at := time.Now()

		d, err := notification.RestoreDelivery(notification.Sent, &at)

		require.NoError(t, err)
		assert.Equal(t, notification.Sent, d.Status())
		assert.Equal(t, &at, d.SentAt())
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		_, err := notification.RestoreDelivery(notification.Status(17), nil)
		require.Error(t, err)
	})
}
