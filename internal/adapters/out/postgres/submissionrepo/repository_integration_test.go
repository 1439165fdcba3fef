package submissionrepo_test

import (
	"context"
	"testing"
	"time"

	"punarvasthra/internal/adapters/out/postgres/submissionrepo"
	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/domain/model/notification"
	"punarvasthra/internal/core/domain/model/submission"
	"punarvasthra/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// SubmissionRepositoryIntegrationTestSuite verifies submission persistence
// behavior against a real PostgreSQL instance, including the notification
// delivery columns and the stale-delivery sweep.
type SubmissionRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *submissionrepo.GormSubmissionRepository
	tracker    *MockAggregateTracker
}

func (suite *SubmissionRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&submissionrepo.SubmissionDTO{}))
}

func (suite *SubmissionRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE submissions").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = submissionrepo.NewGormSubmissionRepository(suite.db, suite.tracker)
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TestAdd_ValidSubmission_Success() {
	ctx := context.Background()

	sub := suite.createTestSubmission()
	suite.tracker.On("TrackAggregate", sub.ID(), sub).Once()

	err := suite.repository.Add(ctx, sub)
	suite.Require().NoError(err)

	suite.assertSubmissionCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TestGet_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createTestSubmission()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.Details(), retrieved.Details())
	suite.Equal(submission.Pending, retrieved.Status())
	suite.Equal(notification.None, retrieved.Delivery().Status())
	suite.Nil(retrieved.Delivery().SentAt())
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TestUpdate_PersistsApprovalAndDelivery() {
	ctx := context.Background()

	sub := suite.createTestSubmission()
	suite.tracker.On("TrackAggregate", sub.ID(), sub).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, sub))

	// Approve and run a full delivery attempt against the stored record.
	suite.Require().NoError(sub.ChangeStatus(submission.Approved))
	suite.Require().NoError(sub.BeginNotification())
	suite.Require().NoError(suite.repository.Update(ctx, sub))

	sentAt := time.Now().UTC().Truncate(time.Second)
	sub.RecordNotificationSent(sentAt)
	suite.Require().NoError(suite.repository.Update(ctx, sub))

	retrieved, err := suite.repository.Get(ctx, sub.ID())
	suite.Require().NoError(err)
	suite.Equal(submission.Approved, retrieved.Status())
	suite.Equal(notification.Sent, retrieved.Delivery().Status())
	suite.Require().NotNil(retrieved.Delivery().SentAt())
	suite.WithinDuration(sentAt, *retrieved.Delivery().SentAt(), time.Second)
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TestUpdate_FailedAfterSent_ClearsSentTimestamp() {
	ctx := context.Background()

	sub := suite.createApprovedSubmissionWithDelivery(notification.Sent)
	suite.tracker.On("TrackAggregate", sub.ID(), sub).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, sub))

	// Resend of an already-sent notification; this attempt fails.
	suite.Require().NoError(sub.BeginNotification())
	suite.Require().NoError(suite.repository.Update(ctx, sub))

	sub.RecordNotificationFailed()
	suite.Require().NoError(suite.repository.Update(ctx, sub))

	retrieved, err := suite.repository.Get(ctx, sub.ID())
	suite.Require().NoError(err)
	suite.Equal(notification.Failed, retrieved.Delivery().Status())
	suite.Nil(retrieved.Delivery().SentAt(), "earlier sent timestamp must not survive a failed attempt")
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createTestSubmission())
	suite.Require().Error(err)
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TestDelete_RemovesSubmission() {
	ctx := context.Background()

	sub := suite.createTestSubmission()
	suite.tracker.On("TrackAggregate", sub.ID(), sub).Once()
	suite.Require().NoError(suite.repository.Add(ctx, sub))

	suite.Require().NoError(suite.repository.Delete(ctx, sub.ID()))
	suite.assertSubmissionCount(0)
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TestDelete_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TestExpireStalePendingDeliveries() {
	ctx := context.Background()

	// A delivery stuck pending, written in the past.
	stale := suite.createApprovedSubmissionWithDelivery(notification.Pending)
	// A delivery that completed; must not be touched.
	sent := suite.createApprovedSubmissionWithDelivery(notification.Sent)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, stale))
	suite.Require().NoError(suite.repository.Add(ctx, sent))

	// Everything written so far counts as stale against a future cutoff.
	affected, err := suite.repository.ExpireStalePendingDeliveries(ctx, time.Now().Add(time.Minute))
	suite.Require().NoError(err)
	suite.Equal(int64(1), affected)

	retrieved, err := suite.repository.Get(ctx, stale.ID())
	suite.Require().NoError(err)
	suite.Equal(notification.Failed, retrieved.Delivery().Status())

	untouched, err := suite.repository.Get(ctx, sent.ID())
	suite.Require().NoError(err)
	suite.Equal(notification.Sent, untouched.Delivery().Status())
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TestExpireStalePendingDeliveries_ClearsSentTimestamp() {
	ctx := context.Background()

	stuck := suite.createApprovedSubmissionWithDelivery(notification.Pending)
	suite.tracker.On("TrackAggregate", stuck.ID(), stuck).Once()
	suite.Require().NoError(suite.repository.Add(ctx, stuck))

	// A sent timestamp next to a pending status can only come from a write
	// outside the attempt protocol; the sweep must still clear it.
	sentAt := time.Now().UTC().Truncate(time.Second)
	suite.Require().NoError(suite.db.Exec(
		"UPDATE submissions SET notification_sent_at = ? WHERE id = ?", sentAt, stuck.ID().Bytes()).Error)

	affected, err := suite.repository.ExpireStalePendingDeliveries(ctx, time.Now().Add(time.Minute))
	suite.Require().NoError(err)
	suite.Equal(int64(1), affected)

	retrieved, err := suite.repository.Get(ctx, stuck.ID())
	suite.Require().NoError(err)
	suite.Equal(notification.Failed, retrieved.Delivery().Status())
	suite.Nil(retrieved.Delivery().SentAt())
}

func (suite *SubmissionRepositoryIntegrationTestSuite) TestExpireStalePendingDeliveries_FreshPendingSurvives() {
	ctx := context.Background()

	fresh := suite.createApprovedSubmissionWithDelivery(notification.Pending)
	suite.tracker.On("TrackAggregate", fresh.ID(), fresh).Once()
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	// Cutoff in the past: the just-written pending marker is not stale yet.
	affected, err := suite.repository.ExpireStalePendingDeliveries(ctx, time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(0), affected)

	retrieved, err := suite.repository.Get(ctx, fresh.ID())
	suite.Require().NoError(err)
	suite.Equal(notification.Pending, retrieved.Delivery().Status())
}

func (suite *SubmissionRepositoryIntegrationTestSuite) createTestSubmission() *submission.Submission {
	sub, err := submission.NewSubmission(kernel.NewUUID(), submission.Details{
		FullName:        "Anita Perera",
		ContactNumber:   "0771234567",
		Email:           "anita@example.com",
		Address:         "12 Temple Road, Colombo",
		SareeCount:      2,
		SareeCondition:  "Good",
		MaterialType:    "Silk",
		PreferredDate:   "2025-09-01",
		PreferredTime:   "10:00",
		PreferredBranch: "Colombo",
	}, time.Now().UTC().Truncate(time.Second))
	suite.Require().NoError(err)
	return sub
}

func (suite *SubmissionRepositoryIntegrationTestSuite) createApprovedSubmissionWithDelivery(
	status notification.Status,
) *submission.Submission {
	var sentAt *time.Time
	if status == notification.Sent {
		at := time.Now().UTC().Truncate(time.Second)
		sentAt = &at
	}

	delivery, err := notification.RestoreDelivery(status, sentAt)
	suite.Require().NoError(err)

	base := suite.createTestSubmission()
	sub, err := submission.RestoreSubmission(
		base.ID(), base.Details(), base.SubmittedAt(), submission.Approved, delivery)
	suite.Require().NoError(err)
	return sub
}

func (suite *SubmissionRepositoryIntegrationTestSuite) assertSubmissionCount(expected int) {
	var count int64
	err := suite.db.Model(&submissionrepo.SubmissionDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestSubmissionRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionRepositoryIntegrationTestSuite))
}
