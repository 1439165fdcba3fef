package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"punarvasthra/internal/core/application/usecases/commands"
	"punarvasthra/internal/core/domain/model/customization"
	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/domain/model/notification"
	"punarvasthra/internal/core/domain/model/order"
	"punarvasthra/internal/core/domain/model/submission"
	"punarvasthra/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSubmissionRepository struct{ mock.Mock }

func (m *MockSubmissionRepository) Add(ctx context.Context, s *submission.Submission) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubmissionRepository) Update(ctx context.Context, s *submission.Submission) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubmissionRepository) Get(ctx context.Context, id kernel.UUID) (*submission.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*submission.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSubmissionRepository) ExpireStalePendingDeliveries(
	ctx context.Context, olderThan time.Time,
) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

type MockCustomizationRepository struct{ mock.Mock }

func (m *MockCustomizationRepository) Add(ctx context.Context, r *customization.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockCustomizationRepository) Update(ctx context.Context, r *customization.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockCustomizationRepository) Get(ctx context.Context, id kernel.UUID) (*customization.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customization.Request), args.Error(1)
}

func (m *MockCustomizationRepository) ExpireStalePendingDeliveries(
	ctx context.Context, olderThan time.Time,
) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockSubmissionUoW struct{ mock.Mock }

func (m *MockSubmissionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSubmissionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSubmissionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSubmissionUoW) SubmissionRepository() ports.SubmissionRepository {
	args := m.Called()
	return args.Get(0).(ports.SubmissionRepository)
}

type MockSubmissionUoWFactory struct{ mock.Mock }

func (m *MockSubmissionUoWFactory) Create() commands.SubmissionUoW {
	args := m.Called()
	return args.Get(0).(commands.SubmissionUoW)
}

type MockCustomizationUoW struct{ mock.Mock }

func (m *MockCustomizationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomizationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomizationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCustomizationUoW) CustomizationRepository() ports.CustomizationRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomizationRepository)
}

type MockCustomizationUoWFactory struct{ mock.Mock }

func (m *MockCustomizationUoWFactory) Create() commands.CustomizationUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomizationUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) SubmissionRepository() ports.SubmissionRepository {
	args := m.Called()
	return args.Get(0).(ports.SubmissionRepository)
}

func (m *MockUoW) CustomizationRepository() ports.CustomizationRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomizationRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockMailTransport struct{ mock.Mock }

func (m *MockMailTransport) Send(ctx context.Context, message ports.MailMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type MockStorage struct{ mock.Mock }

func (m *MockStorage) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validSubmissionDetails() submission.Details {
	return submission.Details{
		FullName:        "Anita Perera",
		ContactNumber:   "0771234567",
		Email:           "anita@example.com",
		Address:         "12 Temple Road, Colombo",
		SareeCount:      2,
		SareeCondition:  "Good",
		MaterialType:    "Silk",
		ImagePath:       "uploads/saree-123.jpg",
		PreferredDate:   "2025-09-01",
		PreferredTime:   "10:00",
		PreferredBranch: "Colombo",
	}
}

func pendingSubmission(t *testing.T) *submission.Submission {
	t.Helper()
	s, err := submission.NewSubmission(kernel.NewUUID(), validSubmissionDetails(), time.Now())
	require.NoError(t, err)
	return s
}

func validCustomizationDetails() customization.Details {
	return customization.Details{
		RequesterName:    "Nimal Silva",
		RequesterEmail:   "nimal@example.com",
		ProductType:      "Blouse",
		Material:         "Cotton",
		ColorDescription: "Deep maroon",
	}
}

func pendingRequest(t *testing.T) *customization.Request {
	t.Helper()
	r, err := customization.NewRequest(kernel.NewUUID(), validCustomizationDetails(), time.Now())
	require.NoError(t, err)
	return r
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-1001", order.Customer{
		FirstName: "Kamala",
		Email:     "kamala@example.com",
	}, []order.Item{{Title: "Silk Saree", Price: 12500, Quantity: 1}}, 12500, time.Now())
	require.NoError(t, err)
	return o
}

// failedDeliverySubmission restores an approved submission whose last
// notification attempt failed, the state a manual resend targets.
func failedDeliverySubmission(t *testing.T) *submission.Submission {
	t.Helper()
	delivery, err := notification.RestoreDelivery(notification.Failed, nil)
	require.NoError(t, err)
	s, err := submission.RestoreSubmission(
		kernel.NewUUID(), validSubmissionDetails(), time.Now(), submission.Approved, delivery)
	require.NoError(t, err)
	return s
}
