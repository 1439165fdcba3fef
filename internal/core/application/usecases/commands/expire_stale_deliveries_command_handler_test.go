package commands_test

import (
	"testing"
	"time"

	"punarvasthra/internal/core/application/usecases/commands"
	"punarvasthra/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewExpireStaleDeliveriesCommand_InvalidCutoff(t *testing.T) {
	_, err := commands.NewExpireStaleDeliveriesCommand(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestExpireStaleDeliveriesCommandHandler_Handle_SweepsBothKinds(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	cmd, err := commands.NewExpireStaleDeliveriesCommand(15 * time.Minute)
	require.NoError(t, err)

	cutoff := now.Add(-15 * time.Minute)

	subRepo := new(MockSubmissionRepository)
	subRepo.On("ExpireStalePendingDeliveries", mock.Anything, cutoff).Return(int64(2), nil).Once()

	custRepo := new(MockCustomizationRepository)
	custRepo.On("ExpireStalePendingDeliveries", mock.Anything, cutoff).Return(int64(1), nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("SubmissionRepository").Return(subRepo)
	uow.On("CustomizationRepository").Return(custRepo)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireStaleDeliveriesCommandHandler(factory, func() time.Time { return now })
	affected, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
	subRepo.AssertExpectations(t)
	custRepo.AssertExpectations(t)
}
