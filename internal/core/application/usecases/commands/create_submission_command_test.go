package commands_test

import (
	"testing"

	"punarvasthra/internal/core/application/usecases/commands"
	"punarvasthra/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateSubmissionCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	details := validSubmissionDetails()

	cmd, err := commands.NewCreateSubmissionCommand(id, details)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.SubmissionID())
	assert.Equal(t, details, cmd.Details())
	require.NoError(t, cmd.Validate())
}

func TestNewCreateSubmissionCommand_InvalidID(t *testing.T) {
	_, err := commands.NewCreateSubmissionCommand(kernel.UUID{}, validSubmissionDetails())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateSubmissionCommand_NotConstructed(t *testing.T) {
	cmd := commands.CreateSubmissionCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateSubmissionCommandIsNotConstructed)
}
