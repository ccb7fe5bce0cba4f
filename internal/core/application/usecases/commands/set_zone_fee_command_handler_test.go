package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/pricing"
)

func TestNewSetZoneFeeCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewSetZoneFeeCommand("Plaza", 5.00)
	require.NoError(t, err)
	assert.Equal(t, "Plaza", cmd.Entry().Zone())
	assert.InDelta(t, 5.00, cmd.Entry().Fee(), 0.001)
}

func TestNewSetZoneFeeCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewSetZoneFeeCommand("", 5.00)
	require.Error(t, err)

	_, err = commands.NewSetZoneFeeCommand("Plaza", -1)
	require.Error(t, err)
}

func TestSetZoneFeeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetZoneFeeCommand("Plaza", 5.00)
	require.NoError(t, err)

	repo := new(MockZoneFeeRepository)
	uow := new(MockZoneFeeUoW)
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("ZoneFeeRepository").Return(repo).Once(),
		repo.On("Upsert", mock.Anything, mock.AnythingOfType("pricing.ZoneFee")).Return(nil).Once(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	factory := new(MockZoneFeeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetZoneFeeCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSetZoneFeeCommandHandler_Handle_UpsertError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetZoneFeeCommand("Plaza", 5.00)
	require.NoError(t, err)

	repo := new(MockZoneFeeRepository)
	uow := new(MockZoneFeeUoW)
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("ZoneFeeRepository").Return(repo).Once(),
		repo.On("Upsert", mock.Anything, mock.AnythingOfType("pricing.ZoneFee")).Return(errors.New("upsert error")).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	factory := new(MockZoneFeeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetZoneFeeCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

// Ensure the command normalizes nothing away: the stored zone keeps its
// display casing while matching stays case-insensitive.
func TestSetZoneFeeCommand_KeepsDisplayCasing(t *testing.T) {
	cmd, err := commands.NewSetZoneFeeCommand("  Habana Vieja  ", 3.50)
	require.NoError(t, err)
	assert.Equal(t, "Habana Vieja", cmd.Entry().Zone())
	assert.Equal(t, "habana vieja", pricing.NormalizeZone(cmd.Entry().Zone()))
	assert.True(t, cmd.Entry().Matches("HABANA VIEJA"))
}
