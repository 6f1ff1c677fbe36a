package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestTransitionCommand_Success(t *testing.T) {
	parties := newOrderParties()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewRequestTransitionCommand(orderID, order.Preparing, parties.farmer(t))

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.Preparing, cmd.Status())
	assert.Equal(t, order.RoleFarmer, cmd.Actor().Role())
}

func TestNewRequestTransitionCommand_InvalidArguments(t *testing.T) {
	_, err := commands.NewRequestTransitionCommand(kernel.UUID{}, order.Unknown, order.Actor{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRequestTransitionCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.RequestTransitionCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrRequestTransitionCommandIsNotConstructed)
}
