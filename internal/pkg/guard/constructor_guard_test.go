package guard_test

import (
	"errors"
	"sync"
	"testing"

	"marketplace/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.ErrorIs(t, err, expectedError)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	errCommandNotConstructed := errors.New("ShipCommand must be created via NewShipCommand")

	type ShipCommand struct {
		orderID string
		guard   guard.ConstructorGuard
	}

	newShipCommand := func(orderID string) ShipCommand {
		return ShipCommand{orderID: orderID, guard: guard.NewConstructorGuard()}
	}

	validate := func(c ShipCommand) error {
		return c.guard.Validate(errCommandNotConstructed)
	}

	t.Run("constructed_command_is_valid", func(t *testing.T) {
		require.NoError(t, validate(newShipCommand("order-1")))
	})

	t.Run("literal_command_is_rejected", func(t *testing.T) {
		err := validate(ShipCommand{orderID: "order-1"})
		require.ErrorIs(t, err, errCommandNotConstructed)
	})
}

func TestConstructorGuard_Concurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(validationError))
		}()
	}
	wg.Wait()
}
