package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should round to cents", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("3.145"))

		require.NoError(t, err)
		assert.Equal(t, "3.15", m.String())
		require.NoError(t, m.Validate())
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.IsEqual(kernel.ZeroMoney()))
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse decimal strings", func(t *testing.T) {
		m, err := kernel.MoneyFromString("12.5")

		require.NoError(t, err)
		assert.Equal(t, "12.50", m.String())
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("twelve")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price, err := kernel.MoneyFromString("2.99")
	require.NoError(t, err)

	subtotal := price.Multiply(3)
	assert.Equal(t, "8.97", subtotal.String())

	total := subtotal.Add(price)
	assert.Equal(t, "11.96", total.String())
	assert.Equal(t, "2.99", price.String(), "operands must not be mutated")
}

func TestMoney_ZeroValueIsNotConstructed(t *testing.T) {
	var m kernel.Money

	require.ErrorIs(t, m.Validate(), kernel.ErrMoneyIsNotConstructed)
}
