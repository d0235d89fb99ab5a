package kernel_test

import (
	"testing"

	"fastfeet/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCPF(t *testing.T) {
	t.Run("strips formatting characters", func(t *testing.T) {
		assert.Equal(t, "12345678900", kernel.NormalizeCPF("123.456.789-00"))
	})

	t.Run("formatted and plain inputs normalize equal", func(t *testing.T) {
		assert.Equal(t,
			kernel.NormalizeCPF("123.456.789-00"),
			kernel.NormalizeCPF("12345678900"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		once := kernel.NormalizeCPF("123.456.789-00")
		assert.Equal(t, once, kernel.NormalizeCPF(once))
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Equal(t, "", kernel.NormalizeCPF("..--"))
	})
}

func TestNewCPF(t *testing.T) {
	t.Run("accepts formatted CPF", func(t *testing.T) {
		cpf, err := kernel.NewCPF("123.456.789-00")

		require.NoError(t, err)
		require.NoError(t, cpf.Validate())
		assert.Equal(t, "12345678900", cpf.String())
	})

	t.Run("formatted and plain CPFs compare equal", func(t *testing.T) {
		a, _ := kernel.NewCPF("123.456.789-00")
		b, _ := kernel.NewCPF("12345678900")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := kernel.NewCPF("")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrCPFIsNotConstructed.Unwrap())
	})

	t.Run("rejects wrong number of digits", func(t *testing.T) {
		_, err := kernel.NewCPF("123456")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cpf")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cpf kernel.CPF
		require.Error(t, cpf.Validate())
	})
}
