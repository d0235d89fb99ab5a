package recipient_test

import (
	"testing"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() recipient.Address {
	return recipient.Address{
		Street: "Av. Paulista",
		Number: "1000",
		City:   "São Paulo",
		State:  "SP",
		CEP:    "01310-100",
	}
}

func TestNormalizeCEP(t *testing.T) {
	t.Run("should strip formatting characters", func(t *testing.T) {
		assert.Equal(t, "01310100", recipient.NormalizeCEP("01310-100"))
		assert.Equal(t, "01310100", recipient.NormalizeCEP("01310100"))
		assert.Equal(t, "01310100", recipient.NormalizeCEP(" 01.310-100 "))
	})

	t.Run("should be idempotent", func(t *testing.T) {
		once := recipient.NormalizeCEP("01310-100")
		assert.Equal(t, once, recipient.NormalizeCEP(once))
	})

	t.Run("should return empty for digitless input", func(t *testing.T) {
		assert.Empty(t, recipient.NormalizeCEP("abc-def"))
	})
}

func TestNewRecipient(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create recipient with normalized CEP", func(t *testing.T) {
		r, err := recipient.NewRecipient(validID, "Maria Silva", validAddress(), "+55 11 98888-0000", "maria@example.com", nil)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(validID))
		assert.Equal(t, "Maria Silva", r.Name())
		assert.Equal(t, "01310100", r.Address().CEP)
		assert.Equal(t, "Av. Paulista", r.Address().Street)
		assert.Equal(t, "maria@example.com", r.Email())
		assert.Nil(t, r.Location())
	})

	t.Run("should accept geocoordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(-23.55052, -46.633308)
		require.NoError(t, err)

		r, err := recipient.NewRecipient(validID, "Maria", validAddress(), "", "", &point)

		require.NoError(t, err)
		require.NotNil(t, r.Location())
		assert.InDelta(t, -23.55052, r.Location().Latitude(), 1e-9)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		r, err := recipient.NewRecipient(validID, " ", validAddress(), "", "", nil)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with incomplete address", func(t *testing.T) {
		address := validAddress()
		address.Street = ""
		address.City = ""

		r, err := recipient.NewRecipient(validID, "Maria", address, "", "", nil)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "city")
	})

	t.Run("should fail when CEP has no digits", func(t *testing.T) {
		address := validAddress()
		address.CEP = "no-digits"

		r, err := recipient.NewRecipient(validID, "Maria", address, "", "", nil)

		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "cep")
	})

	t.Run("should fail with invalid coordinates", func(t *testing.T) {
		var invalid kernel.GeoPoint

		r, err := recipient.NewRecipient(validID, "Maria", validAddress(), "", "", &invalid)

		require.Error(t, err)
		assert.Nil(t, r)
	})
}

func TestRecipient_Updates(t *testing.T) {
	newRecipient := func(t *testing.T) *recipient.Recipient {
		t.Helper()
		r, err := recipient.NewRecipient(kernel.NewUUID(), "Maria", validAddress(), "", "", nil)
		require.NoError(t, err)
		return r
	}

	t.Run("should re-normalize CEP on address change", func(t *testing.T) {
		r := newRecipient(t)
		address := validAddress()
		address.CEP = "22.071-060"

		require.NoError(t, r.ChangeAddress(address))
		assert.Equal(t, "22071060", r.Address().CEP)
	})

	t.Run("should set and clear location", func(t *testing.T) {
		r := newRecipient(t)
		point, _ := kernel.NewGeoPoint(-22.906847, -43.172897)

		require.NoError(t, r.ChangeLocation(&point))
		require.NotNil(t, r.Location())

		require.NoError(t, r.ChangeLocation(nil))
		assert.Nil(t, r.Location())
	})

	t.Run("should reject empty name on change", func(t *testing.T) {
		r := newRecipient(t)

		require.Error(t, r.ChangeName(""))
		assert.Equal(t, "Maria", r.Name())
	})

	t.Run("should replace contact fields", func(t *testing.T) {
		r := newRecipient(t)

		r.ChangeContact("123", "new@example.com")

		assert.Equal(t, "123", r.Phone())
		assert.Equal(t, "new@example.com", r.Email())
	})
}

func TestRecipient_Validate(t *testing.T) {
	t.Run("should fail for nil and zero value", func(t *testing.T) {
		var nilRecipient *recipient.Recipient
		var zeroRecipient recipient.Recipient

		assert.Equal(t, recipient.ErrRecipientIsNotConstructed, nilRecipient.Validate())
		assert.Equal(t, recipient.ErrRecipientIsNotConstructed, zeroRecipient.Validate())
	})
}
