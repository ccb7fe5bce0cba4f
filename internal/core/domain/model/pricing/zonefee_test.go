package pricing_test

import (
	"testing"

	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZoneFee(t *testing.T) {
	t.Run("should create valid zone fee", func(t *testing.T) {
		zf, err := pricing.NewZoneFee("Plaza", 5.00)

		require.NoError(t, err)
		require.NoError(t, zf.Validate())
		assert.Equal(t, "Plaza", zf.Zone())
		assert.InDelta(t, 5.00, zf.Fee(), 0)
	})

	t.Run("should trim the zone name", func(t *testing.T) {
		zf, err := pricing.NewZoneFee("  Plaza  ", 5.00)

		require.NoError(t, err)
		assert.Equal(t, "Plaza", zf.Zone())
	})

	t.Run("should allow a zero fee", func(t *testing.T) {
		zf, err := pricing.NewZoneFee("Centro Habana", 0)

		require.NoError(t, err)
		assert.InDelta(t, 0, zf.Fee(), 0)
	})

	t.Run("should reject empty zone", func(t *testing.T) {
		_, err := pricing.NewZoneFee("   ", 5.00)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative fee", func(t *testing.T) {
		_, err := pricing.NewZoneFee("Plaza", -0.5)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestZoneFee_Matches(t *testing.T) {
	zf, err := pricing.NewZoneFee("Plaza", 5.00)
	require.NoError(t, err)

	assert.True(t, zf.Matches("Plaza"))
	assert.True(t, zf.Matches("plaza"))
	assert.True(t, zf.Matches("  PLAZA "))
	assert.False(t, zf.Matches("Playa"))
}

func TestZoneFee_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var zf pricing.ZoneFee

		err := zf.Validate()

		require.Error(t, err)
		assert.Equal(t, pricing.ErrZoneFeeIsNotConstructed, err)
	})
}

func TestNormalizeZone(t *testing.T) {
	assert.Equal(t, "plaza", pricing.NormalizeZone(" Plaza "))
	assert.Equal(t, "la habana vieja", pricing.NormalizeZone("La Habana Vieja"))
}
