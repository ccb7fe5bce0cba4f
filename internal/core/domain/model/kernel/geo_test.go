package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(23.1136, -82.3666)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, 23.1136, p.Lat(), 0)
		assert.InDelta(t, -82.3666, p.Lng(), 0)
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		corners := [][2]float64{
			{kernel.MinLatitude, kernel.MinLongitude},
			{kernel.MinLatitude, kernel.MaxLongitude},
			{kernel.MaxLatitude, kernel.MinLongitude},
			{kernel.MaxLatitude, kernel.MaxLongitude},
			{0, 0},
		}

		for _, c := range corners {
			p, err := kernel.NewGeoPoint(c[0], c[1])
			require.NoError(t, err)
			require.NoError(t, p.Validate())
		}
	})

	t.Run("should reject latitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90.0001, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("should reject longitude out of range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -180.5)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "longitude")
	})

	t.Run("should join both range errors", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(120, 300)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var p kernel.GeoPoint

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal points compare equal", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(23.1136, -82.3666)
		b, _ := kernel.NewGeoPoint(23.1136, -82.3666)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different points compare unequal", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(23.1136, -82.3666)
		b, _ := kernel.NewGeoPoint(23.05, -82.40)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("comparison with zero value fails", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(23.1136, -82.3666)
		var b kernel.GeoPoint

		_, err := a.IsEqual(b)

		require.Error(t, err)
	})
}

func TestGeoPoint_String(t *testing.T) {
	p, _ := kernel.NewGeoPoint(23.1136, -82.3666)

	assert.Equal(t, "GeoPoint(23.1136,-82.3666)", p.String())
}
