package utils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trip-planner-service/internal/pkg/utils"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("same point", func(t *testing.T) {
		assert.Equal(t, 0.0, utils.HaversineDistance(35.6762, 139.6503, 35.6762, 139.6503))
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		want := 6371.0 * math.Pi / 180
		assert.InDelta(t, want, utils.HaversineDistance(35, 139, 36, 139), 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		ab := utils.HaversineDistance(35.6812, 139.7671, 34.7025, 135.4959)
		ba := utils.HaversineDistance(34.7025, 135.4959, 35.6812, 139.7671)
		assert.InDelta(t, ab, ba, 1e-9)
		// Tokyo Station to Osaka Station
		assert.InDelta(t, 400, ab, 10)
	})

	t.Run("NaN propagates", func(t *testing.T) {
		assert.True(t, math.IsNaN(utils.HaversineDistance(math.NaN(), 0, 0, 0)))
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(35.6, 139.7))
	assert.True(t, utils.ValidateCoordinates(-90, 180))
	assert.False(t, utils.ValidateCoordinates(90.1, 0))
	assert.False(t, utils.ValidateCoordinates(0, -180.5))
}
