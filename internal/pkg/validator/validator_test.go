package validator_test

import (
	stderrors "errors"
	"testing"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner-service/internal/pkg/validator"
)

type stopInput struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required,itinerary_category"`
}

func TestValidate_ItineraryCategory(t *testing.T) {
	assert.NoError(t, validator.Validate(&stopInput{Name: "Senso-ji", Category: "sightseeing"}))

	err := validator.Validate(&stopInput{Name: "Senso-ji", Category: "nature"})
	require.Error(t, err)

	var verrs gpvalidator.ValidationErrors
	require.True(t, stderrors.As(err, &verrs))
	assert.Equal(t, "category", verrs[0].Field())
	assert.Equal(t, "itinerary_category", verrs[0].Tag())
}

func TestGetValidator_CustomTagRegistered(t *testing.T) {
	v := validator.GetValidator()

	assert.NoError(t, v.Var("food", "itinerary_category"))
	assert.Error(t, v.Var("nightlife", "itinerary_category"))
}
