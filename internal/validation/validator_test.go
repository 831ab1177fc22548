package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type imagePayload struct {
	Image string `json:"imageBase64" validate:"required,base64image"`
}

func TestBase64ImageRule(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		image string
		valid bool
	}{
		{"plain base64", "/9j/4AAQSkZJRgABAQ==", true},
		{"data url", "data:image/png;base64,iVBORw0KGgo=", true},
		{"data url without base64 marker", "data:image/png,iVBORw0KGgo=", false},
		{"not base64", "this is not an image!", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(imagePayload{Image: tt.image})
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
		})
	}
}

func TestTagNameUsesJSONName(t *testing.T) {
	err := NewValidator().Struct(imagePayload{})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "imageBase64", validationErrs[0].Field())
	assert.Equal(t, "required", validationErrs[0].Tag())
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
