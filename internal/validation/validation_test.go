package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string `json:"name" validate:"required,min=5,max=50"`
	Phone   string `json:"phone" validate:"omitempty,len=9"`
	Email   string `json:"email" validate:"omitempty,email"`
	GenreID string `json:"genreId" validate:"omitempty,uuid"`
	Stock   *int   `json:"numberInStock" validate:"omitempty,min=0,max=255"`
	Ignored string `json:"-" validate:"omitempty,min=3"`
}

func intPtr(v int) *int { return &v }

func TestStruct(t *testing.T) {
	tests := []struct {
		name  string
		in    sample
		field string
		msg   string
	}{
		{name: "valid", in: sample{Name: "Comedy", Stock: intPtr(0)}},
		{name: "missing name", in: sample{}, field: "name", msg: `"name" is required`},
		{name: "short name", in: sample{Name: "abc"}, field: "name", msg: `"name" length must be at least 5 characters long`},
		{name: "long name", in: sample{Name: strings.Repeat("a", 51)}, field: "name", msg: `"name" length must be less than or equal to 50 characters long`},
		{name: "phone length", in: sample{Name: "Comedy", Phone: "123"}, field: "phone", msg: `"phone" length must be 9 characters long`},
		{name: "bad email", in: sample{Name: "Comedy", Email: "nope"}, field: "email", msg: `"email" must be a valid email`},
		{name: "bad id", in: sample{Name: "Comedy", GenreID: "1"}, field: "genreId", msg: `"genreId" must be a valid id`},
		{name: "negative stock", in: sample{Name: "Comedy", Stock: intPtr(-1)}, field: "numberInStock", msg: `"numberInStock" must be greater than or equal to 0`},
		{name: "stock too large", in: sample{Name: "Comedy", Stock: intPtr(256)}, field: "numberInStock", msg: `"numberInStock" must be less than or equal to 255`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if tt.msg == "" {
				assert.NoError(t, err)
				return
			}

			var verr *Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.msg, verr.Error())
		})
	}
}

func TestStruct_NotAStruct(t *testing.T) {
	err := Struct(42)
	require.Error(t, err)

	var verr *Error
	assert.False(t, errors.As(err, &verr))
}
