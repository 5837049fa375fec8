package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type signupBody struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type searchQuery struct {
	MinimumRating *float64 `form:"minimum_rating" binding:"omitempty,rating"`
}

func TestToDetails_ValidationErrors(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(signupBody{Email: "nope", Password: "short"})
	details := ToDetails(err)

	assert.Equal(t, "is required", details["name"])
	assert.Equal(t, "must be a valid email address", details["email"])
	assert.Equal(t, "must be at least 8 characters", details["password"])
}

func TestToDetails_FormTagName(t *testing.T) {
	Init()

	r := 7.0
	err := binding.Validator.ValidateStruct(searchQuery{MinimumRating: &r})
	assert.Equal(t, map[string]string{"minimum_rating": "must be between 0 and 5"}, ToDetails(err))
}

func TestToDetails_Payloads(t *testing.T) {
	assert.Nil(t, ToDetails(nil))

	var v map[string]any
	err := json.Unmarshal([]byte("{"), &v)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))

	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(errors.New("x")))
}
