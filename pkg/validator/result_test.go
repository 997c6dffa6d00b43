package validator_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UBF21/Vali-Validation/pkg/validator"
)

func TestResult_AddError(t *testing.T) {
	t.Parallel()

	res := validator.NewResult()
	assert.True(t, res.IsValid())
	assert.Equal(t, 0, res.Len())

	res.AddError("Email", "first")
	res.AddError("Name", "second")
	res.AddError("Email", "third")
	res.AddError("Email", "third")

	assert.False(t, res.IsValid())
	assert.Equal(t, 4, res.Len())
	assert.Equal(t, []string{"Email", "Name"}, res.Properties())
	assert.Equal(t, []string{"first", "third", "third"}, res.Get("Email"))
	assert.True(t, res.Has("Name"))
	assert.False(t, res.Has("Age"))
	assert.Nil(t, res.Get("Age"))
}

func TestResult_ReturnsCopies(t *testing.T) {
	t.Parallel()

	res := validator.NewResult()
	res.AddError("Name", "required")

	got := res.Get("Name")
	got[0] = "changed"
	res.Errors()[0].Messages[0] = "changed"
	res.Map()["Name"][0] = "changed"

	assert.Equal(t, []string{"required"}, res.Get("Name"))
}

func TestResult_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("keeps property order", func(t *testing.T) {
		res := validator.NewResult()
		res.AddError("Zeta", "z1")
		res.AddError("Alpha", "a1")
		res.AddError("Zeta", "z2")

		data, err := json.Marshal(res)
		require.NoError(t, err)
		assert.Equal(t, `{"Zeta":["z1","z2"],"Alpha":["a1"]}`, string(data))
	})

	t.Run("valid result is an empty object", func(t *testing.T) {
		data, err := json.Marshal(validator.NewResult())
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
	})

	t.Run("names are not transformed", func(t *testing.T) {
		res := validator.NewResult()
		res.AddError("ConfirmPassword", `must match "Password"`)

		var decoded map[string][]string
		data, err := json.Marshal(res)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, map[string][]string{"ConfirmPassword": {`must match "Password"`}}, decoded)
	})
}

func TestResult_Err(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.NewResult().Err())

	res := validator.NewResult()
	res.AddError("Name", "The Name field cannot be empty.")
	res.AddError("Age", "The Age field cannot be zero.")

	err := fmt.Errorf("create user: %w", res.Err())
	require.Error(t, err)

	var got *validator.Result
	require.True(t, errors.As(err, &got))
	assert.Same(t, res, got)
	assert.Equal(t,
		"validation failed: Name: The Name field cannot be empty.; Age: The Age field cannot be zero.",
		res.Error())
}
