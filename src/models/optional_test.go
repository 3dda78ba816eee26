package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional_ThreeStates(t *testing.T) {
	var payload struct {
		Name Optional[string] `json:"name"`
	}

	// absent
	assert.NoError(t, json.Unmarshal([]byte(`{}`), &payload))
	assert.False(t, payload.Name.Set)

	// explicit null
	payload.Name = Optional[string]{}
	assert.NoError(t, json.Unmarshal([]byte(`{"name":null}`), &payload))
	assert.True(t, payload.Name.Set)
	assert.False(t, payload.Name.Valid)

	// value
	payload.Name = Optional[string]{}
	assert.NoError(t, json.Unmarshal([]byte(`{"name":"x"}`), &payload))
	assert.True(t, payload.Name.Set)
	assert.True(t, payload.Name.Valid)
	assert.Equal(t, "x", payload.Name.Value)
}

func TestOptional_TypeMismatchFails(t *testing.T) {
	var payload struct {
		Count Optional[int] `json:"count"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"count":"not-a-number"}`), &payload))
}

func TestUpdateTransactionRequest_Decode(t *testing.T) {
	var req UpdateTransactionRequest
	assert.NoError(t, json.Unmarshal([]byte(`{"amount":12.5,"description":null}`), &req))

	assert.True(t, req.Amount.Set)
	assert.True(t, req.Amount.Valid)
	assert.Equal(t, "12.5", req.Amount.Value.String())

	assert.True(t, req.Description.Set)
	assert.False(t, req.Description.Valid)

	assert.False(t, req.Type.Set)
	assert.False(t, req.Category.Set)
	assert.False(t, req.Date.Set)
}
