package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexRef_UnmarshalString(t *testing.T) {
	var ref FlexRef
	require.NoError(t, json.Unmarshal([]byte(`"Groceries"`), &ref))
	assert.Equal(t, "Groceries", ref.Name)
	assert.Empty(t, ref.ID)
}

func TestFlexRef_UnmarshalObject(t *testing.T) {
	var ref FlexRef
	require.NoError(t, json.Unmarshal([]byte(`{"id":"cat-1","name":"Groceries"}`), &ref))
	assert.Equal(t, "cat-1", ref.ID)
	assert.Equal(t, "Groceries", ref.Name)
}

func TestFlexRef_UnmarshalNull(t *testing.T) {
	ref := FlexRef{ID: "stale", Name: "stale"}
	require.NoError(t, json.Unmarshal([]byte(`null`), &ref))
	assert.True(t, ref.IsZero())
}

func TestFlexRef_UnmarshalInvalid(t *testing.T) {
	var ref FlexRef
	assert.Error(t, json.Unmarshal([]byte(`42`), &ref))
}

func TestFlexRef_NameOr(t *testing.T) {
	assert.Equal(t, "Other", FlexRef{}.NameOr("Other"))
	assert.Equal(t, "Rent", FlexRef{Name: "Rent"}.NameOr("Other"))
}

func TestFlexRef_MarshalEmitsObject(t *testing.T) {
	out, err := json.Marshal(FlexRef{ID: "a-1", Name: "Checking"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a-1","name":"Checking"}`, string(out))
}
