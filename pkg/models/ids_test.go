package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmapper/agentmapper/pkg/models"
)

func TestIDJSONRoundTrip(t *testing.T) {
	id := models.NewID()
	require.False(t, id.IsZero())

	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"`+id.String()+`"`, string(data))

	var back models.ID
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, id, back)
}

func TestParseID(t *testing.T) {
	id := models.NewID()
	parsed, err := models.ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = models.ParseID("not-a-uuid")
	assert.Error(t, err)
}

func TestNewIDsAreDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := models.NewID()
		require.False(t, seen[id.String()], "duplicate id generated")
		seen[id.String()] = true
	}
}

func TestSeedTradeoffsFreshIDs(t *testing.T) {
	first := models.SeedTradeoffs()
	second := models.SeedTradeoffs()
	require.Len(t, first, 5)
	require.Len(t, second, 5)
	for i := range first {
		assert.Equal(t, first[i].Topic, second[i].Topic)
		assert.Equal(t, 50, first[i].SliderValue)
		assert.NotEqual(t, first[i].ID, second[i].ID)
		assert.False(t, first[i].IsCustom)
	}
}
