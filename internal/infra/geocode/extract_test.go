package geocode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPayload(t *testing.T, raw string) any {
	t.Helper()

	var payload any
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	return payload
}

func TestResolvePayload_ResultsArrayWins(t *testing.T) {
	payload := mustPayload(t, `{
		"results": [{"formatted_address": "101 Market St"}],
		"result": {"formatted_address": "should not be used"}
	}`)

	resolved, ok := resolvePayload(payload, 25.0, 121.5)
	require.True(t, ok)
	assert.Equal(t, "101 Market St", resolved.Address)
	assert.Equal(t, 25.0, resolved.Latitude)
	assert.Equal(t, 121.5, resolved.Longitude)
}

func TestResolvePayload_SingularResultField(t *testing.T) {
	payload := mustPayload(t, `{"result": {"formatted_address": "5 Night Market Rd"}}`)

	resolved, ok := resolvePayload(payload, 1, 2)
	require.True(t, ok)
	assert.Equal(t, "5 Night Market Rd", resolved.Address)
}

func TestResolvePayload_TopLevelArray(t *testing.T) {
	payload := mustPayload(t, `[{"address": "7 Alley St", "city": "Tainan", "state": "Taiwan"}]`)

	resolved, ok := resolvePayload(payload, 1, 2)
	require.True(t, ok)
	assert.Equal(t, "7 Alley St", resolved.Address)
	assert.Equal(t, "Tainan", resolved.City)
	assert.Equal(t, "Taiwan", resolved.State)
}

func TestResolvePayload_RawObjectLastResort(t *testing.T) {
	payload := mustPayload(t, `{"formatted_address": "raw object address"}`)

	resolved, ok := resolvePayload(payload, 1, 2)
	require.True(t, ok)
	assert.Equal(t, "raw object address", resolved.Address)
}

func TestResolvePayload_NothingUsable(t *testing.T) {
	for _, raw := range []string{`{}`, `[]`, `null`} {
		_, ok := resolvePayload(mustPayload(t, raw), 1, 2)
		assert.False(t, ok, "payload %s should not resolve", raw)
	}
}

func TestResolvePayload_EmptyResultsFallsThroughToRawObject(t *testing.T) {
	// An object with an empty results array still resolves: the raw
	// payload is accepted as the candidate and everything defaults.
	payload := mustPayload(t, `{"results": []}`)

	resolved, ok := resolvePayload(payload, 25.1, 121.6)
	require.True(t, ok)
	assert.Equal(t, unknownCity, resolved.City)
	assert.Equal(t, unknownState, resolved.State)
	assert.Equal(t, "25.1, 121.6", resolved.Address)
}

func TestExtractComponent_PositionalIndexFirst(t *testing.T) {
	payload := mustPayload(t, `{"results": [{
		"address_components": [
			{"long_name": "1"},
			{"long_name": "Positional State"},
			{"long_name": "3"},
			{"long_name": "4"},
			{"long_name": "Positional City"},
			{"long_name": "Typed City", "types": ["locality"]}
		]
	}]}`)

	resolved, ok := resolvePayload(payload, 1, 2)
	require.True(t, ok)
	assert.Equal(t, "Positional City", resolved.City)
	assert.Equal(t, "Positional State", resolved.State)
}

func TestExtractComponent_TypedLookupFallback(t *testing.T) {
	// Too few components for the positional shortcut; typed lookup wins.
	payload := mustPayload(t, `{"results": [{
		"address_components": [
			{"long_name": "Typed City", "types": ["locality"]}
		]
	}]}`)

	resolved, ok := resolvePayload(payload, 1, 2)
	require.True(t, ok)
	assert.Equal(t, "Typed City", resolved.City)
	assert.Equal(t, unknownState, resolved.State)
}

func TestExtractComponent_FlatFieldFallback(t *testing.T) {
	payload := mustPayload(t, `{"results": [{"city": "Flat City", "state": "Flat State"}]}`)

	resolved, ok := resolvePayload(payload, 1, 2)
	require.True(t, ok)
	assert.Equal(t, "Flat City", resolved.City)
	assert.Equal(t, "Flat State", resolved.State)
}

func TestExtractComponent_UnknownDefaults(t *testing.T) {
	payload := mustPayload(t, `{"results": [{"formatted_address": "somewhere"}]}`)

	resolved, ok := resolvePayload(payload, 1, 2)
	require.True(t, ok)
	assert.Equal(t, unknownCity, resolved.City)
	assert.Equal(t, unknownState, resolved.State)
}

func TestComposeAddress_FallbackChain(t *testing.T) {
	// formatted_address missing, generic address field used.
	payload := mustPayload(t, `{"results": [{"address": "plain address"}]}`)
	resolved, ok := resolvePayload(payload, 1, 2)
	require.True(t, ok)
	assert.Equal(t, "plain address", resolved.Address)

	// Neither address field; synthesized from city/state.
	payload = mustPayload(t, `{"results": [{"city": "Taipei", "state": "Taiwan"}]}`)
	resolved, ok = resolvePayload(payload, 1, 2)
	require.True(t, ok)
	assert.Equal(t, "Taipei, Taiwan", resolved.Address)

	// Nothing at all; raw coordinates as last resort.
	payload = mustPayload(t, `{"results": [{"place_id": "x"}]}`)
	resolved, ok = resolvePayload(payload, 25.1, 121.6)
	require.True(t, ok)
	assert.Equal(t, "25.1, 121.6", resolved.Address)
}
