package geocode

import (
	"fmt"

	"nosh/internal/domain/service"
)

// Fallback values so callers always receive non-empty city/state strings.
const (
	unknownCity  = "Unknown City"
	unknownState = "Unknown State"
)

// candidateStrategy picks the location object out of one known payload
// shape. Strategies run in priority order; the first success wins.
type candidateStrategy func(payload any) (map[string]any, bool)

var candidateStrategies = []candidateStrategy{
	firstOfResultsArray,
	singularResultField,
	firstOfTopLevelArray,
	rawObject,
}

// resolvePayload normalizes a reverse-geocode payload of unknown shape
// into a ResolvedAddress. Returns false when no location object can be
// found at all.
func resolvePayload(payload any, lat, lng float64) (*service.ResolvedAddress, bool) {
	var candidate map[string]any
	found := false
	for _, strategy := range candidateStrategies {
		if c, ok := strategy(payload); ok {
			candidate = c
			found = true

			break
		}
	}
	if !found {
		return nil, false
	}

	city := extractComponent(candidate, 4, "locality", "city", unknownCity)
	state := extractComponent(candidate, 1, "administrative_area_level_1", "state", unknownState)

	return &service.ResolvedAddress{
		Address:   composeAddress(candidate, city, state, lat, lng),
		City:      city,
		State:     state,
		Latitude:  lat,
		Longitude: lng,
	}, true
}

// firstOfResultsArray handles {"results": [ ... ]}.
func firstOfResultsArray(payload any) (map[string]any, bool) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, false
	}

	results, ok := obj["results"].([]any)
	if !ok || len(results) == 0 {
		return nil, false
	}

	first, ok := results[0].(map[string]any)

	return first, ok
}

// singularResultField handles {"result": { ... }}.
func singularResultField(payload any) (map[string]any, bool) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, false
	}

	result, ok := obj["result"].(map[string]any)

	return result, ok
}

// firstOfTopLevelArray handles [ { ... }, ... ].
func firstOfTopLevelArray(payload any) (map[string]any, bool) {
	list, ok := payload.([]any)
	if !ok || len(list) == 0 {
		return nil, false
	}

	first, ok := list[0].(map[string]any)

	return first, ok
}

// rawObject accepts the payload itself as the location object.
func rawObject(payload any) (map[string]any, bool) {
	obj, ok := payload.(map[string]any)
	if !ok || len(obj) == 0 {
		return nil, false
	}

	return obj, true
}

// extractComponent resolves a named address part out of the candidate,
// trying in order: a fixed positional index into address_components (a
// provider-specific shortcut, not a contract), a typed component lookup,
// the provider's flat field, then the fallback literal.
func extractComponent(candidate map[string]any, positionalIdx int, componentType, flatField, fallback string) string {
	components, _ := candidate["address_components"].([]any)

	if positionalIdx < len(components) {
		if name := componentLongName(components[positionalIdx]); name != "" {
			return name
		}
	}

	for _, raw := range components {
		comp, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if !hasComponentType(comp, componentType) {
			continue
		}
		if name := componentLongName(comp); name != "" {
			return name
		}
	}

	if flat, ok := candidate[flatField].(string); ok && flat != "" {
		return flat
	}

	return fallback
}

func componentLongName(raw any) string {
	comp, ok := raw.(map[string]any)
	if !ok {
		return ""
	}

	name, _ := comp["long_name"].(string)

	return name
}

func hasComponentType(comp map[string]any, want string) bool {
	types, _ := comp["types"].([]any)
	for _, t := range types {
		if s, ok := t.(string); ok && s == want {
			return true
		}
	}

	return false
}

// composeAddress prefers the provider's formatted address, then a
// generic address field, then a synthesized "city, state" string, and
// finally the raw coordinates.
func composeAddress(candidate map[string]any, city, state string, lat, lng float64) string {
	if formatted, ok := candidate["formatted_address"].(string); ok && formatted != "" {
		return formatted
	}

	if addr, ok := candidate["address"].(string); ok && addr != "" {
		return addr
	}

	if city != unknownCity || state != unknownState {
		return city + ", " + state
	}

	return fmt.Sprintf("%v, %v", lat, lng)
}
