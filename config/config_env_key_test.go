package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"geocoding": map[string]any{
			"baseUrl": "https://nominatim.openstreetmap.org",
			"countryCodes": "ru",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"lastLocation": map[string]any{
			"statePath": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "GEOCODING_BASEURL", want: "geocoding.baseUrl"},
		{envKey: "GEOCODING_COUNTRYCODES", want: "geocoding.countryCodes"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "LASTLOCATION_STATEPATH", want: "lastLocation.statePath"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
