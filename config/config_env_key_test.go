package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"dispatch": map[string]any{
			"topicId": "",
		},
		"notify": map[string]any{
			"supervisorToken": "",
		},
		"tap": map[string]any{
			"defaultDebounceSeconds": 300,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "DISPATCH_TOPICID", want: "dispatch.topicId"},
		{envKey: "NOTIFY_SUPERVISORTOKEN", want: "notify.supervisorToken"},
		{envKey: "TAP_DEFAULTDEBOUNCESECONDS", want: "tap.defaultDebounceSeconds"},
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
