package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the value of key. Tests against cloud services (GCS, Firestore, BigQuery,
// GitHub App) are skipped when their variable is not set.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		t.Skipf("%s is not set, skipping test", key)
	}
	return value
}

// gitIdentityKeys are the variables git reads an author or committer identity from.
var gitIdentityKeys = []string{
	"GIT_AUTHOR_NAME",
	"GIT_AUTHOR_EMAIL",
	"GIT_COMMITTER_NAME",
	"GIT_COMMITTER_EMAIL",
	"EMAIL",
}

// UnsetGitIdentity removes every identity source for the rest of the test, as on a fresh host
// without user.name. The user@hostname fallback is disabled too, so a git command that needs an
// identity fails instead of guessing one.
func UnsetGitIdentity(t *testing.T) {
	t.Helper()
	for _, key := range gitIdentityKeys {
		// Setenv registers the restore; Unsetenv makes the variable absent rather than empty
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
	t.Setenv("GIT_CONFIG_COUNT", "1")
	t.Setenv("GIT_CONFIG_KEY_0", "user.useConfigOnly")
	t.Setenv("GIT_CONFIG_VALUE_0", "true")
}
