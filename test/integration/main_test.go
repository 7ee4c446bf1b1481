package integration_test

import (
	"os"
	"sync"
	"testing"

	"github.com/sunileswar-collab/BusinessCheck/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer lazily boots one shared server for the whole package. Tests
// are skipped entirely when DATABASE_URL is not set.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration tests")
	}

	serverOnce.Do(func() {
		os.Setenv("SERVER_ENV", "test")
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration_test_secret_12345")
		}
		if os.Getenv("STORAGE_TYPE") == "" {
			os.Setenv("STORAGE_TYPE", "local")
			os.Setenv("STORAGE_BASE_PATH", os.TempDir()+"/businesscheck-test-uploads")
		}

		globalTestServer = helpers.NewTestServer(t)

		// Rows from a previous run would trip the duplicate-email and
		// duplicate-mobile checks, so start from empty tables.
		globalTestServer.ClearTables(t)
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		globalTestServer.Close()
	}
	os.Exit(code)
}
