package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sunileswar-collab/BusinessCheck/database"
	"github.com/sunileswar-collab/BusinessCheck/internal/app"
	"github.com/sunileswar-collab/BusinessCheck/internal/auth"
	"github.com/sunileswar-collab/BusinessCheck/internal/config"
	"gorm.io/gorm"
)

// TestServer runs the real application against the test database.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer boots the app with configuration taken from the environment
// (DATABASE_URL and friends) and serves it over httptest.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()

	auth.InitJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sc, err := app.BuildServices(cfg)
	if err != nil {
		t.Fatalf("failed to build services: %v", err)
	}

	router := app.SetupRouter(cfg, db, sc)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// ClearTables truncates every application table; called once at suite
// bootstrap so repeated runs against the same database start clean.
func (ts *TestServer) ClearTables(t *testing.T) {
	err := ts.DB.Exec("TRUNCATE TABLE users, company_profiles, uploads RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("failed to clear tables: %v", err)
	}
}

// SendRequest performs an HTTP request against the test server and returns
// the response together with its body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBody)
}

// RegisterUser registers a fresh user through the API and returns the
// session token from the response.
func RegisterUser(t *testing.T, ts *TestServer, email, mobileNo string) string {
	body := map[string]interface{}{
		"email":     email,
		"password":  "super_password123",
		"full_name": "Test User",
		"gender":    "f",
		"mobile_no": mobileNo,
	}

	res, resBody := ts.SendRequest(t, "POST", "/api/auth/register", "", body)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("registration failed (%d): %s", res.StatusCode, resBody)
	}

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(resBody), &envelope); err != nil {
		t.Fatalf("failed to decode registration response: %v", err)
	}
	if envelope.Data.Token == "" {
		t.Fatalf("registration returned no token: %s", resBody)
	}
	return envelope.Data.Token
}

// RegisterCompany creates a company profile for the token's user.
func RegisterCompany(t *testing.T, ts *TestServer, token, name string) {
	body := map[string]interface{}{
		"company_name": name,
		"address":      "1 Factory Lane",
		"city":         "Almaty",
		"state":        "Almaty",
		"country":      "Kazakhstan",
		"postal_code":  "050000",
		"industry":     "Manufacturing",
	}

	res, resBody := ts.SendRequest(t, "POST", "/api/company/register", token, body)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("company registration failed (%d): %s", res.StatusCode, resBody)
	}
}

// UniqueMobile derives a distinct mobile number per test from a counter.
func UniqueMobile(n int) string {
	return fmt.Sprintf("+7700%07d", n)
}
