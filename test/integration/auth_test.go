package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunileswar-collab/BusinessCheck/internal/models"
	"github.com/sunileswar-collab/BusinessCheck/test/helpers"
)

func TestRegisterAndLoginFlow(t *testing.T) {
	ts := GetTestServer(t)

	registerBody := map[string]interface{}{
		"email":     "flow@test.com",
		"password":  "super_password123",
		"full_name": "Flow Tester",
		"gender":    "m",
		"mobile_no": helpers.UniqueMobile(1),
	}

	regRes, regBody := ts.SendRequest(t, "POST", "/api/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBody, "User registered successfully")
	assert.Contains(t, regBody, `"token"`)
	// No password material in any shape.
	assert.NotContains(t, regBody, "password")
	assert.NotContains(t, regBody, "super_password123")

	logRes, logBody := ts.SendRequest(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "flow@test.com",
		"password": "super_password123",
	})
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBody, `"token"`)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)

	body := map[string]interface{}{
		"email":     "duplicate@test.com",
		"password":  "super_password123",
		"full_name": "First User",
		"gender":    "f",
		"mobile_no": helpers.UniqueMobile(2),
	}
	res, _ := ts.SendRequest(t, "POST", "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	body["mobile_no"] = helpers.UniqueMobile(3)
	res, resBody := ts.SendRequest(t, "POST", "/api/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, resBody, "Email already registered")
}

func TestRegister_DuplicateMobile(t *testing.T) {
	ts := GetTestServer(t)

	body := map[string]interface{}{
		"email":     "mobile-one@test.com",
		"password":  "super_password123",
		"full_name": "First User",
		"gender":    "f",
		"mobile_no": helpers.UniqueMobile(4),
	}
	res, _ := ts.SendRequest(t, "POST", "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	body["email"] = "mobile-two@test.com"
	res, resBody := ts.SendRequest(t, "POST", "/api/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, resBody, "Mobile number already registered")
}

func TestRegister_ValidationErrors(t *testing.T) {
	ts := GetTestServer(t)

	res, resBody := ts.SendRequest(t, "POST", "/api/auth/register", "", map[string]interface{}{
		"email":     "not-an-email",
		"password":  "123",
		"full_name": "X",
		"gender":    "z",
		"mobile_no": "nope",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, resBody, `"success":false`)
	assert.Contains(t, resBody, "errors")
}

func TestLogin_FailuresLookTheSame(t *testing.T) {
	ts := GetTestServer(t)
	helpers.RegisterUser(t, ts, "samelook@test.com", helpers.UniqueMobile(5))

	unknownRes, unknownBody := ts.SendRequest(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "ghost@test.com",
		"password": "super_password123",
	})
	wrongRes, wrongBody := ts.SendRequest(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "samelook@test.com",
		"password": "wrong_password",
	})

	assert.Equal(t, http.StatusUnauthorized, unknownRes.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, wrongRes.StatusCode)
	assert.Equal(t, unknownBody, wrongBody)
	assert.Contains(t, unknownBody, "Invalid credentials")
}

func TestMe_RequiresToken(t *testing.T) {
	ts := GetTestServer(t)

	res, resBody := ts.SendRequest(t, "GET", "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, resBody, "Access token required")

	res, _ = ts.SendRequest(t, "GET", "/api/auth/me", "garbage-token", nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestMe_ReturnsCurrentUser(t *testing.T) {
	ts := GetTestServer(t)
	token := helpers.RegisterUser(t, ts, "me@test.com", helpers.UniqueMobile(6))

	res, resBody := ts.SendRequest(t, "GET", "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, resBody, "me@test.com")
	assert.NotContains(t, resBody, "password")
}

func TestVerifyMobileFlow(t *testing.T) {
	ts := GetTestServer(t)
	mobile := helpers.UniqueMobile(7)
	token := helpers.RegisterUser(t, ts, "verify-mobile@test.com", mobile)

	res, _ := ts.SendRequest(t, "POST", "/api/auth/request-otp", token, map[string]interface{}{
		"mobile_no": mobile,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	// The accept-all verifier is active in test runs, so any code passes.
	res, _ = ts.SendRequest(t, "POST", "/api/auth/verify-mobile", token, map[string]interface{}{
		"mobile_no": mobile,
		"otp":       "123456",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, resBody := ts.SendRequest(t, "GET", "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, resBody, `"is_mobile_verified":true`)
}

func TestVerifyEmailFlow(t *testing.T) {
	ts := GetTestServer(t)
	token := helpers.RegisterUser(t, ts, "verify-email@test.com", helpers.UniqueMobile(8))

	var user models.User
	err := ts.DB.Where("email = ?", "verify-email@test.com").First(&user).Error
	require.NoError(t, err)
	require.NotEmpty(t, user.VerificationToken)

	res, _ := ts.SendRequest(t, "GET", "/api/auth/verify-email?token="+user.VerificationToken, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, resBody := ts.SendRequest(t, "GET", "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, resBody, `"is_email_verified":true`)

	// Tokens are single-use.
	res, _ = ts.SendRequest(t, "GET", "/api/auth/verify-email?token="+user.VerificationToken, "", nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestDeleteAccount(t *testing.T) {
	ts := GetTestServer(t)
	token := helpers.RegisterUser(t, ts, "delete-me@test.com", helpers.UniqueMobile(9))
	helpers.RegisterCompany(t, ts, token, "Doomed Co")

	res, _ := ts.SendRequest(t, "DELETE", "/api/auth/user", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// The account and its company profile are both gone.
	var userCount, companyCount int64
	ts.DB.Model(&models.User{}).Where("email = ?", "delete-me@test.com").Count(&userCount)
	ts.DB.Model(&models.CompanyProfile{}).Where("company_name = ?", "Doomed Co").Count(&companyCount)
	assert.Zero(t, userCount)
	assert.Zero(t, companyCount)

	// The old token no longer authenticates a user.
	res, _ = ts.SendRequest(t, "GET", "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
