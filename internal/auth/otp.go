package auth

import "context"

// OTPVerifier is the injected capability behind mobile-number verification.
// The concrete implementation (Redis-backed store, accept-all dev verifier)
// is chosen once at process start; business logic never branches on the
// environment.
type OTPVerifier interface {
	// Request generates and delivers a one-time code for the mobile number
	// and returns the code that was stored.
	Request(ctx context.Context, mobileNo string) (string, error)

	// Verify checks a presented code. Any attempt consumes the stored code,
	// match or not, so each issued code allows exactly one guess; a failed
	// attempt requires a fresh Request.
	Verify(ctx context.Context, mobileNo, code string) (bool, error)
}
