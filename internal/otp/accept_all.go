package otp

import (
	"context"

	"github.com/sunileswar-collab/BusinessCheck/internal/auth"
	"github.com/sunileswar-collab/BusinessCheck/internal/logger"
)

// AcceptAll verifies any non-empty code. It exists for development and test
// environments with no SMS channel; app startup logs loudly when it is
// selected.
type AcceptAll struct{}

func NewAcceptAll() *AcceptAll {
	return &AcceptAll{}
}

func (a *AcceptAll) Request(ctx context.Context, mobileNo string) (string, error) {
	code, err := auth.RandomOTP(codeDigits)
	if err != nil {
		return "", err
	}
	logger.CtxWarn(ctx, "accept-all otp issued (no verification channel configured)", "mobile_no", mobileNo)
	return code, nil
}

func (a *AcceptAll) Verify(ctx context.Context, mobileNo, code string) (bool, error) {
	return code != "", nil
}

var _ auth.OTPVerifier = (*AcceptAll)(nil)
