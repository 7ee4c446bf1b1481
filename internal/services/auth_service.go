package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/sunileswar-collab/BusinessCheck/internal/auth"
	"github.com/sunileswar-collab/BusinessCheck/internal/email"
	"github.com/sunileswar-collab/BusinessCheck/internal/logger"
	"github.com/sunileswar-collab/BusinessCheck/internal/models"
	"github.com/sunileswar-collab/BusinessCheck/internal/repositories"
	"github.com/sunileswar-collab/BusinessCheck/internal/services/dto"
	"github.com/sunileswar-collab/BusinessCheck/internal/storage"
	"github.com/sunileswar-collab/BusinessCheck/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetCurrentUser(db *gorm.DB, userID string) (*dto.UserResponse, error)
	RequestOTP(ctx context.Context, db *gorm.DB, mobileNo string) error
	VerifyMobile(ctx context.Context, db *gorm.DB, req *dto.VerifyMobileRequest) error
	VerifyEmail(db *gorm.DB, token string) error
	DeleteAccount(ctx context.Context, db *gorm.DB, userID string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	companyRepo   repositories.CompanyRepository
	uploadRepo    repositories.UploadRepository
	emailProvider email.Provider
	otpVerifier   auth.OTPVerifier
	store         storage.Storage
}

func NewAuthService(
	userRepo repositories.UserRepository,
	companyRepo repositories.CompanyRepository,
	uploadRepo repositories.UploadRepository,
	emailProvider email.Provider,
	otpVerifier auth.OTPVerifier,
	store storage.Storage,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		companyRepo:   companyRepo,
		uploadRepo:    uploadRepo,
		emailProvider: emailProvider,
		otpVerifier:   otpVerifier,
		store:         store,
	}
}

// Register creates the account and immediately issues a session token.
func (s *AuthServiceImpl) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	// Pre-check both unique fields so the client learns which one clashed.
	// The unique indexes catch the race this check cannot.
	if _, err := s.userRepo.FindByEmail(db, emailAddr); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.userRepo.FindByMobile(db, req.MobileNo); err == nil {
		return nil, apperrors.ErrMobileAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	verificationToken, err := auth.RandomToken(32)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	signupType := req.SignupType
	if signupType == "" {
		signupType = models.SignupTypeEmail
	}

	user := &models.User{
		Email:             emailAddr,
		PasswordHash:      hashedPassword,
		FullName:          req.FullName,
		Gender:            req.Gender,
		MobileNo:          req.MobileNo,
		SignupType:        signupType,
		VerificationToken: verificationToken,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendVerificationEmail(ctx, user.Email, verificationToken)

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password return the same error so accounts cannot be enumerated.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) GetCurrentUser(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// RequestOTP issues a one-time code for a registered mobile number.
func (s *AuthServiceImpl) RequestOTP(ctx context.Context, db *gorm.DB, mobileNo string) error {
	if _, err := s.userRepo.FindByMobile(db, mobileNo); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if _, err := s.otpVerifier.Request(ctx, mobileNo); err != nil {
		return apperrors.DependencyError("otp store", err)
	}
	return nil
}

// VerifyMobile checks the code against the injected verifier and sets the
// flag. Setting an already-set flag is a no-op.
func (s *AuthServiceImpl) VerifyMobile(ctx context.Context, db *gorm.DB, req *dto.VerifyMobileRequest) error {
	user, err := s.userRepo.FindByMobile(db, req.MobileNo)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	ok, err := s.otpVerifier.Verify(ctx, req.MobileNo, req.OTP)
	if err != nil {
		return apperrors.DependencyError("otp store", err)
	}
	if !ok {
		return apperrors.ErrInvalidOTP
	}

	if err := s.userRepo.SetMobileVerified(db, user.ID, true); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// VerifyEmail consumes the verification token issued at registration.
func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, token string) error {
	if token == "" {
		return apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByVerificationToken(db, token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.SetEmailVerified(db, user.ID, true); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// DeleteAccount removes the user's uploads, company profile and account row
// inside one transaction, so a failure at any step leaves everything in
// place. Storage objects are cleaned up best-effort after commit.
func (s *AuthServiceImpl) DeleteAccount(ctx context.Context, db *gorm.DB, userID string) error {
	uploads, err := s.uploadRepo.FindByUserID(db, userID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.uploadRepo.DeleteByUserID(tx, userID); err != nil {
			return err
		}
		if err := s.companyRepo.DeleteByOwnerID(tx, userID); err != nil &&
			!apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return err
		}
		return s.userRepo.Delete(tx, userID)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	for _, upload := range uploads {
		if err := s.store.Delete(ctx, upload.PublicID); err != nil {
			logger.CtxWithError(ctx, "failed to delete storage object", err, "key", upload.PublicID)
		}
	}
	return nil
}

// sendVerificationEmail fires the mail off without blocking registration.
func (s *AuthServiceImpl) sendVerificationEmail(ctx context.Context, to, token string) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		if err := s.emailProvider.SendVerification(to, token); err != nil {
			logger.CtxWithError(ctx, "failed to send verification email", err, "email", to)
		}
	}()
}
