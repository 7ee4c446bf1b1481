package services

import (
	"github.com/sunileswar-collab/BusinessCheck/internal/auth"
	"github.com/sunileswar-collab/BusinessCheck/internal/config"
	"github.com/sunileswar-collab/BusinessCheck/internal/email"
	"github.com/sunileswar-collab/BusinessCheck/internal/imageprocessor"
	"github.com/sunileswar-collab/BusinessCheck/internal/repositories"
	"github.com/sunileswar-collab/BusinessCheck/internal/storage"
)

// ServiceContainer wires repositories and providers into the services the
// handlers consume.
type ServiceContainer struct {
	AuthService    AuthService
	CompanyService CompanyService
	UploadService  UploadService

	Storage       storage.Storage
	EmailProvider email.Provider
	OTPVerifier   auth.OTPVerifier
}

// NewServiceContainer builds the full service graph from its external
// dependencies.
func NewServiceContainer(
	cfg *config.Config,
	store storage.Storage,
	emailProvider email.Provider,
	otpVerifier auth.OTPVerifier,
) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	companyRepo := repositories.NewCompanyRepository()
	uploadRepo := repositories.NewUploadRepository()

	processor := imageprocessor.New(cfg.Upload.ImageQuality)

	return &ServiceContainer{
		AuthService:    NewAuthService(userRepo, companyRepo, uploadRepo, emailProvider, otpVerifier, store),
		CompanyService: NewCompanyService(companyRepo),
		UploadService:  NewUploadService(uploadRepo, companyRepo, store, processor, cfg.Upload.MaxSize),
		Storage:        store,
		EmailProvider:  emailProvider,
		OTPVerifier:    otpVerifier,
	}
}
