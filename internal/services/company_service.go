package services

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sunileswar-collab/BusinessCheck/internal/models"
	"github.com/sunileswar-collab/BusinessCheck/internal/repositories"
	"github.com/sunileswar-collab/BusinessCheck/internal/services/dto"
	"github.com/sunileswar-collab/BusinessCheck/pkg/apperrors"
)

type CompanyService interface {
	Register(db *gorm.DB, ownerID string, req *dto.CompanyRequest) (*models.CompanyProfile, error)
	GetProfile(db *gorm.DB, ownerID string) (*models.CompanyProfile, error)
	UpdateProfile(db *gorm.DB, ownerID string, req *dto.CompanyRequest) (*models.CompanyProfile, error)
	DeleteProfile(db *gorm.DB, ownerID string) error
}

type CompanyServiceImpl struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyService(companyRepo repositories.CompanyRepository) CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo}
}

// Register creates the owner's company profile. Each user owns at most one.
func (s *CompanyServiceImpl) Register(db *gorm.DB, ownerID string, req *dto.CompanyRequest) (*models.CompanyProfile, error) {
	if _, err := s.companyRepo.FindByOwnerID(db, ownerID); err == nil {
		return nil, apperrors.ErrCompanyAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrCompanyNotFound) {
		return nil, apperrors.InternalError(err)
	}

	profile := &models.CompanyProfile{OwnerID: ownerID}
	if err := applyCompanyRequest(profile, req); err != nil {
		return nil, err
	}

	if err := s.companyRepo.Create(db, profile); err != nil {
		if apperrors.Is(err, repositories.ErrCompanyAlreadyExists) {
			return nil, apperrors.ErrCompanyAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *CompanyServiceImpl) GetProfile(db *gorm.DB, ownerID string) (*models.CompanyProfile, error) {
	profile, err := s.companyRepo.FindByOwnerID(db, ownerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// UpdateProfile replaces the profile fields wholesale; media URLs managed by
// the upload flow are left untouched.
func (s *CompanyServiceImpl) UpdateProfile(db *gorm.DB, ownerID string, req *dto.CompanyRequest) (*models.CompanyProfile, error) {
	profile, err := s.companyRepo.FindByOwnerID(db, ownerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := applyCompanyRequest(profile, req); err != nil {
		return nil, err
	}

	if err := s.companyRepo.Update(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *CompanyServiceImpl) DeleteProfile(db *gorm.DB, ownerID string) error {
	if err := s.companyRepo.DeleteByOwnerID(db, ownerID); err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return apperrors.ErrCompanyNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func applyCompanyRequest(profile *models.CompanyProfile, req *dto.CompanyRequest) error {
	profile.CompanyName = req.CompanyName
	profile.Address = req.Address
	profile.City = req.City
	profile.State = req.State
	profile.Country = req.Country
	profile.PostalCode = req.PostalCode
	profile.Industry = req.Industry
	profile.Website = req.Website
	profile.Description = req.Description

	if req.FoundedDate != "" {
		founded, err := time.Parse("2006-01-02", req.FoundedDate)
		if err != nil {
			return apperrors.NewBadRequestError("founded_date must be formatted as YYYY-MM-DD")
		}
		profile.FoundedDate = &founded
	} else {
		profile.FoundedDate = nil
	}

	if req.SocialLinks != nil {
		profile.SocialLinks = datatypes.JSONMap(req.SocialLinks)
	} else {
		profile.SocialLinks = nil
	}
	return nil
}
