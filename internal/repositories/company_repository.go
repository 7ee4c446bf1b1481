package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sunileswar-collab/BusinessCheck/internal/models"
)

var (
	ErrCompanyNotFound      = errors.New("company profile not found")
	ErrCompanyAlreadyExists = errors.New("company profile already exists for this user")
)

type CompanyRepository interface {
	Create(db *gorm.DB, profile *models.CompanyProfile) error
	FindByID(db *gorm.DB, id string) (*models.CompanyProfile, error)
	FindByOwnerID(db *gorm.DB, ownerID string) (*models.CompanyProfile, error)
	Update(db *gorm.DB, profile *models.CompanyProfile) error
	UpdateMediaURL(db *gorm.DB, ownerID, column, url string) error
	DeleteByOwnerID(db *gorm.DB, ownerID string) error
}

type CompanyRepositoryImpl struct{}

func NewCompanyRepository() CompanyRepository {
	return &CompanyRepositoryImpl{}
}

// Create inserts the profile; the unique index on owner_id backstops the
// one-profile-per-user rule.
func (r *CompanyRepositoryImpl) Create(db *gorm.DB, profile *models.CompanyProfile) error {
	if err := db.Create(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCompanyAlreadyExists
		}
		return err
	}
	return nil
}

func (r *CompanyRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CompanyRepositoryImpl) FindByOwnerID(db *gorm.DB, ownerID string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := db.First(&profile, "owner_id = ?", ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Update saves the full profile row.
func (r *CompanyRepositoryImpl) Update(db *gorm.DB, profile *models.CompanyProfile) error {
	return db.Save(profile).Error
}

// UpdateMediaURL patches a single media column (logo_url, banner_url,
// video_url) on the owner's profile. A missing profile is not an error:
// media can be uploaded before the profile is registered.
func (r *CompanyRepositoryImpl) UpdateMediaURL(db *gorm.DB, ownerID, column, url string) error {
	return db.Model(&models.CompanyProfile{}).
		Where("owner_id = ?", ownerID).
		Update(column, url).Error
}

func (r *CompanyRepositoryImpl) DeleteByOwnerID(db *gorm.DB, ownerID string) error {
	result := db.Delete(&models.CompanyProfile{}, "owner_id = ?", ownerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}
