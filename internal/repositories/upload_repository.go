package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sunileswar-collab/BusinessCheck/internal/models"
)

var ErrUploadNotFound = errors.New("upload not found")

type UploadRepository interface {
	Create(db *gorm.DB, upload *models.Upload) error
	FindByPublicID(db *gorm.DB, publicID string) (*models.Upload, error)
	FindByUserID(db *gorm.DB, userID string) ([]models.Upload, error)
	Delete(db *gorm.DB, id string) error
	DeleteByUserID(db *gorm.DB, userID string) error
}

type UploadRepositoryImpl struct{}

func NewUploadRepository() UploadRepository {
	return &UploadRepositoryImpl{}
}

func (r *UploadRepositoryImpl) Create(db *gorm.DB, upload *models.Upload) error {
	return db.Create(upload).Error
}

func (r *UploadRepositoryImpl) FindByPublicID(db *gorm.DB, publicID string) (*models.Upload, error) {
	var upload models.Upload
	err := db.First(&upload, "public_id = ?", publicID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	return &upload, nil
}

func (r *UploadRepositoryImpl) FindByUserID(db *gorm.DB, userID string) ([]models.Upload, error) {
	var uploads []models.Upload
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

func (r *UploadRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Upload{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUploadNotFound
	}
	return nil
}

// DeleteByUserID removes all upload rows for a user; used by the
// account-deletion transaction. Zero rows is fine.
func (r *UploadRepositoryImpl) DeleteByUserID(db *gorm.DB, userID string) error {
	return db.Delete(&models.Upload{}, "user_id = ?", userID).Error
}
