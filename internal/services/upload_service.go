package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sunileswar-collab/BusinessCheck/internal/imageprocessor"
	"github.com/sunileswar-collab/BusinessCheck/internal/logger"
	"github.com/sunileswar-collab/BusinessCheck/internal/models"
	"github.com/sunileswar-collab/BusinessCheck/internal/repositories"
	"github.com/sunileswar-collab/BusinessCheck/internal/services/dto"
	"github.com/sunileswar-collab/BusinessCheck/internal/storage"
	"github.com/sunileswar-collab/BusinessCheck/pkg/apperrors"
)

// mediaColumns maps an upload usage to the company profile column it fills.
var mediaColumns = map[string]string{
	models.UploadUsageLogo:   "logo_url",
	models.UploadUsageBanner: "banner_url",
	models.UploadUsageVideo:  "video_url",
}

type UploadService interface {
	UploadMedia(ctx context.Context, db *gorm.DB, userID string, req *dto.UploadMediaRequest) (*dto.UploadResponse, error)
	UploadFile(ctx context.Context, db *gorm.DB, userID string, header *multipart.FileHeader, mediaType string) (*dto.UploadResponse, error)
	DeleteMedia(ctx context.Context, db *gorm.DB, userID, publicID string) error
}

type UploadServiceImpl struct {
	uploadRepo  repositories.UploadRepository
	companyRepo repositories.CompanyRepository
	store       storage.Storage
	processor   *imageprocessor.Processor
	maxSize     int64
}

func NewUploadService(
	uploadRepo repositories.UploadRepository,
	companyRepo repositories.CompanyRepository,
	store storage.Storage,
	processor *imageprocessor.Processor,
	maxSize int64,
) UploadService {
	return &UploadServiceImpl{
		uploadRepo:  uploadRepo,
		companyRepo: companyRepo,
		store:       store,
		processor:   processor,
		maxSize:     maxSize,
	}
}

// UploadMedia accepts a base64 data URL, applies the preset for the usage
// and stores the result.
func (s *UploadServiceImpl) UploadMedia(ctx context.Context, db *gorm.DB, userID string, req *dto.UploadMediaRequest) (*dto.UploadResponse, error) {
	data, contentType, err := decodeDataURL(req.File)
	if err != nil {
		return nil, apperrors.NewBadRequestError("file must be a base64 data URL")
	}
	if int64(len(data)) > s.maxSize {
		return nil, apperrors.ErrFileTooLarge
	}
	return s.save(ctx, db, userID, req.Type, data, contentType)
}

// UploadFile is the multipart variant of UploadMedia.
func (s *UploadServiceImpl) UploadFile(ctx context.Context, db *gorm.DB, userID string, header *multipart.FileHeader, mediaType string) (*dto.UploadResponse, error) {
	if _, ok := mediaColumns[mediaType]; !ok {
		return nil, apperrors.ErrInvalidUploadType
	}
	if header.Size > s.maxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.maxSize+1))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if int64(len(data)) > s.maxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(header.Filename))
	}
	return s.save(ctx, db, userID, mediaType, data, contentType)
}

// DeleteMedia removes an upload owned by the caller: the storage object, the
// upload row and the profile column that referenced it.
func (s *UploadServiceImpl) DeleteMedia(ctx context.Context, db *gorm.DB, userID, publicID string) error {
	upload, err := s.uploadRepo.FindByPublicID(db, publicID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUploadNotFound) {
			return apperrors.ErrUploadNotFound
		}
		return apperrors.InternalError(err)
	}
	if upload.UserID != userID {
		return apperrors.ErrForbidden
	}

	if err := s.store.Delete(ctx, upload.PublicID); err != nil {
		return apperrors.DependencyError("storage", err)
	}
	if err := s.uploadRepo.Delete(db, upload.ID); err != nil {
		return apperrors.InternalError(err)
	}

	// Clear the profile link only while it still points at this upload; a
	// newer upload of the same usage must keep its URL.
	if profile, perr := s.companyRepo.FindByOwnerID(db, userID); perr == nil {
		column := mediaColumns[upload.Usage]
		if currentMediaURL(profile, upload.Usage) == upload.URL {
			if err := s.companyRepo.UpdateMediaURL(db, userID, column, ""); err != nil {
				logger.CtxWithError(ctx, "failed to clear profile media url", err,
					"column", column, "user_id", userID)
			}
		}
	}
	return nil
}

func currentMediaURL(profile *models.CompanyProfile, usage string) string {
	switch usage {
	case models.UploadUsageLogo:
		return profile.LogoURL
	case models.UploadUsageBanner:
		return profile.BannerURL
	case models.UploadUsageVideo:
		return profile.VideoURL
	default:
		return ""
	}
}

func (s *UploadServiceImpl) save(ctx context.Context, db *gorm.DB, userID, usage string, data []byte, contentType string) (*dto.UploadResponse, error) {
	column, ok := mediaColumns[usage]
	if !ok {
		return nil, apperrors.ErrInvalidUploadType
	}

	if usage == models.UploadUsageVideo {
		if !strings.HasPrefix(contentType, "video/") {
			return nil, apperrors.NewBadRequestError("video uploads must have a video content type")
		}
	} else if preset := imageprocessor.PresetFor(usage); preset != nil {
		transformed, outType, err := s.processor.Transform(bytes.NewReader(data), *preset)
		if err != nil {
			return nil, apperrors.NewBadRequestError("file is not a decodable image")
		}
		data = transformed
		contentType = outType
	}

	key := buildKey(usage, contentType)
	if err := s.store.Save(ctx, key, bytes.NewReader(data), contentType); err != nil {
		return nil, apperrors.DependencyError("storage", err)
	}

	url, err := s.store.GetURL(ctx, key)
	if err != nil {
		return nil, apperrors.DependencyError("storage", err)
	}

	upload := &models.Upload{
		UserID:   userID,
		Usage:    usage,
		PublicID: key,
		URL:      url,
		MimeType: contentType,
		Size:     int64(len(data)),
	}
	if err := s.uploadRepo.Create(db, upload); err != nil {
		// Keep storage consistent with the database.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			logger.CtxWithError(ctx, "failed to roll back stored object", delErr, "key", key)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.companyRepo.UpdateMediaURL(db, userID, column, url); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UploadResponse{
		URL:          url,
		PublicID:     key,
		ResourceType: resourceType(contentType),
		Format:       formatFromMime(contentType),
		Bytes:        int64(len(data)),
	}, nil
}

// buildKey namespaces objects per usage, mirroring the folder layout the
// original CDN used.
func buildKey(usage, contentType string) string {
	ext := formatFromMime(contentType)
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("company_%ss/%s.%s", usage, uuid.NewString(), ext)
}

// decodeDataURL parses "data:<mime>;base64,<payload>". Bare base64 without
// the prefix is accepted and treated as an image of unknown subtype.
func decodeDataURL(input string) ([]byte, string, error) {
	contentType := "application/octet-stream"
	payload := input

	if strings.HasPrefix(input, "data:") {
		meta, rest, found := strings.Cut(input[len("data:"):], ",")
		if !found {
			return nil, "", fmt.Errorf("malformed data url")
		}
		contentType = strings.TrimSuffix(meta, ";base64")
		payload = rest
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", err
	}
	return data, contentType, nil
}

func resourceType(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"):
		return "video"
	default:
		return "raw"
	}
}

func formatFromMime(contentType string) string {
	_, subtype, found := strings.Cut(contentType, "/")
	if !found {
		return ""
	}
	if sub, _, hasParams := strings.Cut(subtype, ";"); hasParams {
		subtype = sub
	}
	return subtype
}
