package services

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sunileswar-collab/BusinessCheck/internal/email"
	"github.com/sunileswar-collab/BusinessCheck/internal/models"
	"github.com/sunileswar-collab/BusinessCheck/internal/repositories"
)

// In-memory repository fakes. The db handle is part of the repository
// contract but unused here; service tests pass nil.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByMobile(_ *gorm.DB, mobileNo string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.MobileNo == mobileNo {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByVerificationToken(_ *gorm.DB, token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.VerificationToken == token {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email || u.MobileNo == user.MobileNo {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) SetMobileVerified(_ *gorm.DB, userID string, verified bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.IsMobileVerified = verified
	return nil
}

func (r *fakeUserRepo) SetEmailVerified(_ *gorm.DB, userID string, verified bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.IsEmailVerified = verified
	u.VerificationToken = ""
	return nil
}

func (r *fakeUserRepo) Delete(_ *gorm.DB, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

type fakeCompanyRepo struct {
	mu       sync.Mutex
	profiles map[string]*models.CompanyProfile // keyed by owner id
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{profiles: make(map[string]*models.CompanyProfile)}
}

func (r *fakeCompanyRepo) Create(_ *gorm.DB, profile *models.CompanyProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.OwnerID]; ok {
		return repositories.ErrCompanyAlreadyExists
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	clone := *profile
	r.profiles[profile.OwnerID] = &clone
	return nil
}

func (r *fakeCompanyRepo) FindByID(_ *gorm.DB, id string) (*models.CompanyProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, repositories.ErrCompanyNotFound
}

func (r *fakeCompanyRepo) FindByOwnerID(_ *gorm.DB, ownerID string) (*models.CompanyProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[ownerID]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, repositories.ErrCompanyNotFound
}

func (r *fakeCompanyRepo) Update(_ *gorm.DB, profile *models.CompanyProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *profile
	r.profiles[profile.OwnerID] = &clone
	return nil
}

func (r *fakeCompanyRepo) UpdateMediaURL(_ *gorm.DB, ownerID, column, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[ownerID]
	if !ok {
		return nil
	}
	switch column {
	case "logo_url":
		p.LogoURL = url
	case "banner_url":
		p.BannerURL = url
	case "video_url":
		p.VideoURL = url
	}
	return nil
}

func (r *fakeCompanyRepo) DeleteByOwnerID(_ *gorm.DB, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[ownerID]; !ok {
		return repositories.ErrCompanyNotFound
	}
	delete(r.profiles, ownerID)
	return nil
}

type fakeUploadRepo struct {
	mu      sync.Mutex
	uploads map[string]*models.Upload // keyed by public id
}

func newFakeUploadRepo() *fakeUploadRepo {
	return &fakeUploadRepo{uploads: make(map[string]*models.Upload)}
}

func (r *fakeUploadRepo) Create(_ *gorm.DB, upload *models.Upload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if upload.ID == "" {
		upload.ID = uuid.NewString()
	}
	clone := *upload
	r.uploads[upload.PublicID] = &clone
	return nil
}

func (r *fakeUploadRepo) FindByPublicID(_ *gorm.DB, publicID string) (*models.Upload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.uploads[publicID]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, repositories.ErrUploadNotFound
}

func (r *fakeUploadRepo) FindByUserID(_ *gorm.DB, userID string) ([]models.Upload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Upload
	for _, u := range r.uploads {
		if u.UserID == userID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUploadRepo) Delete(_ *gorm.DB, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, u := range r.uploads {
		if u.ID == id {
			delete(r.uploads, key)
			return nil
		}
	}
	return repositories.ErrUploadNotFound
}

func (r *fakeUploadRepo) DeleteByUserID(_ *gorm.DB, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, u := range r.uploads {
		if u.UserID == userID {
			delete(r.uploads, key)
		}
	}
	return nil
}

// fakeStorage keeps objects in memory.
type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (s *fakeStorage) Save(_ context.Context, key string, reader io.Reader, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *fakeStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *fakeStorage) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok, nil
}

func (s *fakeStorage) GetURL(_ context.Context, key string) (string, error) {
	return "/api/files/" + key, nil
}

func (s *fakeStorage) GetSignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "/api/files/" + key, nil
}

func (s *fakeStorage) GetSize(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.objects[key])), nil
}

// fakeEmailProvider records verification sends.
type fakeEmailProvider struct {
	mu     sync.Mutex
	sentTo []string
	tokens []string
}

func (p *fakeEmailProvider) Send(_ *email.Email) error { return nil }

func (p *fakeEmailProvider) SendVerification(to, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sentTo = append(p.sentTo, to)
	p.tokens = append(p.tokens, token)
	return nil
}

func (p *fakeEmailProvider) Close() error { return nil }

// fakeVerifier accepts one fixed code per mobile number. Like the Redis
// store, any attempt consumes the stored code.
type fakeVerifier struct {
	mu    sync.Mutex
	codes map[string]string
}

func newFakeVerifier() *fakeVerifier {
	return &fakeVerifier{codes: make(map[string]string)}
}

func (v *fakeVerifier) Request(_ context.Context, mobileNo string) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.codes[mobileNo] = "123456"
	return "123456", nil
}

func (v *fakeVerifier) Verify(_ context.Context, mobileNo, code string) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	stored, ok := v.codes[mobileNo]
	delete(v.codes, mobileNo)
	if !ok || stored != code {
		return false, nil
	}
	return true, nil
}
