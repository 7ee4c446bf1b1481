package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunileswar-collab/BusinessCheck/internal/services/dto"
	"github.com/sunileswar-collab/BusinessCheck/pkg/apperrors"
)

func validCompanyRequest() *dto.CompanyRequest {
	return &dto.CompanyRequest{
		CompanyName: "Acme Widgets",
		Address:     "1 Factory Lane",
		City:        "Almaty",
		State:       "Almaty",
		Country:     "Kazakhstan",
		PostalCode:  "050000",
		Industry:    "Manufacturing",
		Website:     "https://acme.example.com",
		FoundedDate: "2015-06-01",
		Description: "Widgets for everyone",
		SocialLinks: map[string]interface{}{"twitter": "https://twitter.com/acme"},
	}
}

func TestCompanyRegister_Success(t *testing.T) {
	service := NewCompanyService(newFakeCompanyRepo())

	profile, err := service.Register(nil, "owner-1", validCompanyRequest())
	require.NoError(t, err)

	assert.Equal(t, "owner-1", profile.OwnerID)
	assert.Equal(t, "Acme Widgets", profile.CompanyName)
	require.NotNil(t, profile.FoundedDate)
	assert.Equal(t, "2015-06-01", profile.FoundedDate.Format("2006-01-02"))
	assert.Equal(t, "https://twitter.com/acme", profile.SocialLinks["twitter"])
}

func TestCompanyRegister_OnePerUser(t *testing.T) {
	service := NewCompanyService(newFakeCompanyRepo())

	_, err := service.Register(nil, "owner-1", validCompanyRequest())
	require.NoError(t, err)

	_, err = service.Register(nil, "owner-1", validCompanyRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCompanyAlreadyExists)

	// A different user is unaffected.
	_, err = service.Register(nil, "owner-2", validCompanyRequest())
	assert.NoError(t, err)
}

func TestCompanyGetProfile_NotFound(t *testing.T) {
	service := NewCompanyService(newFakeCompanyRepo())

	_, err := service.GetProfile(nil, "owner-1")
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}

func TestCompanyUpdateProfile_ReplacesFields(t *testing.T) {
	repo := newFakeCompanyRepo()
	service := NewCompanyService(repo)

	_, err := service.Register(nil, "owner-1", validCompanyRequest())
	require.NoError(t, err)

	update := validCompanyRequest()
	update.CompanyName = "Acme Rebranded"
	update.Website = ""
	update.FoundedDate = ""

	profile, err := service.UpdateProfile(nil, "owner-1", update)
	require.NoError(t, err)

	assert.Equal(t, "Acme Rebranded", profile.CompanyName)
	assert.Empty(t, profile.Website)
	assert.Nil(t, profile.FoundedDate)
}

func TestCompanyUpdateProfile_KeepsMediaURLs(t *testing.T) {
	repo := newFakeCompanyRepo()
	service := NewCompanyService(repo)

	_, err := service.Register(nil, "owner-1", validCompanyRequest())
	require.NoError(t, err)
	require.NoError(t, repo.UpdateMediaURL(nil, "owner-1", "logo_url", "/api/files/company_logos/x.jpeg"))

	_, err = service.UpdateProfile(nil, "owner-1", validCompanyRequest())
	require.NoError(t, err)

	profile, err := service.GetProfile(nil, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "/api/files/company_logos/x.jpeg", profile.LogoURL)
}

func TestCompanyUpdateProfile_BadFoundedDate(t *testing.T) {
	service := NewCompanyService(newFakeCompanyRepo())

	_, err := service.Register(nil, "owner-1", validCompanyRequest())
	require.NoError(t, err)

	update := validCompanyRequest()
	update.FoundedDate = "01/06/2015"
	_, err = service.UpdateProfile(nil, "owner-1", update)

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestCompanyDeleteProfile(t *testing.T) {
	service := NewCompanyService(newFakeCompanyRepo())

	_, err := service.Register(nil, "owner-1", validCompanyRequest())
	require.NoError(t, err)

	require.NoError(t, service.DeleteProfile(nil, "owner-1"))

	_, err = service.GetProfile(nil, "owner-1")
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)

	assert.ErrorIs(t, service.DeleteProfile(nil, "owner-1"), apperrors.ErrCompanyNotFound)
}
