package handlers

import (
	"github.com/sunileswar-collab/BusinessCheck/internal/services"
)

// AppHandlers groups every route handler behind one constructor so route
// registration stays a single call site.
type AppHandlers struct {
	Auth    *AuthHandler
	Company *CompanyHandler
	Files   *FileHandler
}

func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler()
	return &AppHandlers{
		Auth:    NewAuthHandler(base, sc.AuthService),
		Company: NewCompanyHandler(base, sc.CompanyService, sc.UploadService),
		Files:   NewFileHandler(base, sc.Storage),
	}
}
