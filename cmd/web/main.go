package main

import (
	"github.com/sunileswar-collab/BusinessCheck/internal/app"
	"github.com/sunileswar-collab/BusinessCheck/internal/logger"
)

// @title BusinessCheck API
// @version 1.0
// @description Business directory backend: accounts, company profiles, media.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}
