package main

import (
	"gorm.io/gorm"

	"jobmeet/internal/auth"
	"jobmeet/internal/database"
)

type App struct {
	AuthHandler *auth.JSONHandler
}

func NewApp(authHandler *auth.JSONHandler) *App {
	return &App{AuthHandler: authHandler}
}

func ProvideGormDB(db *database.Database) *gorm.DB {
	return db.DB
}
