//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"jobmeet/config"
	"jobmeet/internal/auth"
	"jobmeet/internal/database"
	"jobmeet/internal/email"
	"jobmeet/internal/user"
)

func InitializeApp(db *database.Database, cfg *config.Config) *App {
	wire.Build(
		ProvideGormDB,
		user.NewRepository,
		email.Set,
		wire.Bind(new(auth.ResetMailer), new(*email.Sender)),
		auth.Set,
		NewApp,
	)
	return &App{}
}
