package main

import (
	"github.com/tikitihq/tikiti/internal/clock"
	"github.com/tikitihq/tikiti/internal/config"
	"github.com/tikitihq/tikiti/internal/migration"
	"github.com/tikitihq/tikiti/internal/observability"
	"github.com/tikitihq/tikiti/internal/server"
	"github.com/tikitihq/tikiti/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}
