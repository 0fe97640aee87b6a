package settings

import (
	"github.com/tikitihq/tikiti/internal/settings/repository"
	"github.com/tikitihq/tikiti/internal/settings/service"
	"go.uber.org/fx"
)

var Module = fx.Module("settings.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
