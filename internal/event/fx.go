package event

import (
	"github.com/tikitihq/tikiti/internal/event/repository"
	"github.com/tikitihq/tikiti/internal/event/service"
	"go.uber.org/fx"
)

var Module = fx.Module("event.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
)
