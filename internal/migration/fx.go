package migration

import (
	"github.com/tikitihq/tikiti/internal/config"
	eventdomain "github.com/tikitihq/tikiti/internal/event/domain"
	orderdomain "github.com/tikitihq/tikiti/internal/order/domain"
	referencedomain "github.com/tikitihq/tikiti/internal/reference/domain"
	"github.com/tikitihq/tikiti/internal/seed"
	settingsdomain "github.com/tikitihq/tikiti/internal/settings/domain"
	ticketdomain "github.com/tikitihq/tikiti/internal/ticket/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// Embedded SQL targets Postgres. The sqlite fallback used for
			// local hacking gets its schema from GORM instead.
			if err := conn.AutoMigrate(
				&settingsdomain.CalculatorSettings{},
				&eventdomain.Event{},
				&orderdomain.Order{},
				&ticketdomain.Ticket{},
				&referencedomain.Region{},
			); err != nil {
				return err
			}
		}

		return seed.EnsureCatalog(conn)
	}),
)
