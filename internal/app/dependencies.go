package app

import (
	"github.com/presence-analyzer/presence-analyzer/internal/config"
	"github.com/presence-analyzer/presence-analyzer/internal/event_bus"
	"github.com/presence-analyzer/presence-analyzer/internal/utils"
	"github.com/presence-analyzer/presence-analyzer/pkg/presence"
	"github.com/presence-analyzer/presence-analyzer/pkg/user"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	PresenceService *presence.ServiceImpl
	PresenceHandler *presence.Handler

	UserService user.Service
	UserHandler *user.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	source, err := presence.NewSource(cfg.Data)
	if err != nil {
		return nil, err
	}
	deps.PresenceService = presence.NewServiceImpl(source, deps.EventBus, deps.Clock, cfg.Cache.TTL)
	deps.PresenceHandler = presence.NewHandler(deps.PresenceService, presence.NewCsvStatsRenderer())

	deps.UserService = user.NewUserService(deps.PresenceService)
	deps.UserHandler = user.NewHandler(deps.UserService)

	event_bus.SubscribeTyped(deps.EventBus, event_bus.PresenceStoreLoaded, func(e event_bus.EventT[event_bus.StoreLoaded]) error {
		log.WithFields(log.Fields{
			"source":  e.Data.Source,
			"users":   e.Data.Users,
			"rows":    e.Data.Rows,
			"skipped": e.Data.Skipped,
		}).Info("Presence data loaded")
		return nil
	})

	return deps, nil
}
