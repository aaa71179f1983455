package presence

import (
	"context"
	"sync"
	"time"

	"github.com/presence-analyzer/presence-analyzer/internal/event_bus"
	"github.com/presence-analyzer/presence-analyzer/internal/utils"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const storeFlightKey = "store"

type Service interface {
	Users(ctx context.Context) ([]int, error)
	MeanTimeByWeekday(ctx context.Context, userId int) (WeekdayValues, error)
	PresenceByWeekday(ctx context.Context, userId int) (WeekdayTotals, error)
	StartEndByWeekday(ctx context.Context, userId int) (map[string]StartEnd, error)
	Reload(ctx context.Context) error
}

// ServiceImpl answers presence queries from a Store loaded from source. A
// loaded store is reused for ttl and concurrent misses share one load; with a
// zero ttl every call loads the source on its own.
type ServiceImpl struct {
	source Source
	bus    *event_bus.EventBus
	clock  utils.Clock
	ttl    time.Duration

	flight singleflight.Group

	mu         sync.Mutex
	store      *Store
	loadedAt   time.Time
	generation uint64
}

func NewServiceImpl(source Source, bus *event_bus.EventBus, clock utils.Clock, ttl time.Duration) *ServiceImpl {
	s := &ServiceImpl{
		source: source,
		bus:    bus,
		clock:  clock,
		ttl:    ttl,
	}
	event_bus.SubscribeTyped(bus, event_bus.PresenceSourceChanged, func(e event_bus.EventT[event_bus.SourceChanged]) error {
		log.Infof("Presence source changed (%s), dropping cached store", e.Data.Reason)
		s.Invalidate()
		return nil
	})
	return s
}

func (s *ServiceImpl) Users(ctx context.Context) ([]int, error) {
	store, err := s.currentStore(ctx)
	if err != nil {
		return nil, err
	}
	return store.Users(), nil
}

func (s *ServiceImpl) MeanTimeByWeekday(ctx context.Context, userId int) (WeekdayValues, error) {
	store, err := s.currentStore(ctx)
	if err != nil {
		return nil, err
	}
	return MeanByWeekday(store, userId)
}

func (s *ServiceImpl) PresenceByWeekday(ctx context.Context, userId int) (WeekdayTotals, error) {
	store, err := s.currentStore(ctx)
	if err != nil {
		return nil, err
	}
	return TotalByWeekday(store, userId)
}

func (s *ServiceImpl) StartEndByWeekday(ctx context.Context, userId int) (map[string]StartEnd, error) {
	store, err := s.currentStore(ctx)
	if err != nil {
		return nil, err
	}
	return MeanStartEndByWeekday(store, userId)
}

// Reload announces that the source changed; subscribers, this service
// included, drop whatever they derived from it.
func (s *ServiceImpl) Reload(ctx context.Context) error {
	return s.bus.Publish(event_bus.NewEvent(ctx, event_bus.PresenceSourceChanged, event_bus.SourceChanged{Reason: "reload requested"}))
}

func (s *ServiceImpl) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = nil
	s.generation++
	s.flight.Forget(storeFlightKey)
}

func (s *ServiceImpl) currentStore(ctx context.Context) (*Store, error) {
	if s.ttl <= 0 {
		return s.load(ctx)
	}

	s.mu.Lock()
	if s.store != nil && s.clock.Now().Sub(s.loadedAt) < s.ttl {
		store := s.store
		s.mu.Unlock()
		return store, nil
	}
	generation := s.generation
	s.mu.Unlock()

	// The shared load outlives any single caller, so it must not inherit
	// one caller's cancellation.
	loadCtx := context.WithoutCancel(ctx)
	results := s.flight.DoChan(storeFlightKey, func() (any, error) {
		store, err := s.load(loadCtx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		if s.generation == generation {
			s.store = store
			s.loadedAt = s.clock.Now()
		}
		s.mu.Unlock()
		return store, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}
		return result.Val.(*Store), nil
	}
}

func (s *ServiceImpl) load(ctx context.Context) (*Store, error) {
	store, err := Load(ctx, s.source)
	if err != nil {
		log.Errorf("failed to load presence data: %v", err)
		return nil, err
	}

	err = s.bus.Publish(event_bus.NewEvent(ctx, event_bus.PresenceStoreLoaded, event_bus.StoreLoaded{
		Source:  s.source.Name(),
		Users:   len(store.users),
		Rows:    store.rows,
		Skipped: store.skipped,
	}))
	if err != nil {
		log.Warnf("failed to publish store loaded event: %v", err)
	}
	return store, nil
}
