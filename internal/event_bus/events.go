package event_bus

const (
	PresenceSourceChanged EventType = "presence.source.changed"
	PresenceStoreLoaded   EventType = "presence.store.loaded"
)

type SourceChanged struct {
	Reason string
}

type StoreLoaded struct {
	Source  string
	Users   int
	Rows    int
	Skipped int
}
