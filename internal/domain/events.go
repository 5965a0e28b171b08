package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoading   EventType = "CatalogLoading"
	EventCatalogLoaded    EventType = "CatalogLoaded"
	EventSelectionChanged EventType = "SelectionChanged"
	EventQueryChanged     EventType = "QueryChanged"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadingEvent is emitted when a catalog load begins
type CatalogLoadingEvent struct {
	Source string
}

func (e CatalogLoadingEvent) Type() EventType { return EventCatalogLoading }

// CatalogLoadedEvent is emitted when a catalog has been loaded and may
// replace the current one
type CatalogLoadedEvent struct {
	Source      string
	Items       []Item
	Fingerprint uint64
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// SelectionChangedEvent is emitted whenever the controlled selection is replaced
type SelectionChangedEvent struct {
	Added   []string
	Removed []string
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// QueryChangedEvent is emitted when the filter query changes
type QueryChangedEvent struct {
	Query      string
	MatchCount int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
