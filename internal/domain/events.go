package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFiltersChanged EventType = "FiltersChanged"
	EventFetchStarted   EventType = "FetchStarted"
	EventFetchSucceeded EventType = "FetchSucceeded"
	EventFetchFailed    EventType = "FetchFailed"
	EventFetchDiscarded EventType = "FetchDiscarded"
	EventNavigated      EventType = "Navigated"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FiltersChangedEvent is emitted when the filter snapshot is replaced
type FiltersChangedEvent struct {
	Filters FilterState
}

func (e FiltersChangedEvent) Type() EventType { return EventFiltersChanged }

// FetchStartedEvent is emitted when a listing request is issued
type FetchStartedEvent struct {
	Seq       uint64
	RequestID string
	Filters   FilterState
}

func (e FetchStartedEvent) Type() EventType { return EventFetchStarted }

// FetchSucceededEvent is emitted when the latest listing request is applied
type FetchSucceededEvent struct {
	Seq       uint64
	RequestID string
	Count     int
}

func (e FetchSucceededEvent) Type() EventType { return EventFetchSucceeded }

// FetchFailedEvent is emitted when a listing request fails. It is the
// operator-facing diagnostic for failures the shopper never sees.
type FetchFailedEvent struct {
	Seq       uint64
	RequestID string
	Filters   FilterState
	Err       error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// FetchDiscardedEvent is emitted when a response arrives for a superseded request
type FetchDiscardedEvent struct {
	Seq       uint64
	Latest    uint64
	RequestID string
}

func (e FetchDiscardedEvent) Type() EventType { return EventFetchDiscarded }

// NavigatedEvent is emitted when the storefront changes route
type NavigatedEvent struct {
	From string
	To   string
}

func (e NavigatedEvent) Type() EventType { return EventNavigated }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	APIURL string
	Path   string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
