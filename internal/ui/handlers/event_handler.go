package handlers

import (
	"errors"
	"log"
	"sync"

	"luxegems/internal/eventbus"
	"luxegems/internal/inventory"
)

// Stats counts the fetch outcomes seen on the bus
type Stats struct {
	Started   int
	Succeeded int
	Failed    int
	Discarded int
}

// EventHandler writes bus events to the diagnostic log. It is the only
// place fetch failures are reported; the storefront itself keeps quiet.
type EventHandler struct {
	mu          sync.Mutex
	stats       Stats
	unsubscribe []func()
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// Attach subscribes the handler to every event type it understands
func (h *EventHandler) Attach(bus eventbus.EventBus) {
	for _, t := range []eventbus.EventType{
		eventbus.EventFiltersChanged,
		eventbus.EventFetchStarted,
		eventbus.EventFetchSucceeded,
		eventbus.EventFetchFailed,
		eventbus.EventFetchDiscarded,
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
	} {
		h.unsubscribe = append(h.unsubscribe, bus.Subscribe(t, h.HandleEvent))
	}
}

// Detach removes all subscriptions made by Attach
func (h *EventHandler) Detach() {
	for _, unsubscribe := range h.unsubscribe {
		unsubscribe()
	}
	h.unsubscribe = nil
}

// Stats returns a copy of the counters
func (h *EventHandler) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stats
}

// HandleEvent logs one domain event
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch e := event.(type) {
	case eventbus.FiltersChangedEvent:
		log.Printf("Filters changed: category=%q material=%q search=%q", e.Filters.Category, e.Filters.Material, e.Filters.Search)

	case eventbus.FetchStartedEvent:
		h.stats.Started++

	case eventbus.FetchSucceededEvent:
		h.stats.Succeeded++
		log.Printf("Fetched %d items (request %s)", e.Count, e.RequestID)

	case eventbus.FetchFailedEvent:
		h.stats.Failed++
		var statusErr *inventory.StatusError
		switch {
		case errors.As(e.Err, &statusErr):
			log.Printf("Inventory API returned %d for request %s: %s", statusErr.Code, e.RequestID, statusErr.Body)
		case errors.Is(e.Err, inventory.ErrDecode):
			log.Printf("Inventory API sent an unreadable listing for request %s: %v", e.RequestID, e.Err)
		default:
			log.Printf("Inventory API unreachable for request %s: %v", e.RequestID, e.Err)
		}

	case eventbus.FetchDiscardedEvent:
		h.stats.Discarded++

	case eventbus.ConfigLoadedEvent:
		log.Printf("Config loaded from %s (api %s)", e.Path, e.APIURL)

	case eventbus.ConfigSavedEvent:
		log.Printf("Config saved to %s", e.Path)
	}
}
