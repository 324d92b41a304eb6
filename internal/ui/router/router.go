// Package router maps storefront screens to paths and keeps a back stack.
package router

import (
	"log"
	"strings"

	"luxegems/internal/eventbus"
)

// Page identifies a screen
type Page int

const (
	PageCatalog Page = iota
	PageItem
	PageLogin
)

// Route is a navigation target
type Route struct {
	Page   Page
	ItemID string
}

// Catalog is the storefront home
func Catalog() Route { return Route{Page: PageCatalog} }

// Item is the detail view for one item
func Item(id string) Route { return Route{Page: PageItem, ItemID: id} }

// Login is the staff login screen
func Login() Route { return Route{Page: PageLogin} }

// Path renders the route as a URL path
func (r Route) Path() string {
	switch r.Page {
	case PageItem:
		return "/item/" + r.ItemID
	case PageLogin:
		return "/login"
	default:
		return "/"
	}
}

// Parse turns a path back into a route
func Parse(path string) (Route, bool) {
	switch {
	case path == "/" || path == "":
		return Catalog(), true
	case path == "/login":
		return Login(), true
	case strings.HasPrefix(path, "/item/"):
		id := strings.TrimPrefix(path, "/item/")
		if id == "" || strings.Contains(id, "/") {
			return Route{}, false
		}
		return Item(id), true
	}
	return Route{}, false
}

// Router holds the current route and history
type Router struct {
	history []Route
	bus     eventbus.EventBus
}

// New creates a router starting at the catalog
func New(bus eventbus.EventBus) *Router {
	return &Router{
		history: []Route{Catalog()},
		bus:     bus,
	}
}

// Current returns the active route
func (r *Router) Current() Route {
	return r.history[len(r.history)-1]
}

// Navigate pushes a route; navigating to the current route is a no-op
func (r *Router) Navigate(to Route) {
	from := r.Current()
	if from == to {
		return
	}
	r.history = append(r.history, to)
	r.announce(from, to)
}

// Back pops one route. It reports false at the root.
func (r *Router) Back() bool {
	if len(r.history) <= 1 {
		return false
	}
	from := r.Current()
	r.history = r.history[:len(r.history)-1]
	r.announce(from, r.Current())
	return true
}

// Depth is the number of routes in the history
func (r *Router) Depth() int {
	return len(r.history)
}

func (r *Router) announce(from, to Route) {
	log.Printf("Navigate %s -> %s", from.Path(), to.Path())
	if r.bus != nil {
		r.bus.Publish(eventbus.NavigatedEvent{From: from.Path(), To: to.Path()})
	}
}
