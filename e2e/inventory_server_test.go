//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
)

// Item is the wire shape of an inventory item served to the app
type Item struct {
	ID          string   `json:"id"`
	ItemCode    string   `json:"item_code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       int64    `json:"price"`
	Weight      float64  `json:"weight"`
	Material    string   `json:"material"`
	Images      []string `json:"images"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// InventoryServer is a fake listing endpoint that filters like the real backend
type InventoryServer struct {
	srv   *httptest.Server
	items []Item

	mu      sync.Mutex
	queries []url.Values
	failing bool
}

// NewInventoryServer starts serving the given items
func NewInventoryServer(items ...Item) *InventoryServer {
	s := &InventoryServer{items: items}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/inventory/items", s.list)
	s.srv = httptest.NewServer(mux)
	return s
}

// URL returns the API base URL
func (s *InventoryServer) URL() string {
	return s.srv.URL
}

// Close stops the server
func (s *InventoryServer) Close() {
	s.srv.Close()
}

// SetFailing makes every subsequent request answer 500
func (s *InventoryServer) SetFailing(failing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = failing
}

// Queries returns the query of every request received so far
func (s *InventoryServer) Queries() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.Values(nil), s.queries...)
}

func (s *InventoryServer) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	s.mu.Lock()
	s.queries = append(s.queries, q)
	failing := s.failing
	s.mu.Unlock()

	if failing {
		http.Error(w, `{"detail":"database unavailable"}`, http.StatusInternalServerError)
		return
	}

	matched := []Item{}
	for _, item := range s.items {
		if c := q.Get("category"); c != "" && !strings.EqualFold(item.Category, c) {
			continue
		}
		if m := q.Get("material"); m != "" && !strings.EqualFold(item.Material, m) {
			continue
		}
		if term := strings.ToLower(q.Get("search")); term != "" {
			haystack := strings.ToLower(item.Name + " " + item.ItemCode + " " + item.Description)
			if !strings.Contains(haystack, term) {
				continue
			}
		}
		matched = append(matched, item)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"items":    matched,
		"page":     1,
		"total":    len(matched),
		"has_more": false,
	})
}

// sampleItems is the catalog used by most tests
func sampleItems() []Item {
	return []Item{
		{
			ID: "a1", ItemCode: "RG-001", Name: "Sapphire Halo Ring",
			Description: "Oval sapphire with a diamond halo", Category: "ring",
			Price: 249900, Weight: 4.2, Material: "platinum", Status: "available",
			Images: []string{"https://cdn.example.com/rg-001.jpg"}, CreatedAt: "2024-03-01T10:00:00",
		},
		{
			ID: "a2", ItemCode: "NK-014", Name: "Pearl Strand Necklace",
			Description: "Akoya pearls", Category: "necklace",
			Price: 89900, Weight: 31.5, Material: "silver", Status: "reserved",
			CreatedAt: "2024-02-11T08:30:00Z",
		},
		{
			ID: "a3", ItemCode: "ER-220", Name: "Gold Hoop Earrings",
			Category: "earring", Price: 45000, Weight: 6.1, Material: "gold", Status: "available",
		},
	}
}
