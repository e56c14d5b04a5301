package naming

import (
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
)

// Resolver maps display names to item IDs.
// Resolution is exact; fuzzy matching is only used to build suggestions.
type Resolver interface {
	// Resolve returns the ID registered for an exact display name
	Resolve(name string) (id string, ok bool)

	// Suggest returns up to limit registered names close to name, best first
	Suggest(name string, limit int) []string

	// Search returns the IDs whose names contain substr, case-insensitively, in registration order
	Search(substr string) []string

	// RegisterItem registers an item for name resolution
	RegisterItem(id, name string)
}

type entry struct {
	id    string
	name  string
	lower string
}

type resolver struct {
	mu sync.RWMutex

	// Mapping: name -> id
	nameToID map[string]string

	// Registration order, used by Search and Suggest
	entries []entry
}

// NewResolver creates an empty naming resolver
func NewResolver() Resolver {
	return &resolver{
		nameToID: make(map[string]string),
	}
}

// RegisterItem adds a name->id mapping. The first registration of a name wins.
func (r *resolver) RegisterItem(id, name string) {
	if name == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.nameToID[name]; exists {
		return
	}
	r.nameToID[name] = id
	r.entries = append(r.entries, entry{id: id, name: name, lower: strings.ToLower(name)})
}

// Resolve converts a display name to an item ID
func (r *resolver) Resolve(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.nameToID[name]
	return id, ok
}

// Search returns IDs of items whose name contains substr (case-insensitive)
func (r *resolver) Search(substr string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(substr))
	ids := make([]string, 0)
	for _, e := range r.entries {
		if needle == "" || strings.Contains(e.lower, needle) {
			ids = append(ids, e.id)
		}
	}
	return ids
}

type scored struct {
	name string
	dist int
}

// Suggest returns names within an edit-distance limit of name
func (r *resolver) Suggest(name string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	needle := strings.ToLower(strings.TrimSpace(name))
	if len(needle) < MinSuggestInputLength {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []scored
	for _, e := range r.entries {
		if e.lower == needle {
			// Case or whitespace mismatch: always the best suggestion
			results = append(results, scored{name: e.name, dist: 0})
			continue
		}
		dist := levenshtein.ComputeDistance(needle, e.lower)
		if dist > distanceLimit(len(e.lower)) {
			continue
		}
		results = append(results, scored{name: e.name, dist: dist})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].name < results[j].name
		}
		return results[i].dist < results[j].dist
	})

	if len(results) > limit {
		results = results[:limit]
	}
	names := make([]string, len(results))
	for i, s := range results {
		names[i] = s.name
	}
	return names
}

func distanceLimit(length int) int {
	switch {
	case length <= ShortNameLength:
		return 1
	case length <= MediumNameLength:
		return 2
	case length <= LongNameLength:
		return 3
	default:
		return MaxSuggestDistance
	}
}
