package rules

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Rule)
)

// Register adds a rule to the process-wide registry. Rules register from init
// so the set is complete before main runs; duplicate names are a programming
// error.
func Register(r Rule) {
	registryMu.Lock()
	defer registryMu.Unlock()
	name := r.Descriptor().Name
	if _, ok := registry[name]; ok {
		panic(fmt.Sprintf("rules: duplicate registration of %q", name))
	}
	registry[name] = r
}

// Get returns the rule registered under name.
func Get(name string) (Rule, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	r, ok := registry[name]
	return r, ok
}

// All returns every registered rule sorted by diagnostic code.
func All() []Rule {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Rule, 0, len(registry))
	for _, r := range registry {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Descriptor().Code < out[j].Descriptor().Code
	})
	return out
}
