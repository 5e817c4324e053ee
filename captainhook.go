/*
http://www.apache.org/licenses/LICENSE-2.0.txt


Copyright 2026 Michael Franzl

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package captainhook

import (
	"sort"
)

// DefaultPriority is assigned to handlers registered without a
// priority. Higher priorities are invoked earlier.
const DefaultPriority = 10

// Handler is invoked when its event is emitted. self is the value
// bound at registration time (the registering host unless an explicit
// Context option was supplied). The arguments given to the emit
// operation are forwarded positionally. The return value is collected
// into the emit result sequence.
type Handler func(self interface{}, args ...interface{}) interface{}

// HandlerOpts carries the optional per-registration settings.
//
// A Priority of 0 is treated as unset and normalized to
// DefaultPriority. This matches the historical contract; a handler
// cannot be registered at priority zero.
type HandlerOpts struct {
	// Tag labels the registration for targeted removal.
	Tag string

	// Priority orders invocation, highest first.
	Priority int

	// Context is bound as the handler's self argument. Defaults to
	// the host performing the registration.
	Context interface{}

	// Once removes the registration after its first invocation.
	Once bool
}

// One registered subscription.
type handlerRecord struct {
	id       string
	fn       Handler
	tag      string
	priority int
	context  interface{}
	once     bool
}

// Store holds the ordered handler lists for one storage location,
// keyed by event name. Lists stay sorted by priority descending; the
// sort is not stable, so ties carry no order guarantee.
type Store struct {
	handlers map[string][]*handlerRecord
}

// Lazy load the handler map for a Store.
func (s *Store) lazyLoadHandlers() {
	if s.handlers == nil {
		s.handlers = make(map[string][]*handlerRecord)
	}
}

// Appends a record to the event's list and re-sorts the full list.
func (s *Store) insert(event string, r *handlerRecord) {
	s.lazyLoadHandlers()
	l := append(s.handlers[event], r)
	sort.Slice(l, func(i, j int) bool {
		return l[i].priority > l[j].priority
	})
	s.handlers[event] = l
}

// Returns the live list for the event, nil when absent.
func (s *Store) list(event string) []*handlerRecord {
	return s.handlers[event]
}

// Removes the first record in current list order whose tag matches
// exactly, returning the removed record or nil. Only one record is
// removed even when several share the tag.
func (s *Store) removeTag(event, tag string) *handlerRecord {
	if s.handlers == nil || tag == "" {
		return nil
	}
	l := s.handlers[event]
	for i, r := range l {
		if r.tag == tag {
			s.handlers[event] = append(l[:i], l[i+1:]...)
			return r
		}
	}
	return nil
}

// Removes every once-flagged record from the event's live list in a
// single pass. Runs after all handlers for an emit have returned, so
// it also collects once records added during that emit.
func (s *Store) sweepOnce(event string) {
	l := s.handlers[event]
	if len(l) == 0 {
		return
	}
	kept := l[:0]
	for _, r := range l {
		if !r.once {
			kept = append(kept, r)
		}
	}
	s.handlers[event] = kept
}

// Count of records currently registered for the event.
func (s *Store) count(event string) int {
	return len(s.handlers[event])
}

// Keeper is implemented by hosts that carry named public handler
// stores. A mixin configured with a public storage name resolves its
// store through this interface, so each host keeps its own
// subscriptions.
type Keeper interface {
	HookStore(name string) *Store
}

// Host is an embeddable Keeper. The zero value is ready to use;
// stores are created lazily on first access, one per storage name.
type Host struct {
	stores map[string]*Store
}

// HookStore returns the host's store for the given storage name,
// creating it on first access.
func (h *Host) HookStore(name string) *Store {
	if h.stores == nil {
		h.stores = make(map[string]*Store)
	}
	s, ok := h.stores[name]
	if !ok {
		s = new(Store)
		h.stores[name] = s
	}
	return s
}
