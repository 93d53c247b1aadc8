/*
 * Copyright (c) 2019 OysterPack, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package errvar

import (
	"slices"
	"strings"
	"sync"
)

// TagConflict signals that a different kind is already registered under the same
// tag. The Fields payload carries the conflicting tag.
var TagConflict = Define[Fields]("TagConflict").
	WithMessage("a different error kind is already registered for the tag")

// Registry catalogs an application's error kinds by tag.
//
// Define never consults a registry: whether tags are unique across a set of kinds
// is the owning application's concern. A Registry is how an application enforces
// uniqueness for the kinds it discriminates on, and what makes that set available
// for inspection, e.g., to log the error catalog on startup.
//
// The registry is safe for concurrent use.
type Registry struct {
	mutex sync.RWMutex
	// Variant.Tag() -> Variant
	kinds map[string]Variant
}

// NewRegistry constructs a new empty registry.
//
// TagConflict is registered automatically because the registry itself produces it.
func NewRegistry() *Registry {
	r := &Registry{
		kinds: make(map[string]Variant),
	}
	r.kinds[TagConflict.Tag()] = TagConflict
	return r
}

// Register registers the specified kinds.
//
// Registering the same kind again is a noop. Registering a different kind under
// an already taken tag fails with a TagConflict error, and none of the remaining
// kinds are registered.
func (r *Registry) Register(kinds ...Variant) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for _, kind := range kinds {
		if registered, ok := r.kinds[kind.Tag()]; ok {
			if registered.ID() != kind.ID() {
				return TagConflict.New(Fields{"tag": kind.Tag()})
			}
			continue
		}
		r.kinds[kind.Tag()] = kind
	}
	return nil
}

// Registered returns true if a kind is registered under the specified tag.
func (r *Registry) Registered(tag string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	_, ok := r.kinds[tag]
	return ok
}

// Variant returns the kind registered under the specified tag.
func (r *Registry) Variant(tag string) (Variant, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	kind, ok := r.kinds[tag]
	return kind, ok
}

// Variants returns all registered kinds, sorted by tag.
func (r *Registry) Variants() []Variant {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	kinds := make([]Variant, 0, len(r.kinds))
	for _, kind := range r.kinds {
		kinds = append(kinds, kind)
	}
	slices.SortFunc(kinds, func(a, b Variant) int {
		return strings.Compare(a.Tag(), b.Tag())
	})
	return kinds
}

// Size returns the number of registered kinds.
func (r *Registry) Size() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.kinds)
}
