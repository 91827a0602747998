package comparator

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/amp-labs/numstring/errors"
	"go.uber.org/atomic"
)

// Registry caches comparators per (type, field name) pair. It is owned by
// the caller and lives as long as the caller keeps it; there is no global
// registry.
//
// Lookups take a shared lock. On a miss the comparator is built without
// holding any lock and then inserted if no other goroutine got there first,
// so concurrent first requests may build redundant (but identical)
// comparators and all callers end up with the cached one.
//
// Caching never changes results: a Registry returns exactly what Direct or
// ForField would, built with the registry's options.
type Registry struct {
	opts    Options
	mutex   sync.RWMutex
	entries map[cacheKey]any
	fields  map[reflect.Type]any
	hits    atomic.Int64
	misses  atomic.Int64
}

type cacheKey struct {
	typ   reflect.Type
	field string
}

// Stats reports registry lookup counters.
type Stats struct {
	Hits   int64
	Misses int64
}

// NewRegistry creates an empty registry. The options apply to every
// comparator it builds.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		opts:    newOptions(opts),
		entries: make(map[cacheKey]any),
		fields:  make(map[reflect.Type]any),
	}
}

// RegisterFields makes the fields of T available to GetField. A type can be
// registered once; cached field comparators would otherwise go stale.
func RegisterFields[T any](r *Registry, accessor FieldAccessor[T]) error {
	typ := reflect.TypeFor[T]()

	if accessor == nil {
		return fmt.Errorf("%w: field accessor for %v must not be nil", errors.ErrArgument, typ)
	}

	if !IsCompositeType(typ) {
		return fmt.Errorf("%w: %v is not a composite type", errors.ErrInvalidConfiguration, typ)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, found := r.fields[typ]; found {
		return fmt.Errorf("%w: fields of %v are already registered", errors.ErrInvalidConfiguration, typ)
	}

	r.fields[typ] = accessor

	return nil
}

// Get returns the cached direct comparator for T, building it on first use.
// See Direct for the errors.
func Get[T any](r *Registry) (*Comparator[T], error) {
	key := cacheKey{typ: reflect.TypeFor[T]()}

	return getOrInsert(r, key, modeDirect, func() (*Comparator[T], error) {
		return newDirect[T](r.opts)
	})
}

// GetField returns the cached comparator for the named field of T, building
// it on first use. The fields of T must have been registered with
// RegisterFields. See ForField for the errors.
func GetField[T any](r *Registry, name string) (*Comparator[T], error) {
	typ := reflect.TypeFor[T]()

	if name == "" {
		return nil, fmt.Errorf("%w: field name must not be empty", errors.ErrArgument)
	}

	r.mutex.RLock()
	registered, found := r.fields[typ]
	r.mutex.RUnlock()

	if !found {
		return nil, fmt.Errorf("%w: no fields registered for %v", errors.ErrInvalidConfiguration, typ)
	}

	accessor, ok := registered.(FieldAccessor[T])
	if !ok {
		return nil, fmt.Errorf("%w: fields registered for %v have type %T",
			errors.ErrInvalidConfiguration, typ, registered)
	}

	key := cacheKey{typ: typ, field: name}

	return getOrInsert(r, key, modeField, func() (*Comparator[T], error) {
		return newField(name, accessor, r.opts)
	})
}

// getOrInsert returns the cached comparator for key or builds one with
// factory. Failed builds are not cached.
func getOrInsert[T any](
	r *Registry, key cacheKey, mode string, factory func() (*Comparator[T], error),
) (*Comparator[T], error) {
	r.mutex.RLock()
	cached, found := r.entries[key]
	r.mutex.RUnlock()

	if found {
		r.hits.Inc()
		registryLookups.WithLabelValues("hit").Inc()

		return cached.(*Comparator[T]), nil //nolint:forcetypeassert
	}

	r.misses.Inc()
	registryLookups.WithLabelValues("miss").Inc()

	built, err := factory()
	if err != nil {
		comparatorBuildErrors.WithLabelValues(mode).Inc()
		r.opts.Logger.Warn("rejected comparator configuration",
			"type", key.typ.String(), "field", key.field, "error", err)

		return nil, err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if cached, found := r.entries[key]; found {
		return cached.(*Comparator[T]), nil //nolint:forcetypeassert
	}

	r.entries[key] = built

	comparatorsBuilt.WithLabelValues(mode).Inc()
	r.opts.Logger.Debug("built comparator",
		"type", key.typ.String(), "field", key.field, "kind", built.Kind().String(),
		"text_order", built.TextOrder().String())

	return built, nil
}

// Len returns the number of cached comparators.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.entries)
}

// Stats returns the lookup counters.
func (r *Registry) Stats() Stats {
	return Stats{
		Hits:   r.hits.Load(),
		Misses: r.misses.Load(),
	}
}
