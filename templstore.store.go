package templstore

import (
	"sync"
)

// TemplateStore is the interface for pluggable template backings.
//
// The contract has two operations that the Templates cache treats as one
// atomic logical step: a Changed probe followed, when it reports true, by a
// ParseMap fetch. Changed may update internal last-seen bookkeeping, so it
// must not be called more than once per refresh cycle - interleaving a probe
// from one caller with a fetch from another can miss or double-apply a
// change. Instances are single-owner; see the package documentation for the
// mutation discipline.
type TemplateStore interface {
	// Changed reports whether the backing source has observably changed
	// since the last acknowledged change. The first call after construction
	// always returns true so the initial load runs.
	Changed() bool

	// ParseMap reads the backing source and deserializes it into a
	// TemplateMap. It fails with an I/O error when the source is
	// unreachable or a deserialization error when the content is malformed.
	// Safe to call even when Changed returned false.
	ParseMap() (TemplateMap, error)
}

// OptionalStore is a pass-through wrapper around a store that may be absent.
// A nil inner store behaves like a NullStore, so "no store configured" and
// "a store" flow through the same capability without nil checks at every
// call site.
type OptionalStore struct {
	inner TemplateStore
}

// NewOptionalStore wraps inner, which may be nil.
func NewOptionalStore(inner TemplateStore) *OptionalStore {
	return &OptionalStore{inner: inner}
}

// Changed forwards to the inner store; false when absent.
func (s *OptionalStore) Changed() bool {
	if s.inner == nil {
		return false
	}
	return s.inner.Changed()
}

// ParseMap forwards to the inner store; an I/O error when absent.
func (s *OptionalStore) ParseMap() (TemplateMap, error) {
	if s.inner == nil {
		return nil, NewIoError(ErrMsgNoStore, nil)
	}
	return s.inner.ParseMap()
}

// StoreDriver is a factory for creating stores from a configuration string.
// Drivers register themselves during init().
type StoreDriver interface {
	// Open creates a store from the driver-specific source string (a file
	// path, inline template text, a postgres DSN, ...) and a load function.
	// Drivers over pre-structured backings ignore the load function.
	Open(source string, load LoadFunc) (TemplateStore, error)
}

// Store driver registry
var (
	storeDriversMu sync.RWMutex
	storeDrivers   = make(map[string]StoreDriver)
)

// RegisterStoreDriver registers a store driver by name.
// This is typically called from a driver's init() function.
// Panics if a driver with the same name is already registered.
func RegisterStoreDriver(name string, driver StoreDriver) {
	storeDriversMu.Lock()
	defer storeDriversMu.Unlock()

	if driver == nil {
		panic(ErrMsgNilStoreDriver)
	}
	if _, exists := storeDrivers[name]; exists {
		panic(ErrMsgDriverAlreadyRegistered + ": " + name)
	}
	storeDrivers[name] = driver
}

// OpenStore opens a store using the named driver.
// The source string format is driver-specific.
//
// Example:
//
//	store, err := templstore.OpenStore("file", "/etc/app/templates.yaml", templstore.LoadYAML)
//	store, err := templstore.OpenStore("memory", `{"greet":{"hello":"hi"}}`, templstore.LoadJSON)
func OpenStore(driverName, source string, load LoadFunc) (TemplateStore, error) {
	storeDriversMu.RLock()
	driver, ok := storeDrivers[driverName]
	storeDriversMu.RUnlock()

	if !ok {
		return nil, NewDriverNotFoundError(driverName)
	}

	return driver.Open(source, load)
}

// ListStoreDrivers returns the names of all registered store drivers.
func ListStoreDrivers() []string {
	storeDriversMu.RLock()
	defer storeDriversMu.RUnlock()

	names := make([]string, 0, len(storeDrivers))
	for name := range storeDrivers {
		names = append(names, name)
	}
	return names
}
