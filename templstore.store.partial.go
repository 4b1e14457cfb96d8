package templstore

import (
	"go.uber.org/zap"
)

// PartialStore layers a sparse override store over a required baseline
// store. Both legs are themselves TemplateStores, so partial stores nest
// arbitrarily. Caching lives one layer up in Templates; a PartialStore holds
// no map of its own.
//
// Merge policy: overrides apply at entry granularity. A partial source that
// defines a single key in a namespace overrides exactly that key - sibling
// keys from the default survive. A failing partial leg is absorbed as "no
// overrides"; a failing default leg is fatal, since the default is the only
// source guaranteed to exist.
type PartialStore struct {
	def     TemplateStore
	partial TemplateStore
	logger  *zap.Logger
}

// NewPartialStore creates a PartialStore from a default store and a partial
// (override) store.
func NewPartialStore(def, partial TemplateStore, opts ...Option) *PartialStore {
	config := newOptionConfig(opts)
	return &PartialStore{
		def:     def,
		partial: partial,
		logger:  config.logger,
	}
}

// NewPartialMemoryStore creates a PartialStore over two in-memory buffers.
func NewPartialMemoryStore(def, partial string, load LoadFunc, opts ...Option) *PartialStore {
	return NewPartialStore(NewMemoryStore(def, load), NewMemoryStore(partial, load), opts...)
}

// NewPartialFileStore creates a PartialStore over two file paths.
func NewPartialFileStore(defPath, partialPath string, load LoadFunc, opts ...Option) *PartialStore {
	return NewPartialStore(NewFileStore(defPath, load), NewFileStore(partialPath, load), opts...)
}

// Default returns the baseline store.
func (s *PartialStore) Default() TemplateStore {
	return s.def
}

// Partial returns the override store.
func (s *PartialStore) Partial() TemplateStore {
	return s.partial
}

// Changed polls the partial leg only. The default is assumed immutable for
// the process lifetime; a deployment that needs a mutable default tier must
// poll both legs and is outside this store's contract.
func (s *PartialStore) Changed() bool {
	return s.partial.Changed()
}

// ParseMap parses both legs and merges the partial entries over the default
// ones. A partial failure yields an empty override set; a default failure
// propagates.
func (s *PartialStore) ParseMap() (TemplateMap, error) {
	overrides, err := s.partial.ParseMap()
	if err != nil {
		s.logger.Debug(LogMsgPartialAbsorbed, zap.Error(err))
		overrides = nil
	}

	merged, err := s.def.ParseMap()
	if err != nil {
		return nil, err
	}

	defaults := merged.Entries()
	merged.overlay(overrides)
	s.logger.Debug(LogMsgMergedStores,
		zap.Int(LogFieldDefaults, defaults),
		zap.Int(LogFieldPartials, overrides.Entries()))
	return merged, nil
}
