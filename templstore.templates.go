package templstore

import (
	"go.uber.org/zap"
)

// Templates caches the parsed TemplateMap of one backing store and re-parses
// only when the store reports a change.
//
// The cache invariant: after any successful Refresh the map reflects the
// most recent successful parse; after a failing Refresh the previous map is
// retained unchanged, so stale-but-valid data is always preferred over no
// data. The map is swapped wholesale, never patched.
type Templates struct {
	store     TemplateStore
	templates TemplateMap
	logger    *zap.Logger
}

// NewTemplates creates a cache over store and performs a mandatory first
// refresh, so a Templates instance is never observable in an unparsed state.
// Construction fails if that first load fails.
func NewTemplates(store TemplateStore, opts ...Option) (*Templates, error) {
	config := newOptionConfig(opts)
	t := &Templates{
		store:     store,
		templates: TemplateMap{},
		logger:    config.logger,
	}
	if err := t.Refresh(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustNewTemplates creates a Templates cache, panicking if the first load
// fails.
func MustNewTemplates(store TemplateStore, opts ...Option) *Templates {
	t, err := NewTemplates(store, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Refresh re-parses the backing store when it reports a change. On success
// the cached map is replaced atomically; on failure the error propagates
// and the previous map stays untouched.
func (t *Templates) Refresh() error {
	if !t.store.Changed() {
		return nil
	}

	templates, err := t.store.ParseMap()
	if err != nil {
		return err
	}
	t.templates = templates
	t.logger.Debug(LogMsgRefreshed, zap.Int(LogFieldNamespaces, len(templates)))
	return nil
}

// Get retrieves the Mapping for a namespace from the current cache. It is a
// pure read and never triggers a refresh.
func (t *Templates) Get(namespace string) (Mapping, bool) {
	mapping, ok := t.templates[namespace]
	return mapping, ok
}

// Store returns the backing store.
func (t *Templates) Store() TemplateStore {
	return t.store
}
