package templstore

import (
	"go.uber.org/zap"
)

// Resolver is the facade most callers want: one call that refreshes
// from the backing store and looks a template up.
//
// A refresh failure is logged at warn level and swallowed - a templating
// subsystem failing to hot-reload must never crash the feature using the
// template, it degrades to stale or absent text. "Namespace absent", "name
// absent" and "store never produced data" are indistinguishable to the
// caller: a template that is not configured yet is not an error condition.
type Resolver struct {
	templates *Templates
	logger    *zap.Logger
}

// NewResolver creates a resolver over store, performing the mandatory first
// load. Construction fails if that load fails.
func NewResolver(store TemplateStore, opts ...Option) (*Resolver, error) {
	config := newOptionConfig(opts)
	templates, err := NewTemplates(store, opts...)
	if err != nil {
		return nil, err
	}
	return &Resolver{
		templates: templates,
		logger:    config.logger,
	}, nil
}

// MustNewResolver creates a resolver, panicking if the first load fails.
func MustNewResolver(store TemplateStore, opts ...Option) *Resolver {
	resolver, err := NewResolver(store, opts...)
	if err != nil {
		panic(err)
	}
	return resolver
}

// Resolve refreshes from the backing store, then looks up the template
// string for namespace and name. The returned string is the raw template,
// ${placeholder} markers intact.
func (r *Resolver) Resolve(namespace, name string) (string, bool) {
	if err := r.templates.Refresh(); err != nil {
		r.logger.Warn(LogMsgRefreshFailed,
			zap.String(LogFieldNamespace, namespace),
			zap.String(LogFieldName, name),
			zap.Error(err))
	}

	mapping, ok := r.templates.Get(namespace)
	if !ok {
		return "", false
	}
	return mapping.Get(name)
}

// ResolveTemplate resolves the template string for t's namespace and variant
// and applies t's arguments to it in one call. The second return is false
// when no template is configured; an application failure returns an error.
func (r *Resolver) ResolveTemplate(t Template) (string, bool, error) {
	tmpl, ok := r.Resolve(t.Namespace(), t.Variant())
	if !ok {
		return "", false, nil
	}
	out, err := t.Apply(tmpl)
	if err != nil {
		return "", true, err
	}
	return out, true, nil
}

// Templates returns the underlying cache.
func (r *Resolver) Templates() *Templates {
	return r.templates
}

// Store returns the backing store.
func (r *Resolver) Store() TemplateStore {
	return r.templates.Store()
}
