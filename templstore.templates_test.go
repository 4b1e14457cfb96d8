package templstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLoad wraps a LoadFunc with a call counter, so tests can observe
// whether a refresh actually re-parsed.
func countingLoad(load LoadFunc) (LoadFunc, *int) {
	calls := new(int)
	return func(text string) (TemplateMap, error) {
		*calls++
		return load(text)
	}, calls
}

func TestTemplates_New(t *testing.T) {
	t.Run("performs exactly one parse before becoming ready", func(t *testing.T) {
		load, calls := countingLoad(LoadJSON)
		store := NewMemoryStore(`{"greet":{"hello":"hi"}}`, load)

		templates, err := NewTemplates(store)
		require.NoError(t, err)
		assert.Equal(t, 1, *calls)

		mapping, ok := templates.Get("greet")
		require.True(t, ok)
		tmpl, _ := mapping.Get("hello")
		assert.Equal(t, "hi", tmpl)
	})

	t.Run("construction fails when the first load fails", func(t *testing.T) {
		_, err := NewTemplates(NewMemoryStore("not json", LoadJSON))
		require.Error(t, err)
		assert.True(t, IsDeserializeError(err))
	})

	t.Run("null store yields an empty cache", func(t *testing.T) {
		// NullStore reports Changed false, so the mandatory first refresh
		// is a no-op and yields an empty, valid cache.
		templates, err := NewTemplates(NewNullStore())
		require.NoError(t, err)
		_, ok := templates.Get("anything")
		assert.False(t, ok)
	})
}

func TestTemplates_Refresh(t *testing.T) {
	t.Run("no intervening change means no re-parse", func(t *testing.T) {
		load, calls := countingLoad(LoadJSON)
		store := NewMemoryStore(`{"greet":{"hello":"hi"}}`, load)
		templates, err := NewTemplates(store)
		require.NoError(t, err)

		require.NoError(t, templates.Refresh())
		require.NoError(t, templates.Refresh())
		assert.Equal(t, 1, *calls)
	})

	t.Run("re-parses after an update", func(t *testing.T) {
		load, calls := countingLoad(LoadJSON)
		store := NewMemoryStore(`{"greet":{"hello":"hi"}}`, load)
		templates, err := NewTemplates(store)
		require.NoError(t, err)

		store.Update(`{"greet":{"hello":"hey"}}`)
		require.NoError(t, templates.Refresh())
		assert.Equal(t, 2, *calls)

		mapping, _ := templates.Get("greet")
		tmpl, _ := mapping.Get("hello")
		assert.Equal(t, "hey", tmpl)
	})

	t.Run("failing refresh retains the previous map", func(t *testing.T) {
		store := NewMemoryStore(`{"greet":{"hello":"hi"}}`, LoadJSON)
		templates, err := NewTemplates(store)
		require.NoError(t, err)

		store.Update("not json")
		err = templates.Refresh()
		require.Error(t, err)

		mapping, ok := templates.Get("greet")
		require.True(t, ok)
		tmpl, _ := mapping.Get("hello")
		assert.Equal(t, "hi", tmpl)
	})

	t.Run("map is swapped wholesale", func(t *testing.T) {
		store := NewMemoryStore(`{"a":{"x":"1"},"b":{"y":"2"}}`, LoadJSON)
		templates, err := NewTemplates(store)
		require.NoError(t, err)

		store.Update(`{"a":{"x":"9"}}`)
		require.NoError(t, templates.Refresh())

		_, ok := templates.Get("b")
		assert.False(t, ok, "stale namespace must not survive a successful refresh")
	})
}

func TestTemplates_Get(t *testing.T) {
	store := NewMemoryStore(`{"greet":{"hello":"hi"}}`, LoadJSON)
	templates, err := NewTemplates(store)
	require.NoError(t, err)

	t.Run("does not trigger a refresh", func(t *testing.T) {
		store.Update(`{"greet":{"hello":"hey"}}`)

		mapping, ok := templates.Get("greet")
		require.True(t, ok)
		tmpl, _ := mapping.Get("hello")
		assert.Equal(t, "hi", tmpl, "Get is a pure read against the cache")
	})

	t.Run("absent namespace", func(t *testing.T) {
		_, ok := templates.Get("missing")
		assert.False(t, ok)
	})
}

func TestMustNewTemplates(t *testing.T) {
	assert.Panics(t, func() {
		MustNewTemplates(NewMemoryStore("not json", LoadJSON))
	})
	assert.NotPanics(t, func() {
		MustNewTemplates(NewMemoryStore(`{}`, LoadJSON))
	})
}
