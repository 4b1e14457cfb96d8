package templstore

import (
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestResolver_Resolve(t *testing.T) {
	t.Run("returns the raw template string", func(t *testing.T) {
		store := NewMemoryStore(`{"greet":{"hello":"hi ${name}"}}`, LoadJSON)
		resolver, err := NewResolver(store)
		require.NoError(t, err)

		tmpl, ok := resolver.Resolve("greet", "hello")
		assert.True(t, ok)
		assert.Equal(t, "hi ${name}", tmpl, "substitution is not this layer's job")
	})

	t.Run("unknown namespace and name are no result, never an error", func(t *testing.T) {
		store := NewMemoryStore(`{"greet":{"hello":"hi"}}`, LoadJSON)
		resolver, err := NewResolver(store)
		require.NoError(t, err)

		_, ok := resolver.Resolve("missing_ns", "missing_name")
		assert.False(t, ok)

		_, ok = resolver.Resolve("greet", "missing_name")
		assert.False(t, ok)
	})

	t.Run("repeated calls do not re-parse without a change", func(t *testing.T) {
		load, calls := countingLoad(LoadJSON)
		store := NewMemoryStore(`{"greet":{"hello":"hi"}}`, load)
		resolver, err := NewResolver(store)
		require.NoError(t, err)

		for i := 0; i < 5; i++ {
			tmpl, ok := resolver.Resolve("greet", "hello")
			assert.True(t, ok)
			assert.Equal(t, "hi", tmpl)
		}
		assert.Equal(t, 1, *calls)
	})

	t.Run("sees updates on the next call", func(t *testing.T) {
		store := NewMemoryStore(`{"greet":{"hello":"hi"}}`, LoadJSON)
		resolver, err := NewResolver(store)
		require.NoError(t, err)

		store.Update(`{"greet":{"hello":"hey"}}`)
		tmpl, ok := resolver.Resolve("greet", "hello")
		assert.True(t, ok)
		assert.Equal(t, "hey", tmpl)
	})
}

func TestResolver_RefreshFailureSwallowed(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	store := NewMemoryStore(`{"greet":{"hello":"hi"}}`, LoadJSON)
	resolver, err := NewResolver(store, WithLogger(zap.New(core)))
	require.NoError(t, err)

	store.Update("not json")

	tmpl, ok := resolver.Resolve("greet", "hello")
	assert.True(t, ok, "stale data is served over no data")
	assert.Equal(t, "hi", tmpl)

	entries := logs.FilterMessage(LogMsgRefreshFailed).All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
}

func TestResolver_ConstructionFailure(t *testing.T) {
	_, err := NewResolver(NewMemoryStore("not json", LoadJSON))
	require.Error(t, err)
}

func TestResolver_ResolveTemplate(t *testing.T) {
	responses := NewVariantTable("response", "my_response")
	store := NewMemoryStore(`{"response":{"hello":"hello ${name}!"}}`, LoadJSON)
	resolver, err := NewResolver(store)
	require.NoError(t, err)

	t.Run("resolves and applies in one call", func(t *testing.T) {
		out, ok, err := resolver.ResolveTemplate(responses.Bind("hello", map[string]string{"name": "world"}))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "hello world!", out)
	})

	t.Run("unconfigured variant is no result", func(t *testing.T) {
		_, ok, err := resolver.ResolveTemplate(responses.Bind("bye", nil))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing argument is an application error", func(t *testing.T) {
		_, ok, err := resolver.ResolveTemplate(responses.Bind("hello", nil))
		require.Error(t, err)
		assert.True(t, ok)

		var customErr *cuserr.CustomError
		require.ErrorAs(t, err, &customErr)
		variable, found := customErr.GetMetadata(MetaKeyVar)
		assert.True(t, found)
		assert.Equal(t, "name", variable)
	})
}

func TestResolver_OverPartialStore(t *testing.T) {
	def := NewMemoryStore(`{"a":{"x":"1","y":"2"}}`, LoadJSON)
	partial := NewMemoryStore(`{"a":{"x":"9"}}`, LoadJSON)
	resolver, err := NewResolver(NewPartialStore(def, partial))
	require.NoError(t, err)

	x, ok := resolver.Resolve("a", "x")
	require.True(t, ok)
	assert.Equal(t, "9", x)

	y, ok := resolver.Resolve("a", "y")
	require.True(t, ok)
	assert.Equal(t, "2", y)

	t.Run("partial update flows through", func(t *testing.T) {
		partial.Update(`{"a":{"y":"7"}}`)

		x, ok := resolver.Resolve("a", "x")
		require.True(t, ok)
		assert.Equal(t, "1", x, "dropped override falls back to the default")

		y, ok := resolver.Resolve("a", "y")
		require.True(t, ok)
		assert.Equal(t, "7", y)
	})
}
