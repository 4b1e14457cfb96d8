package templstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapping_Get(t *testing.T) {
	m := Mapping{"hello": "hi ${name}!"}

	t.Run("present key", func(t *testing.T) {
		tmpl, ok := m.Get("hello")
		assert.True(t, ok)
		assert.Equal(t, "hi ${name}!", tmpl)
	})

	t.Run("absent key", func(t *testing.T) {
		tmpl, ok := m.Get("bye")
		assert.False(t, ok)
		assert.Empty(t, tmpl)
	})
}

func TestTemplateMap_Get(t *testing.T) {
	tm := TemplateMap{"greet": Mapping{"hello": "hi"}}

	mapping, ok := tm.Get("greet")
	assert.True(t, ok)
	assert.Equal(t, 1, mapping.Len())

	_, ok = tm.Get("missing")
	assert.False(t, ok)
}

func TestTemplateMap_Entries(t *testing.T) {
	tm := TemplateMap{
		"a": Mapping{"x": "1", "y": "2"},
		"b": Mapping{"z": "3"},
	}
	assert.Equal(t, 3, tm.Entries())
	assert.Equal(t, 0, TemplateMap{}.Entries())
}

func TestTemplateMap_Overlay(t *testing.T) {
	t.Run("overriding key wins, siblings survive", func(t *testing.T) {
		base := TemplateMap{"a": Mapping{"x": "1", "y": "2"}}
		base.overlay(TemplateMap{"a": Mapping{"x": "9"}})

		assert.Equal(t, TemplateMap{"a": Mapping{"x": "9", "y": "2"}}, base)
	})

	t.Run("new namespace is added", func(t *testing.T) {
		base := TemplateMap{"a": Mapping{"x": "1"}}
		base.overlay(TemplateMap{"b": Mapping{"z": "3"}})

		assert.Equal(t, 2, len(base))
		assert.Equal(t, Mapping{"z": "3"}, base["b"])
	})

	t.Run("empty overlay is a no-op", func(t *testing.T) {
		base := TemplateMap{"a": Mapping{"x": "1"}}
		base.overlay(nil)
		base.overlay(TemplateMap{})

		assert.Equal(t, TemplateMap{"a": Mapping{"x": "1"}}, base)
	})
}
