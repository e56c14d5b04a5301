package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestResolver() Resolver {
	r := NewResolver()
	r.RegisterItem("1", "AK-47 | Redline")
	r.RegisterItem("2", "AWP | Asiimov")
	r.RegisterItem("3", "M4A4 | Howl")
	r.RegisterItem("4", "AK-47 | Vulcan")
	return r
}

func TestResolver_Resolve(t *testing.T) {
	r := newTestResolver()

	id, ok := r.Resolve("AWP | Asiimov")
	assert.True(t, ok)
	assert.Equal(t, "2", id)

	_, ok = r.Resolve("awp | asiimov")
	assert.False(t, ok, "resolution must be exact")

	_, ok = r.Resolve("AWP | Asiimo")
	assert.False(t, ok)
}

func TestResolver_RegisterItem(t *testing.T) {
	t.Run("first registration wins", func(t *testing.T) {
		r := NewResolver()
		r.RegisterItem("1", "Dupe")
		r.RegisterItem("2", "Dupe")

		id, ok := r.Resolve("Dupe")
		assert.True(t, ok)
		assert.Equal(t, "1", id)
		assert.Equal(t, []string{"1"}, r.Search("dupe"))
	})

	t.Run("empty names are ignored", func(t *testing.T) {
		r := NewResolver()
		r.RegisterItem("1", "")
		_, ok := r.Resolve("")
		assert.False(t, ok)
	})
}

func TestResolver_Search(t *testing.T) {
	r := newTestResolver()

	assert.Equal(t, []string{"1", "4"}, r.Search("ak-47"))
	assert.Equal(t, []string{"3"}, r.Search("HOWL"))
	assert.Empty(t, r.Search("karambit"))
	assert.Equal(t, []string{"1", "2", "3", "4"}, r.Search(""), "empty query returns everything")
}

func TestResolver_Suggest(t *testing.T) {
	r := newTestResolver()

	t.Run("close misspelling", func(t *testing.T) {
		got := r.Suggest("AWP | Asimov", DefaultSuggestionLimit)
		assert.Equal(t, []string{"AWP | Asiimov"}, got)
	})

	t.Run("case mismatch ranks first", func(t *testing.T) {
		got := r.Suggest("m4a4 | howl", DefaultSuggestionLimit)
		assert.Equal(t, "M4A4 | Howl", got[0])
	})

	t.Run("nothing close", func(t *testing.T) {
		assert.Empty(t, r.Suggest("Desert Eagle | Blaze", DefaultSuggestionLimit))
	})

	t.Run("short input", func(t *testing.T) {
		assert.Nil(t, r.Suggest("AK", DefaultSuggestionLimit))
	})

	t.Run("limit applies", func(t *testing.T) {
		got := r.Suggest("AK-47 | Redlin", 1)
		assert.Len(t, got, 1)
		assert.Equal(t, "AK-47 | Redline", got[0])
	})

	t.Run("zero limit", func(t *testing.T) {
		assert.Nil(t, r.Suggest("AWP | Asimov", 0))
	})
}
