package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCollections(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	for _, typ := range AllTypes {
		assert.Greater(t, s.Count(typ, ""), 0, "collection %q should not be empty", typ)
	}
	assert.Equal(t, []string{"ear", "heart", "lung"}, s.Topics())
}

func TestFind(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	ex, err := s.Find(TypeQuestion, 101)
	require.NoError(t, err)
	assert.Equal(t, "heart", ex.Topic)
	require.NotNil(t, ex.Choice)
	assert.Equal(t, 3, ex.Choice.CorrectOption)

	_, err = s.Find(TypeQuestion, 9999)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = s.Find(Type("bogus"), 1)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFindByID(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	ex, err := s.FindByID(1001, AllTypes)
	require.NoError(t, err)
	assert.Equal(t, TypeSlider, ex.Type)

	_, err = s.FindByID(9999, AllTypes)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListEligible(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	eligible := s.ListEligible("Heart", []Type{TypeQuestion, TypeTrueFalse})
	require.NotEmpty(t, eligible)
	for _, ex := range eligible {
		assert.Equal(t, "heart", ex.Topic)
		assert.Contains(t, []Type{TypeQuestion, TypeTrueFalse}, ex.Type)
	}

	assert.Empty(t, s.ListEligible("spleen", AllTypes))
}

func TestValidateCollectionRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		raw  string
	}{
		{"missing correct_option", TypeQuestion, `{"questions":[{"id":1,"topic":"heart","prompt":{"en":"?"},"options":[{"en":"a"},{"en":"b"}]}]}`},
		{"bad matching mode", TypeMatching, `{"matching":[{"id":1,"topic":"heart","mode":"magnet","pairs":[{"a":{"en":"x"},"b":{"en":"y"}},{"a":{"en":"p"},"b":{"en":"q"}}]}]}`},
		{"region with too few points", TypeHotspot, `{"hotspots":[{"id":1,"topic":"heart","prompt":{"en":"?"},"regions":[{"name":"a","points":[{"x":0,"y":0}]}],"target":"a"}]}`},
		{"prompt without english", TypeOrdering, `{"ordering":[{"id":1,"topic":"ear","prompt":{"de":"?"},"items":[{"en":"a"},{"en":"b"}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, validateCollection(tt.typ, []byte(tt.raw)))
		})
	}
}

func TestLocalizedTextFallback(t *testing.T) {
	txt := LocalizedText{"en": "heart", "de": "Herz"}
	assert.Equal(t, "Herz", txt.Get("de"))
	assert.Equal(t, "heart", txt.Get("fr"))

	only := LocalizedText{"de": "Herz"}
	assert.Equal(t, "Herz", only.Get("en"))
	assert.Equal(t, "", LocalizedText{}.Get("en"))
}
