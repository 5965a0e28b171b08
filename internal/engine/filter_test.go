package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advselect/internal/domain"
)

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "", NormalizeQuery("   "))
	assert.Equal(t, "devops", NormalizeQuery("  DevOps \t"))
	assert.Equal(t, "a b", NormalizeQuery(" A B "))
}

func TestFilter(t *testing.T) {
	items := []domain.Item{
		{ID: "1", Label: "React", Group: "Frontend", Keywords: []string{"ui", "Hooks"}},
		{ID: "2", Label: "Postgres", Group: "Database"},
		{ID: "3", Label: "Kubernetes", Group: "DevOps", Keywords: []string{"k8s"}},
		{ID: "4", Label: "Redis", Group: "Database", Keywords: []string{"cache"}},
	}

	t.Run("EmptyQuery_ReturnsCatalog", func(t *testing.T) {
		result := Filter(items, "")
		require.Len(t, result, len(items))
		assert.Equal(t, items, result)
		assert.Same(t, &items[0], &result[0])
	})

	t.Run("WhitespaceQuery_IsEmpty", func(t *testing.T) {
		assert.Equal(t, items, Filter(items, "   "))
	})

	t.Run("LabelMatch_CaseInsensitive", func(t *testing.T) {
		result := Filter(items, "REACT")
		require.Len(t, result, 1)
		assert.Equal(t, "1", result[0].ID)
	})

	t.Run("GroupMatch", func(t *testing.T) {
		assert.Equal(t, []string{"2", "4"}, FilteredIDs(Filter(items, "data")))
	})

	t.Run("KeywordMatch", func(t *testing.T) {
		assert.Equal(t, []string{"1"}, FilteredIDs(Filter(items, "hooks")))
		assert.Equal(t, []string{"3"}, FilteredIDs(Filter(items, "K8S")))
	})

	t.Run("KeywordsAreSpaceJoined", func(t *testing.T) {
		assert.Equal(t, []string{"1"}, FilteredIDs(Filter(items, "ui hooks")))
	})

	t.Run("QueryIsTrimmed", func(t *testing.T) {
		assert.Equal(t, []string{"4"}, FilteredIDs(Filter(items, "  cache  ")))
	})

	t.Run("NoMatch_ReturnsEmpty", func(t *testing.T) {
		result := Filter(items, "nonexistent")
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("NoFuzzyMatching", func(t *testing.T) {
		assert.Empty(t, Filter(items, "rct"))
	})
}

func TestFilter_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	queries := []string{"", "label a", "g1", "kw3", "shared", "1", " L ", "zzz"}

	for i := 0; i < 200; i++ {
		catalog := randomCatalog(r)
		query := queries[r.Intn(len(queries))]
		result := Filter(catalog, query)
		q := NormalizeQuery(query)

		if q == "" {
			if diff := cmp.Diff(catalog, result); diff != "" {
				t.Fatalf("empty query changed catalog (-want +got):\n%s", diff)
			}
			continue
		}

		for _, item := range result {
			haystack := []string{
				strings.ToLower(item.Label),
				strings.ToLower(item.Group),
				strings.ToLower(strings.Join(item.Keywords, " ")),
			}
			found := false
			for _, h := range haystack {
				if strings.Contains(h, q) {
					found = true
					break
				}
			}
			require.True(t, found, "item %s does not contain %q", item.ID, q)
		}

		// result is a subsequence of the catalog in catalog order
		pos := 0
		for _, item := range result {
			for pos < len(catalog) && catalog[pos].ID != item.ID {
				pos++
			}
			require.Less(t, pos, len(catalog), "item %s out of order", item.ID)
			pos++
		}

		// and it keeps every match
		matches := 0
		for _, item := range catalog {
			if Matches(item, q) {
				matches++
			}
		}
		assert.Equal(t, matches, len(result))
	}
}
