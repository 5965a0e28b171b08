package engine

import (
	"fmt"
	"math/rand"

	"advselect/internal/domain"
)

var testGroups = []string{"Frontend", "Backend", "DevOps", "Database"}

func makeCatalog(n int) []domain.Item {
	items := make([]domain.Item, 0, n)
	for i := 1; i <= n; i++ {
		group := testGroups[i%len(testGroups)]
		items = append(items, domain.Item{
			ID:       fmt.Sprintf("item-%d", i),
			Label:    fmt.Sprintf("%s - option %d", group, i),
			Group:    group,
			Keywords: []string{group, fmt.Sprintf("option-%d", i), fmt.Sprintf("skill-%d", i%20)},
		})
	}
	return items
}

func randomCatalog(r *rand.Rand) []domain.Item {
	n := r.Intn(60)
	items := make([]domain.Item, 0, n)
	for i := 0; i < n; i++ {
		group := fmt.Sprintf("G%d", r.Intn(5))
		item := domain.Item{
			ID:    fmt.Sprintf("id-%d", i),
			Label: fmt.Sprintf("Label %c%d", 'A'+rune(r.Intn(26)), r.Intn(100)),
			Group: group,
		}
		if r.Intn(2) == 0 {
			item.Keywords = []string{fmt.Sprintf("kw%d", r.Intn(10)), "Shared"}
		}
		items = append(items, item)
	}
	return items
}

func rowKeys(rows []domain.Row) []string {
	keys := make([]string, len(rows))
	for i, row := range rows {
		keys[i] = row.Key()
	}
	return keys
}
