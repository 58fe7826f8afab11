package sales

import (
	"sort"

	"github.com/google/uuid"
)

// RankingEntry is one leaderboard row: a store's monthly aggregate plus the
// 1-based rank assigned by sorting all entries on total sales.
type RankingEntry struct {
	StoreID   uuid.UUID `json:"store_id"`
	StoreName string    `json:"store_name"`
	MonthlyAggregate
	Rank int `json:"rank"`
}

// RankStores orders entries by total sales descending and assigns
// sequential 1-based ranks. The sort is stable, so stores with equal sales
// keep their input order and still receive distinct ranks; there is no tie
// compression. The top three ranks get decorative treatment in the UI,
// which is the caller's concern.
func RankStores(entries []RankingEntry) []RankingEntry {
	ranked := make([]RankingEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSales > ranked[j].TotalSales
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
