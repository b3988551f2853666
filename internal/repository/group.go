package repository

import (
	"sort"
	"strconv"
)

// parseID converts a search keyword into a numeric id for equality
// matching. Non-numeric keywords return 0, which no row carries.
func parseID(keyword string) uint64 {
	id, err := strconv.ParseUint(keyword, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// groupCustomerRows folds the flat joined row stream into one record per
// customer. Grouping is keyed on customer id rather than row adjacency,
// so out-of-order input cannot fragment a customer into multiple entries.
// Customers come back ordered by id and each history sorted by rental
// date ascending; the "YYYY-MM-DD HH:MM:SS" format sorts correctly as a
// plain string.
func groupCustomerRows(rows []customerRentalRow) []CustomerWithHistory {
	byID := make(map[uint64]*CustomerWithHistory, len(rows))
	for _, row := range rows {
		c, ok := byID[row.CustomerID]
		if !ok {
			c = &CustomerWithHistory{
				CustomerID:    row.CustomerID,
				FirstName:     row.FirstName,
				LastName:      row.LastName,
				Email:         row.Email,
				RentalHistory: make([]RentalHistoryEntry, 0, 8),
			}
			byID[row.CustomerID] = c
		}
		c.RentalHistory = append(c.RentalHistory, RentalHistoryEntry{
			FilmID:     row.FilmID,
			Title:      row.Title,
			RentalDate: row.RentalDate,
			ReturnDate: row.ReturnDate,
		})
	}

	out := make([]CustomerWithHistory, 0, len(byID))
	for _, c := range byID {
		sort.SliceStable(c.RentalHistory, func(i, j int) bool {
			return c.RentalHistory[i].RentalDate < c.RentalHistory[j].RentalDate
		})
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out
}
