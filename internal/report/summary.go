// Package report computes monthly spending summaries.
package report

import (
	"github.com/gagyebu/backend/internal/models"
)

// Entry is one line of a summary, a name with its total spending in won.
type Entry struct {
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

// Totals is an ordered list of summary entries.
type Totals []Entry

// Sum returns the combined total of all entries.
func (t Totals) Sum() int64 {
	var sum int64
	for _, entry := range t {
		sum += entry.Total
	}

	return sum
}

// ByCategory sums transaction amounts per category, in the order the
// categories first appear in the input. The entry totals always add up to
// the total of the input.
func ByCategory(transactions []models.Transaction) Totals {
	return totals(transactions, func(t models.Transaction) []string {
		return []string{t.Category}
	})
}

// ByTag sums transaction amounts per tag, in the order the tags first
// appear in the input. A transaction counts with its full amount towards
// every tag it carries, so tag totals can exceed the month total.
func ByTag(transactions []models.Transaction) Totals {
	return totals(transactions, func(t models.Transaction) []string {
		return t.Tags
	})
}

func totals(transactions []models.Transaction, keys func(models.Transaction) []string) Totals {
	index := make(map[string]int)
	result := make(Totals, 0)

	for _, transaction := range transactions {
		for _, key := range keys(transaction) {
			i, ok := index[key]
			if !ok {
				i = len(result)
				index[key] = i
				result = append(result, Entry{Name: key})
			}

			result[i].Total += transaction.Amount
		}
	}

	return result
}
