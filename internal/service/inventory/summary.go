package inventory

// Summary aggregates a slice of movements. Balance is in minus out and can
// go negative over a window that starts mid-history.
type Summary struct {
	TotalIn    int      `json:"total_in"`
	TotalOut   int      `json:"total_out"`
	Balance    int      `json:"balance"`
	Movements  int      `json:"movements"`
	ProductIDs []string `json:"product_ids"`
}

// Summarize folds movements into totals. Product ids keep first-seen order.
func Summarize(movements []*StockMovement) Summary {
	summary := Summary{ProductIDs: []string{}}
	seen := map[string]bool{}
	for _, m := range movements {
		summary.Movements++
		if m.Type == MovementEntrada {
			summary.TotalIn += m.Quantity
		} else {
			summary.TotalOut += m.Quantity
		}
		if !seen[m.ProductID] {
			seen[m.ProductID] = true
			summary.ProductIDs = append(summary.ProductIDs, m.ProductID)
		}
	}
	summary.Balance = summary.TotalIn - summary.TotalOut
	return summary
}
