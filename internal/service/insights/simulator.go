package insights

import (
	"math/rand"
	"time"

	"lucrofacil/internal/pricing"
	"lucrofacil/internal/service/product"
)

// SimulateSales generates plausible sale facts for products that have a sale
// price, one candidate per product per day over the period. Quantities vary
// with the supplied source, so a seeded source gives reproducible reports.
// Products without a sale price never sell.
func SimulateSales(products []*product.Product, period Period, now time.Time, rng *rand.Rand) []*Sale {
	sales := []*Sale{}
	days := period.Days()
	for _, p := range products {
		if p.SalePrice == nil || *p.SalePrice <= 0 {
			continue
		}
		unitPrice := *p.SalePrice
		unitProfit := unitPrice - pricing.TotalCost(p.PurchasePrice, p.AdditionalCosts)
		for day := 0; day < days; day++ {
			// roughly one selling day in three, one to five units
			if rng.Intn(3) != 0 {
				continue
			}
			quantity := 1 + rng.Intn(5)
			saleDate := now.AddDate(0, 0, -day)
			sales = append(sales, &Sale{
				ProductID:    p.ID,
				UserID:       p.UserID,
				Quantity:     quantity,
				UnitPrice:    unitPrice,
				TotalRevenue: unitPrice * float64(quantity),
				TotalProfit:  unitProfit * float64(quantity),
				SaleDate:     saleDate,
			})
		}
	}
	return sales
}
