// Package insights turns sale facts into a per-product performance report:
// aggregates, margin health, alerts, and a short pt-BR narrative. Everything
// in this file is pure; the service layer decides where the sales come from.
package insights

import (
	"fmt"
	"sort"

	"lucrofacil/internal/pricing"
)

// Period is a trailing analysis window
type Period string

const (
	Period7Days  Period = "7days"
	Period30Days Period = "30days"
	Period90Days Period = "90days"
)

// ParsePeriod validates a period string, defaulting to 30 days when empty
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case Period7Days, Period30Days, Period90Days:
		return Period(s), nil
	case "":
		return Period30Days, nil
	default:
		return "", fmt.Errorf("unknown period %q", s)
	}
}

// Days returns the window length
func (p Period) Days() int {
	switch p {
	case Period7Days:
		return 7
	case Period90Days:
		return 90
	default:
		return 30
	}
}

// MarginStatus classifies a product's margin health
type MarginStatus string

const (
	MarginDanger  MarginStatus = "danger"
	MarginWarning MarginStatus = "warning"
	MarginGood    MarginStatus = "good"
)

// ProductInsight is the aggregated performance of one product over a period
type ProductInsight struct {
	ProductID   string       `json:"product_id"`
	ProductName string       `json:"product_name"`
	UnitsSold   int          `json:"units_sold"`
	Revenue     float64      `json:"revenue"`
	Profit      float64      `json:"profit"`
	Margin      float64      `json:"margin"`
	Status      MarginStatus `json:"status"`
	Position    int          `json:"position,omitempty"`
}

// InsightSummary rolls the per-product insights up to one view. AverageMargin
// is the plain mean of per-product margins, not revenue-weighted.
type InsightSummary struct {
	TotalRevenue   float64         `json:"total_revenue"`
	TotalProfit    float64         `json:"total_profit"`
	TotalUnits     int             `json:"total_units"`
	AverageMargin  float64         `json:"average_margin"`
	BestSelling    *ProductInsight `json:"best_selling"`
	MostProfitable *ProductInsight `json:"most_profitable"`
	LowestMargin   *ProductInsight `json:"lowest_margin"`
}

// Alert flags a product whose margin needs attention
type Alert struct {
	Severity    MarginStatus `json:"severity"`
	ProductID   string       `json:"product_id"`
	ProductName string       `json:"product_name"`
	Message     string       `json:"message"`
}

// NamedProduct is the minimal product view the engine needs
type NamedProduct struct {
	ID   string
	Name string
}

// marginStatus classifies a margin percentage against the warning threshold
func marginStatus(margin, threshold float64) MarginStatus {
	if margin < 0 {
		return MarginDanger
	}
	if margin < threshold {
		return MarginWarning
	}
	return MarginGood
}

// Aggregate folds sales into one insight per product, keeping product order.
// Products with no sales in the window are left out of the report entirely.
func Aggregate(products []NamedProduct, sales []*Sale, threshold float64) []ProductInsight {
	index := map[string]int{}
	order := make([]ProductInsight, 0, len(products))
	for _, p := range products {
		order = append(order, ProductInsight{ProductID: p.ID, ProductName: p.Name})
		index[p.ID] = len(order) - 1
	}

	for _, sale := range sales {
		i, ok := index[sale.ProductID]
		if !ok {
			continue
		}
		order[i].UnitsSold += sale.Quantity
		order[i].Revenue += sale.TotalRevenue
		order[i].Profit += sale.TotalProfit
	}

	insights := make([]ProductInsight, 0, len(order))
	for _, insight := range order {
		if insight.UnitsSold == 0 {
			continue
		}
		if insight.Revenue > 0 {
			insight.Margin = insight.Profit / insight.Revenue * 100
		}
		insight.Status = marginStatus(insight.Margin, threshold)
		insights = append(insights, insight)
	}
	return insights
}

// Summarize rolls insights up. Extremal picks keep the first product on
// ties, so aggregation order decides. All extremals are nil when nothing
// sold.
func Summarize(insights []ProductInsight) InsightSummary {
	summary := InsightSummary{}
	marginSum := 0.0
	for i := range insights {
		insight := &insights[i]
		summary.TotalRevenue += insight.Revenue
		summary.TotalProfit += insight.Profit
		summary.TotalUnits += insight.UnitsSold
		marginSum += insight.Margin

		if summary.BestSelling == nil || insight.UnitsSold > summary.BestSelling.UnitsSold {
			summary.BestSelling = insight
		}
		if summary.MostProfitable == nil || insight.Profit > summary.MostProfitable.Profit {
			summary.MostProfitable = insight
		}
		if summary.LowestMargin == nil || insight.Margin < summary.LowestMargin.Margin {
			summary.LowestMargin = insight
		}
	}
	if len(insights) > 0 {
		summary.AverageMargin = marginSum / float64(len(insights))
	}
	return summary
}

// BuildAlerts emits at most one alert per product. A negative profit always
// reads as a loss alert, even when a zero-revenue period forces the margin
// to zero.
func BuildAlerts(insights []ProductInsight) []Alert {
	alerts := []Alert{}
	for _, insight := range insights {
		switch {
		case insight.Profit < 0:
			alerts = append(alerts, Alert{
				Severity:    MarginDanger,
				ProductID:   insight.ProductID,
				ProductName: insight.ProductName,
				Message: fmt.Sprintf("%s está dando prejuízo: margem de %s no período (%s de perda)",
					insight.ProductName,
					pricing.FormatPercentage(insight.Margin),
					pricing.FormatCurrency(-insight.Profit)),
			})
		case insight.Status == MarginWarning:
			alerts = append(alerts, Alert{
				Severity:    MarginWarning,
				ProductID:   insight.ProductID,
				ProductName: insight.ProductName,
				Message: fmt.Sprintf("%s está com margem baixa: %s no período",
					insight.ProductName,
					pricing.FormatPercentage(insight.Margin)),
			})
		}
	}
	return alerts
}

// RankByProfit returns insights ordered by profit, highest first, with a
// 1-based position filled in. Ties keep the incoming order.
func RankByProfit(insights []ProductInsight) []ProductInsight {
	ranked := make([]ProductInsight, len(insights))
	copy(ranked, insights)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Profit > ranked[j].Profit
	})
	for i := range ranked {
		ranked[i].Position = i + 1
	}
	return ranked
}

// Narrative builds the short pt-BR summary shown at the top of the report
func Narrative(period Period, summary InsightSummary) string {
	if summary.TotalUnits == 0 {
		return fmt.Sprintf("Nenhuma venda registrada nos últimos %d dias.", period.Days())
	}
	text := fmt.Sprintf("Nos últimos %d dias você vendeu %d unidades, faturou %s e lucrou %s (margem média de %s).",
		period.Days(),
		summary.TotalUnits,
		pricing.FormatCurrency(summary.TotalRevenue),
		pricing.FormatCurrency(summary.TotalProfit),
		pricing.FormatPercentage(summary.AverageMargin))
	if summary.BestSelling != nil && summary.MostProfitable != nil {
		if summary.BestSelling.ProductID == summary.MostProfitable.ProductID {
			text += fmt.Sprintf(" %s foi o destaque em vendas e em lucro.", summary.BestSelling.ProductName)
		} else {
			text += fmt.Sprintf(" %s foi o mais vendido e %s o mais lucrativo.",
				summary.BestSelling.ProductName, summary.MostProfitable.ProductName)
		}
	}
	if summary.LowestMargin != nil && summary.LowestMargin.Status != MarginGood {
		text += fmt.Sprintf(" Atenção: %s tem a menor margem (%s).",
			summary.LowestMargin.ProductName,
			pricing.FormatPercentage(summary.LowestMargin.Margin))
	}
	return text
}
