package insights

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"lucrofacil/internal/service/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sale(productID string, quantity int, revenue, profit float64) *Sale {
	return &Sale{
		ProductID:    productID,
		Quantity:     quantity,
		TotalRevenue: revenue,
		TotalProfit:  profit,
	}
}

func TestParsePeriod(t *testing.T) {
	period, err := ParsePeriod("7days")
	require.NoError(t, err)
	assert.Equal(t, Period7Days, period)
	assert.Equal(t, 7, period.Days())

	period, err = ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, Period30Days, period)

	_, err = ParsePeriod("1year")
	assert.Error(t, err)
}

func TestAggregateExcludesProductsWithoutSales(t *testing.T) {
	products := []NamedProduct{
		{ID: "a", Name: "Bolo"},
		{ID: "b", Name: "Torta"},
	}
	sales := []*Sale{sale("a", 3, 90, 30)}

	insights := Aggregate(products, sales, 15)
	require.Len(t, insights, 1)
	assert.Equal(t, "a", insights[0].ProductID)
	assert.Equal(t, 3, insights[0].UnitsSold)
	assert.InDelta(t, 33.333, insights[0].Margin, 0.001)
	assert.Equal(t, MarginGood, insights[0].Status)
}

func TestAggregateIgnoresSalesOfUnknownProducts(t *testing.T) {
	products := []NamedProduct{{ID: "a", Name: "Bolo"}}
	sales := []*Sale{sale("ghost", 3, 90, 30)}

	assert.Empty(t, Aggregate(products, sales, 15))
}

func TestAggregateMarginStatus(t *testing.T) {
	products := []NamedProduct{
		{ID: "loss", Name: "Prejuízo"},
		{ID: "thin", Name: "Apertado"},
		{ID: "good", Name: "Saudável"},
	}
	sales := []*Sale{
		sale("loss", 2, 100, -10),
		sale("thin", 2, 100, 10),
		sale("good", 2, 100, 40),
	}

	insights := Aggregate(products, sales, 15)
	require.Len(t, insights, 3)
	assert.Equal(t, MarginDanger, insights[0].Status)
	assert.Equal(t, MarginWarning, insights[1].Status)
	assert.Equal(t, MarginGood, insights[2].Status)
}

func TestSummarizeExtremals(t *testing.T) {
	insights := []ProductInsight{
		{ProductID: "a", ProductName: "Bolo", UnitsSold: 10, Revenue: 500, Profit: 100, Margin: 20},
		{ProductID: "b", ProductName: "Torta", UnitsSold: 50, Revenue: 200, Profit: 40, Margin: 20},
		{ProductID: "c", ProductName: "Pudim", UnitsSold: 5, Revenue: 100, Profit: 5, Margin: 5},
	}

	summary := Summarize(insights)
	assert.Equal(t, 800.0, summary.TotalRevenue)
	assert.Equal(t, 145.0, summary.TotalProfit)
	assert.Equal(t, 65, summary.TotalUnits)
	// plain mean of per-product margins, not revenue-weighted
	assert.InDelta(t, 15.0, summary.AverageMargin, 1e-9)
	require.NotNil(t, summary.BestSelling)
	require.NotNil(t, summary.MostProfitable)
	require.NotNil(t, summary.LowestMargin)
	assert.Equal(t, "b", summary.BestSelling.ProductID)
	assert.Equal(t, "a", summary.MostProfitable.ProductID)
	assert.Equal(t, "c", summary.LowestMargin.ProductID)
}

func TestSummarizeTiesKeepFirst(t *testing.T) {
	insights := []ProductInsight{
		{ProductID: "a", UnitsSold: 5, Profit: 10},
		{ProductID: "b", UnitsSold: 5, Profit: 10},
	}

	summary := Summarize(insights)
	assert.Equal(t, "a", summary.BestSelling.ProductID)
	assert.Equal(t, "a", summary.MostProfitable.ProductID)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	assert.Nil(t, summary.BestSelling)
	assert.Nil(t, summary.MostProfitable)
	assert.Nil(t, summary.LowestMargin)
	assert.Zero(t, summary.AverageMargin)
}

func TestBuildAlerts(t *testing.T) {
	insights := []ProductInsight{
		{ProductID: "loss", ProductName: "Brigadeiro", Margin: -10, Profit: -25, Status: MarginDanger},
		{ProductID: "thin", ProductName: "Beijinho", Margin: 8.5, Profit: 12, Status: MarginWarning},
		{ProductID: "good", ProductName: "Bolo", Margin: 40, Profit: 100, Status: MarginGood},
	}

	alerts := BuildAlerts(insights)
	require.Len(t, alerts, 2)

	assert.Equal(t, MarginDanger, alerts[0].Severity)
	assert.Contains(t, alerts[0].Message, "Brigadeiro")
	assert.Contains(t, alerts[0].Message, "prejuízo")
	assert.Contains(t, alerts[0].Message, "R$")

	assert.Equal(t, MarginWarning, alerts[1].Severity)
	assert.Contains(t, alerts[1].Message, "8,5%")
}

func TestBuildAlertsZeroRevenueLoss(t *testing.T) {
	// refunds without sales: revenue zero forces the margin to zero, but a
	// negative profit must still read as a loss, not a low margin
	insights := []ProductInsight{
		{ProductID: "refunded", ProductName: "Brigadeiro", Margin: 0, Profit: -40, Status: MarginWarning},
	}

	alerts := BuildAlerts(insights)
	require.Len(t, alerts, 1)
	assert.Equal(t, MarginDanger, alerts[0].Severity)
	assert.Contains(t, alerts[0].Message, "prejuízo")
	assert.Contains(t, alerts[0].Message, "R$")
}

func TestRankByProfit(t *testing.T) {
	insights := []ProductInsight{
		{ProductID: "a", Profit: 10},
		{ProductID: "b", Profit: 30},
		{ProductID: "c", Profit: 20},
	}

	ranked := RankByProfit(insights)
	assert.Equal(t, "b", ranked[0].ProductID)
	assert.Equal(t, "c", ranked[1].ProductID)
	assert.Equal(t, "a", ranked[2].ProductID)
	assert.Equal(t, 1, ranked[0].Position)
	assert.Equal(t, 3, ranked[2].Position)
	// input untouched
	assert.Equal(t, "a", insights[0].ProductID)
}

func TestNarrative(t *testing.T) {
	empty := Narrative(Period30Days, InsightSummary{})
	assert.Contains(t, empty, "Nenhuma venda")
	assert.Contains(t, empty, "30 dias")

	best := ProductInsight{ProductID: "a", ProductName: "Bolo", UnitsSold: 10}
	top := ProductInsight{ProductID: "b", ProductName: "Torta", Profit: 100}
	text := Narrative(Period7Days, InsightSummary{
		TotalRevenue:   700,
		TotalProfit:    140,
		TotalUnits:     60,
		AverageMargin:  20,
		BestSelling:    &best,
		MostProfitable: &top,
	})
	assert.True(t, strings.Contains(text, "Bolo") && strings.Contains(text, "Torta"))
	assert.Contains(t, text, "7 dias")
	assert.Contains(t, text, "20,0%")
}

func TestSimulateSalesIsReproducible(t *testing.T) {
	price := 80.0
	products := []*product.Product{
		{ID: "a", UserID: "u", Name: "Bolo", PurchasePrice: 40, AdditionalCosts: 10, SalePrice: &price},
		{ID: "b", UserID: "u", Name: "Sem preço", PurchasePrice: 10},
	}
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	first := SimulateSales(products, Period30Days, now, rand.New(rand.NewSource(42)))
	second := SimulateSales(products, Period30Days, now, rand.New(rand.NewSource(42)))
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Quantity, second[i].Quantity)
		assert.Equal(t, first[i].SaleDate, second[i].SaleDate)
	}

	for _, s := range first {
		assert.Equal(t, "a", s.ProductID)
		assert.GreaterOrEqual(t, s.Quantity, 1)
		assert.LessOrEqual(t, s.Quantity, 5)
		assert.Equal(t, 80.0, s.UnitPrice)
		assert.InDelta(t, 30.0*float64(s.Quantity), s.TotalProfit, 1e-9)
		assert.False(t, s.SaleDate.After(now))
		assert.False(t, s.SaleDate.Before(now.AddDate(0, 0, -30)))
	}
}
