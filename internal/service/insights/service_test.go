package insights

import (
	"testing"
	"time"

	"lucrofacil/internal/pkg/apperr"
	"lucrofacil/internal/pkg/config"
	"lucrofacil/internal/pkg/logger"
	"lucrofacil/internal/service/product"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeSaleRepository struct {
	sales []*Sale
}

func (f *fakeSaleRepository) Insert(sale *Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.NewString()
	}
	sale.CreatedAt = time.Now()
	stored := *sale
	f.sales = append(f.sales, &stored)
	return nil
}

func (f *fakeSaleRepository) ListByUserSince(userID string, since time.Time) ([]*Sale, error) {
	var result []*Sale
	for _, s := range f.sales {
		if s.UserID != userID {
			continue
		}
		if s.SaleDate.Format(dateLayout) < since.Format(dateLayout) {
			continue
		}
		copied := *s
		result = append(result, &copied)
	}
	return result, nil
}

type fakeProducts struct {
	products []*product.Product
}

func (f *fakeProducts) GetByID(id string) (*product.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProducts) ListByUser(userID string) ([]*product.Product, error) {
	var result []*product.Product
	for _, p := range f.products {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

const (
	testUserID = "5b1f8a34-0a0f-4d27-9f6a-111111111111"
	productA   = "5b1f8a34-0a0f-4d27-9f6a-aaaaaaaaaaaa"
	productB   = "5b1f8a34-0a0f-4d27-9f6a-bbbbbbbbbbbb"
)

func newTestService(t *testing.T) (*InsightsService, *fakeSaleRepository) {
	t.Helper()
	price := 80.0
	cfg := &config.Config{
		Insights: config.InsightsConfig{MarginThreshold: 15},
	}
	repo := &fakeSaleRepository{}
	products := &fakeProducts{products: []*product.Product{
		{ID: productA, UserID: testUserID, Name: "Bolo", PurchasePrice: 40, AdditionalCosts: 10, SalePrice: &price},
		{ID: productB, UserID: testUserID, Name: "Torta", PurchasePrice: 20},
	}}
	log := &logger.Logger{Logger: zap.NewNop()}
	return NewInsightsService(repo, products, cfg, log), repo
}

func TestRecordSaleComputesTotals(t *testing.T) {
	svc, repo := newTestService(t)

	sale, err := svc.RecordSale(testUserID, &CreateSaleDTO{
		ProductID: productA,
		Quantity:  3,
		UnitPrice: 80,
		UnitCost:  50,
		SaleDate:  time.Now().Format(dateLayout),
	})
	require.NoError(t, err)
	assert.Equal(t, 240.0, sale.TotalRevenue)
	assert.Equal(t, 90.0, sale.TotalProfit)
	require.Len(t, repo.sales, 1)
}

func TestRecordSaleValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RecordSale(testUserID, &CreateSaleDTO{
		ProductID: productA, Quantity: 0, UnitPrice: 80, SaleDate: time.Now().Format(dateLayout),
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.RecordSale(testUserID, &CreateSaleDTO{
		ProductID: productA, Quantity: 1, UnitPrice: 80,
		SaleDate: time.Now().AddDate(0, 0, 1).Format(dateLayout),
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.RecordSale(testUserID, &CreateSaleDTO{
		ProductID: uuid.NewString(), Quantity: 1, UnitPrice: 80,
		SaleDate: time.Now().Format(dateLayout),
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.RecordSale(uuid.NewString(), &CreateSaleDTO{
		ProductID: productA, Quantity: 1, UnitPrice: 80,
		SaleDate: time.Now().Format(dateLayout),
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestReportFromRecordedSales(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RecordSale(testUserID, &CreateSaleDTO{
		ProductID: productA, Quantity: 2, UnitPrice: 80, UnitCost: 50,
		SaleDate: time.Now().Format(dateLayout),
	})
	require.NoError(t, err)

	// outside the 7 day window
	_, err = svc.RecordSale(testUserID, &CreateSaleDTO{
		ProductID: productA, Quantity: 5, UnitPrice: 80, UnitCost: 50,
		SaleDate: time.Now().AddDate(0, 0, -20).Format(dateLayout),
	})
	require.NoError(t, err)

	report, err := svc.Report(testUserID, "7days", "")
	require.NoError(t, err)
	assert.Equal(t, Period7Days, report.Period)
	assert.Equal(t, SourceRecorded, report.Source)
	require.Len(t, report.Products, 1)
	assert.Equal(t, 2, report.Products[0].UnitsSold)
	assert.Equal(t, 160.0, report.Summary.TotalRevenue)
	assert.InDelta(t, 37.5, report.Summary.AverageMargin, 1e-9)
	assert.Empty(t, report.Alerts)
	assert.Contains(t, report.Narrative, "7 dias")

	wide, err := svc.Report(testUserID, "30days", SourceRecorded)
	require.NoError(t, err)
	assert.Equal(t, 7, wide.Summary.TotalUnits)
}

func TestReportEmptyWindow(t *testing.T) {
	svc, _ := newTestService(t)

	report, err := svc.Report(testUserID, "30days", SourceRecorded)
	require.NoError(t, err)
	assert.Empty(t, report.Products)
	assert.Nil(t, report.Summary.BestSelling)
	assert.Contains(t, report.Narrative, "Nenhuma venda")
}

func TestReportSimulatedSource(t *testing.T) {
	svc, repo := newTestService(t)

	report, err := svc.Report(testUserID, "90days", SourceSimulated)
	require.NoError(t, err)
	assert.Equal(t, SourceSimulated, report.Source)
	// simulation never touches the sales store
	assert.Empty(t, repo.sales)
	// only the product with a sale price can appear
	for _, p := range report.Products {
		assert.Equal(t, productA, p.ProductID)
	}
}

func TestReportRejectsUnknownPeriodAndSource(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Report(testUserID, "1year", "")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Report(testUserID, "7days", "guessed")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}
