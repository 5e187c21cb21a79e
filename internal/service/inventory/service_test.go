package inventory

import (
	"errors"
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

// fakeRepository mirrors the transactional semantics of the gorm repository
// in memory: rejections never change the stock level.
type fakeRepository struct {
	stocks    map[string]*ProductStock
	movements map[string]*StockMovement
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		stocks:    map[string]*ProductStock{},
		movements: map[string]*StockMovement{},
	}
}

func (f *fakeRepository) GetStock(productID string) (*ProductStock, error) {
	stock, ok := f.stocks[productID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *stock
	return &copied, nil
}

func (f *fakeRepository) EnsureStock(seed ProductStock) (*ProductStock, error) {
	if _, ok := f.stocks[seed.ProductID]; !ok {
		copied := seed
		f.stocks[seed.ProductID] = &copied
	}
	return f.GetStock(seed.ProductID)
}

func (f *fakeRepository) ListStocksByUser(userID string) ([]*ProductStock, error) {
	var stocks []*ProductStock
	for _, s := range f.stocks {
		if s.UserID == userID {
			copied := *s
			stocks = append(stocks, &copied)
		}
	}
	return stocks, nil
}

func (f *fakeRepository) SetMinimumStock(productID, userID string, minimum int) (*ProductStock, error) {
	seed := ProductStock{ProductID: productID, UserID: userID, MinimumStock: minimum}
	if _, err := f.EnsureStock(seed); err != nil {
		return nil, err
	}
	f.stocks[productID].MinimumStock = minimum
	return f.GetStock(productID)
}

func (f *fakeRepository) ApplyMovement(m *StockMovement, seed ProductStock) (*ProductStock, error) {
	if _, err := f.EnsureStock(seed); err != nil {
		return nil, err
	}
	stock := f.stocks[m.ProductID]
	if m.Type == MovementSaida && stock.CurrentStock < m.Quantity {
		return nil, &apperr.InsufficientStockError{
			ProductID:    m.ProductID,
			Requested:    m.Quantity,
			CurrentStock: stock.CurrentStock,
		}
	}
	if m.Type == MovementEntrada {
		stock.CurrentStock += m.Quantity
	} else {
		stock.CurrentStock -= m.Quantity
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = time.Now()
	stored := *m
	f.movements[m.ID] = &stored
	return f.GetStock(m.ProductID)
}

func (f *fakeRepository) GetMovement(id, userID string) (*StockMovement, error) {
	m, ok := f.movements[id]
	if !ok || m.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeRepository) ListMovements(userID string, filter MovementFilter) ([]*StockMovement, error) {
	var movements []*StockMovement
	for _, m := range f.movements {
		if m.UserID != userID {
			continue
		}
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		day := m.Date.Format(dateLayout)
		if filter.From != nil && day < filter.From.Format(dateLayout) {
			continue
		}
		if filter.To != nil && day > filter.To.Format(dateLayout) {
			continue
		}
		copied := *m
		movements = append(movements, &copied)
	}
	if filter.Offset > 0 {
		if filter.Offset >= len(movements) {
			return nil, nil
		}
		movements = movements[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(movements) {
		movements = movements[:filter.Limit]
	}
	return movements, nil
}

func (f *fakeRepository) ReverseMovement(m *StockMovement) (*ProductStock, error) {
	if _, ok := f.movements[m.ID]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(f.movements, m.ID)
	stock, ok := f.stocks[m.ProductID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if m.Type == MovementSaida {
		stock.CurrentStock += m.Quantity
	} else {
		stock.CurrentStock -= m.Quantity
		if stock.CurrentStock < 0 {
			stock.CurrentStock = 0
		}
	}
	return f.GetStock(m.ProductID)
}

type fakeProducts struct {
	products map[string]*product.Product
}

func (f *fakeProducts) GetByID(id string) (*product.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
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
	testUserID    = "5b1f8a34-0a0f-4d27-9f6a-111111111111"
	testProductID = "5b1f8a34-0a0f-4d27-9f6a-222222222222"
)

func newTestService(t *testing.T) (*InventoryService, *fakeRepository) {
	t.Helper()
	cfg := &config.Config{
		Inventory: config.InventoryConfig{DefaultMinimumStock: 5},
	}
	repo := newFakeRepository()
	products := &fakeProducts{products: map[string]*product.Product{
		testProductID: {ID: testProductID, UserID: testUserID, Name: "Brigadeiro"},
	}}
	log := &logger.Logger{Logger: zap.NewNop()}
	return NewInventoryService(repo, products, cfg, log), repo
}

func entrada(quantity int) *CreateMovementDTO {
	return &CreateMovementDTO{
		ProductID: testProductID,
		Type:      "entrada",
		Quantity:  quantity,
		Reason:    "compra",
		Date:      time.Now().Format(dateLayout),
	}
}

func saida(quantity int) *CreateMovementDTO {
	return &CreateMovementDTO{
		ProductID: testProductID,
		Type:      "saida",
		Quantity:  quantity,
		Reason:    "venda",
		Date:      time.Now().Format(dateLayout),
	}
}

func TestStockLifecycle(t *testing.T) {
	svc, _ := newTestService(t)

	// first sight creates the stock row at zero with the default minimum
	stock, err := svc.GetStock(testProductID, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 0, stock.CurrentStock)
	assert.Equal(t, 5, stock.MinimumStock)
	assert.Equal(t, StatusCritical, stock.Status)

	resp, err := svc.RegisterMovement(testUserID, entrada(5))
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Stock.CurrentStock)
	assert.Equal(t, StatusWarning, resp.Stock.Status)

	resp, err = svc.RegisterMovement(testUserID, saida(3))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Stock.CurrentStock)
	assert.Equal(t, StatusWarning, resp.Stock.Status)

	resp, err = svc.RegisterMovement(testUserID, saida(2))
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stock.CurrentStock)
	assert.Equal(t, StatusCritical, resp.Stock.Status)
}

func TestMovementSeedsStockWithConfiguredMinimum(t *testing.T) {
	svc, repo := newTestService(t)

	// first movement lazily creates the stock row from the narrowed
	// domain shape with the configured minimum
	_, err := svc.RegisterMovement(testUserID, entrada(3))
	require.NoError(t, err)

	row, ok := repo.stocks[testProductID]
	require.True(t, ok)
	assert.Equal(t, 5, row.MinimumStock)
	assert.Equal(t, testUserID, row.UserID)

	details, err := svc.GetStockDetails(testProductID, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 3, details.CurrentStock)
	assert.Equal(t, 5, details.MinimumStock)
	assert.Equal(t, 100, details.MaximumStock)
	assert.Equal(t, "principal", details.Location)
}

func TestSaidaRejectedWhenInsufficient(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RegisterMovement(testUserID, entrada(2))
	require.NoError(t, err)

	_, err = svc.RegisterMovement(testUserID, saida(3))
	require.Error(t, err)
	ise, ok := apperr.IsInsufficientStock(err)
	require.True(t, ok)
	assert.Equal(t, 3, ise.Requested)
	assert.Equal(t, 2, ise.CurrentStock)

	// a rejection must not touch the level
	stock, err := svc.GetStock(testProductID, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 2, stock.CurrentStock)
}

func TestDeleteMovementReversesEffect(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RegisterMovement(testUserID, entrada(10))
	require.NoError(t, err)
	resp, err := svc.RegisterMovement(testUserID, saida(4))
	require.NoError(t, err)
	assert.Equal(t, 6, resp.Stock.CurrentStock)

	stock, err := svc.DeleteMovement(resp.Movement.ID, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 10, stock.CurrentStock)

	_, err = svc.DeleteMovement(resp.Movement.ID, testUserID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestReversingEntradaFloorsAtZero(t *testing.T) {
	svc, _ := newTestService(t)

	in, err := svc.RegisterMovement(testUserID, entrada(5))
	require.NoError(t, err)
	_, err = svc.RegisterMovement(testUserID, saida(4))
	require.NoError(t, err)

	stock, err := svc.DeleteMovement(in.Movement.ID, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 0, stock.CurrentStock)
}

func TestMovementValidation(t *testing.T) {
	svc, _ := newTestService(t)

	dto := entrada(3)
	dto.Reason = "venda"
	_, err := svc.RegisterMovement(testUserID, dto)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	dto = saida(3)
	dto.Reason = "compra"
	_, err = svc.RegisterMovement(testUserID, dto)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	dto = entrada(0)
	_, err = svc.RegisterMovement(testUserID, dto)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	dto = entrada(3)
	dto.Date = time.Now().AddDate(0, 0, 1).Format(dateLayout)
	_, err = svc.RegisterMovement(testUserID, dto)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	dto = entrada(3)
	dto.Date = "12/05/2025"
	_, err = svc.RegisterMovement(testUserID, dto)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestMovementForUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	dto := entrada(3)
	dto.ProductID = uuid.NewString()
	_, err := svc.RegisterMovement(testUserID, dto)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestMovementForForeignProductReadsAsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RegisterMovement(uuid.NewString(), entrada(3))
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSetMinimumStock(t *testing.T) {
	svc, _ := newTestService(t)

	stock, err := svc.SetMinimumStock(testProductID, testUserID, &SetMinimumStockDTO{MinimumStock: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, stock.MinimumStock)

	_, err = svc.SetMinimumStock(testProductID, testUserID, &SetMinimumStockDTO{MinimumStock: -1})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestDailyAndPeriodSummary(t *testing.T) {
	svc, repo := newTestService(t)

	today := time.Now().Format(dateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(dateLayout)

	_, err := svc.RegisterMovement(testUserID, entrada(10))
	require.NoError(t, err)
	_, err = svc.RegisterMovement(testUserID, saida(4))
	require.NoError(t, err)

	old := entrada(7)
	old.Date = yesterday
	_, err = svc.RegisterMovement(testUserID, old)
	require.NoError(t, err)

	daily, err := svc.DailySummary(testUserID, today)
	require.NoError(t, err)
	assert.Equal(t, 10, daily.TotalIn)
	assert.Equal(t, 4, daily.TotalOut)
	assert.Equal(t, 6, daily.Balance)
	assert.Equal(t, 2, daily.Movements)
	assert.Equal(t, []string{testProductID}, daily.ProductIDs)

	period, err := svc.PeriodSummary(testUserID, yesterday, today)
	require.NoError(t, err)
	assert.Equal(t, 17, period.TotalIn)
	assert.Equal(t, 3, period.Movements)

	_, err = svc.PeriodSummary(testUserID, today, yesterday)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	// sanity: movements really stored
	require.Len(t, repo.movements, 3)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusCritical, StatusOf(0, 5))
	assert.Equal(t, StatusCritical, StatusOf(-1, 5))
	assert.Equal(t, StatusWarning, StatusOf(1, 5))
	assert.Equal(t, StatusWarning, StatusOf(5, 5))
	assert.Equal(t, StatusHealthy, StatusOf(6, 5))
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, 0, summary.Movements)
	assert.Equal(t, 0, summary.Balance)
	assert.Empty(t, summary.ProductIDs)
}

func TestUpstreamErrorsAreWrapped(t *testing.T) {
	svc, _ := newTestService(t)
	svc.repo = failingRepository{}

	_, err := svc.ListMovements(testUserID, MovementFilter{})
	assert.ErrorIs(t, err, apperr.ErrUpstreamFailure)
}

type failingRepository struct{}

var errBoom = errors.New("boom")

func (failingRepository) GetStock(string) (*ProductStock, error) { return nil, errBoom }
func (failingRepository) EnsureStock(ProductStock) (*ProductStock, error) {
	return nil, errBoom
}
func (failingRepository) ListStocksByUser(string) ([]*ProductStock, error) { return nil, errBoom }
func (failingRepository) SetMinimumStock(string, string, int) (*ProductStock, error) {
	return nil, errBoom
}
func (failingRepository) ApplyMovement(*StockMovement, ProductStock) (*ProductStock, error) {
	return nil, errBoom
}
func (failingRepository) GetMovement(string, string) (*StockMovement, error) { return nil, errBoom }
func (failingRepository) ListMovements(string, MovementFilter) ([]*StockMovement, error) {
	return nil, errBoom
}
func (failingRepository) ReverseMovement(*StockMovement) (*ProductStock, error) {
	return nil, errBoom
}
