package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otabek-dev/corpex/internal/model"
	"github.com/otabek-dev/corpex/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "report.db")
	s, err := store.NewStore(dbPath, os.DirFS(filepath.Join("..", "..")))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func d(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(raw)
}

func seedPayment(t *testing.T, s *store.Store, reference string, accountID, establishmentID int64, amount string, status model.TransactionStatus) {
	t.Helper()

	_, err := s.CreateTransaction(&model.Transaction{
		Reference:       reference,
		AccountID:       accountID,
		EstablishmentID: &establishmentID,
		Amount:          d(t, amount),
		Kind:            model.KindPayment,
		Status:          status,
	})
	require.NoError(t, err)
}

func seedLedger(t *testing.T, s *store.Store) (accID int64, canteenID int64, cafeID int64) {
	t.Helper()

	acc := &model.Account{
		Name: "alice", Role: model.RoleEmployee, IsActive: true,
		Balance: d(t, "1000"), DailyLimit: decimal.Zero, MonthlyLimit: decimal.Zero,
	}
	_, err := s.CreateAccount(acc)
	require.NoError(t, err)

	inactive := &model.Account{
		Name: "bob", Role: model.RoleEmployee, IsActive: false,
		Balance: decimal.Zero, DailyLimit: decimal.Zero, MonthlyLimit: decimal.Zero,
	}
	_, err = s.CreateAccount(inactive)
	require.NoError(t, err)

	canteen := &model.Establishment{Name: "Canteen", Code: "canteen", MaxOrderAmount: decimal.Zero, IsActive: true}
	_, err = s.CreateEstablishment(canteen)
	require.NoError(t, err)
	cafe := &model.Establishment{Name: "Cafe", Code: "cafe", MaxOrderAmount: decimal.Zero, IsActive: true}
	_, err = s.CreateEstablishment(cafe)
	require.NoError(t, err)

	seedPayment(t, s, "c1", acc.ID, canteen.ID, "100", model.StatusCompleted)
	seedPayment(t, s, "c2", acc.ID, canteen.ID, "50.50", model.StatusCompleted)
	seedPayment(t, s, "c3", acc.ID, cafe.ID, "30", model.StatusCompleted)
	seedPayment(t, s, "c4", acc.ID, cafe.ID, "999", model.StatusFailed)

	return acc.ID, canteen.ID, cafe.ID
}

func TestCompanySummary(t *testing.T) {
	s := newTestStore(t)
	seedLedger(t, s)

	svc := NewService(s, nil)

	summary, err := svc.CompanySummary()
	require.NoError(t, err)

	assert.True(t, summary.TotalSpending.Equal(d(t, "180.50")), "total is %s", summary.TotalSpending)
	assert.True(t, summary.TodaySpending.Equal(d(t, "180.50")))
	assert.True(t, summary.MonthSpending.Equal(d(t, "180.50")))
	assert.Equal(t, int64(1), summary.ActiveAccounts)
}

func TestEstablishmentSummary(t *testing.T) {
	s := newTestStore(t)
	_, canteenID, _ := seedLedger(t, s)

	svc := NewService(s, nil)

	summary, err := svc.EstablishmentSummary(canteenID)
	require.NoError(t, err)

	assert.Equal(t, "Canteen", summary.Name)
	assert.True(t, summary.TotalRevenue.Equal(d(t, "150.50")), "total is %s", summary.TotalRevenue)
	assert.True(t, summary.TodayRevenue.Equal(d(t, "150.50")))
	assert.Equal(t, int64(2), summary.TotalOrders)
	assert.True(t, summary.AverageOrderValue.Equal(d(t, "75.25")))
}

func TestEstablishmentBreakdownOrdersByRevenue(t *testing.T) {
	s := newTestStore(t)
	seedLedger(t, s)

	svc := NewService(s, nil)

	summaries, err := svc.EstablishmentBreakdown()
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "Canteen", summaries[0].Name)
	assert.Equal(t, "Cafe", summaries[1].Name)
	assert.True(t, summaries[0].TotalRevenue.GreaterThan(summaries[1].TotalRevenue))
}

func TestWriteSummaryPDF(t *testing.T) {
	s := newTestStore(t)
	_, canteenID, _ := seedLedger(t, s)

	svc := NewService(s, nil)
	summary, err := svc.EstablishmentSummary(canteenID)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "summary.pdf")
	require.NoError(t, WriteSummaryPDF(summary, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	head := make([]byte, 5)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Read(head)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(head))
}

func TestWriteSummaryXLSX(t *testing.T) {
	s := newTestStore(t)
	_, canteenID, _ := seedLedger(t, s)

	svc := NewService(s, nil)
	summary, err := svc.EstablishmentSummary(canteenID)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "summary.xlsx")
	require.NoError(t, WriteSummaryXLSX(summary, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
