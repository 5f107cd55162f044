package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"traveldesk-admin/internal/domain/entity"
	"traveldesk-admin/pkg/rawdoc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletStats(t *testing.T) {
	t.Parallel()

	today := time.Now().UTC().Format(time.RFC3339)
	store := newFakeStore()
	store.seed("bookings", "b1", rawdoc.Doc{
		"paymentStatus": "paid",
		"totalAmount":   1000.0,
		"createdAt":     today,
	})
	store.seed("bookings", "b2", rawdoc.Doc{
		"paymentStatus": map[string]interface{}{"status": "completed"},
		"totalAmount":   500.0,
		"createdAt":     "2024-01-15T10:00:00Z",
	})
	store.seed("bookings", "b3", rawdoc.Doc{
		"paymentStatus": "pending",
		"totalAmount":   700.0,
	})
	store.seed("users", "u1", rawdoc.Doc{"walletBalance": 250.0})
	store.seed("users", "u2", rawdoc.Doc{"CashbackAmount": 50.0})
	svc, _, _ := newService(store)

	stats := svc.WalletStats(context.Background())
	assert.Equal(t, float64(1500), stats.TotalEarnings, "pending bookings are not revenue")
	assert.Equal(t, float64(1000), stats.TodayEarnings)
	assert.Equal(t, float64(300), stats.Balance)
	assert.Zero(t, stats.PendingPayouts)
	assert.Zero(t, stats.TotalWithdrawals)
}

func TestWalletStatsStoreFailure(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.findErr = errors.New("connection reset")
	svc, _, _ := newService(store)

	assert.Equal(t, entity.WalletStats{}, svc.WalletStats(context.Background()))
}

func TestTransactions(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.seed("bookings", "b1", rawdoc.Doc{
		"paymentStatus": "paid",
		"packageName":   "Goa Trip",
		"totalAmount":   1000.0,
		"createdAt":     "2024-05-02T10:00:00Z",
	})
	store.seed("bookings", "b2", rawdoc.Doc{
		"paymentStatus": "pending",
		"totalAmount":   700.0,
	})
	store.seed("referralTransactions", "r1", rawdoc.Doc{
		"type":      "REFERRER_CREDIT",
		"amount":    50.0,
		"timestamp": "2024-05-03T10:00:00Z",
	})
	store.seed("referralTransactions", "r2", rawdoc.Doc{
		"type":      "PAYOUT",
		"amount":    200.0,
		"status":    "Processing",
		"timestamp": "2024-05-01T10:00:00Z",
	})
	store.seed("referralTransactions", "r3", rawdoc.Doc{
		"type":      "BOOKING_REFUND",
		"amount":    150.0,
		"timestamp": "2024-05-04T10:00:00Z",
	})
	svc, _, _ := newService(store)

	transactions := svc.Transactions(context.Background())
	require.Len(t, transactions, 4, "unpaid bookings are excluded")

	// Newest first
	assert.Equal(t, "r3", transactions[0].ID)
	assert.Equal(t, entity.TransactionRefund, transactions[0].Type)
	assert.Equal(t, float64(150), transactions[0].Amount)

	assert.Equal(t, "r1", transactions[1].ID)
	assert.Equal(t, entity.TransactionEarning, transactions[1].Type)
	assert.Equal(t, "Referral Reward - REFERRER_CREDIT", transactions[1].Description)
	assert.Equal(t, "completed", transactions[1].Status)

	assert.Equal(t, "b1", transactions[2].ID)
	assert.Equal(t, entity.TransactionEarning, transactions[2].Type)
	assert.Equal(t, float64(1000), transactions[2].Amount)
	assert.Equal(t, "Booking Payment - Goa Trip", transactions[2].Description)

	assert.Equal(t, "r2", transactions[3].ID)
	assert.Equal(t, entity.TransactionWithdrawal, transactions[3].Type)
	assert.Equal(t, "processing", transactions[3].Status)
}
