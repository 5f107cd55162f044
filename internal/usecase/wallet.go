package usecase

import (
	"context"
	"strings"
	"time"

	"traveldesk-admin/internal/domain/entity"
	"traveldesk-admin/internal/domain/repository"
	"traveldesk-admin/pkg/rawdoc"

	"golang.org/x/sync/errgroup"
)

// WalletStats aggregates revenue across paid bookings and the wallet
// balances held by users. Both collections are iterated client side; the
// store offers no group-by.
func (s *AdminService) WalletStats(ctx context.Context) entity.WalletStats {
	defer s.observeQuery(collBookings, time.Now())

	bookings, err := s.store.Find(ctx, collBookings, repository.Query{})
	if err != nil {
		s.degrade("wallet stats", err)
		return entity.WalletStats{}
	}

	var totalRevenue, todayRevenue float64
	today := time.Now().UTC().Format("2006-01-02")

	for _, rec := range bookings {
		raw, _ := rec.Data.Lookup("paymentStatus")
		if !isPaidStatus(rawdoc.StatusText(raw, "")) {
			continue
		}
		amount := firstNumber(rec.Data, "totalAmount", "PackagePrice")
		totalRevenue += amount

		if created, ok := rec.Data.Lookup("createdAt"); ok {
			if strings.HasPrefix(rawdoc.DecodeTime(created).ISO(), today) {
				todayRevenue += amount
			}
		}
	}

	users, err := s.store.Find(ctx, collUsers, repository.Query{})
	if err != nil {
		s.degrade("wallet stats", err)
		return entity.WalletStats{}
	}

	var totalBalance float64
	for _, rec := range users {
		totalBalance += firstNumber(rec.Data, "walletBalance", "CashbackAmount")
	}

	return entity.WalletStats{
		Balance:       totalBalance,
		TotalEarnings: totalRevenue,
		TodayEarnings: todayRevenue,
		// No payout collection exists yet
		PendingPayouts:   0,
		TotalWithdrawals: 0,
	}
}

// Transactions merges booking payments and referral transactions into one
// wallet history, newest first.
func (s *AdminService) Transactions(ctx context.Context) []entity.Transaction {
	defer s.observeQuery(collReferralTransactions, time.Now())

	var bookings, referrals []rawdoc.Record

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		bookings, err = s.store.Find(gctx, collBookings, repository.Query{})
		return err
	})
	g.Go(func() (err error) {
		referrals, err = s.store.Find(gctx, collReferralTransactions, repository.Query{})
		return err
	})
	if err := g.Wait(); err != nil {
		s.degrade("transactions", err)
		return []entity.Transaction{}
	}

	transactions := make([]entity.Transaction, 0, len(bookings)+len(referrals))

	for _, rec := range bookings {
		raw, _ := rec.Data.Lookup("paymentStatus")
		if !isPaidStatus(rawdoc.StatusText(raw, "")) {
			continue
		}
		name := firstText(rec.Data, "packageName", "PackageName")
		if name == "" {
			name = "Package"
		}
		transactions = append(transactions, entity.Transaction{
			ID:          rec.ID,
			Type:        entity.TransactionEarning,
			Amount:      firstNumber(rec.Data, "totalAmount", "PackagePrice"),
			Status:      "completed",
			Date:        createdAtOrNow(rec.Data, "createdAt"),
			Description: "Booking Payment - " + name,
		})
	}

	for _, rec := range referrals {
		txType := entity.TransactionWithdrawal
		refType := firstText(rec.Data, "type")
		switch {
		case refType == "REFERRER_CREDIT":
			txType = entity.TransactionEarning
		case strings.Contains(refType, "REFUND"):
			// Cancellation clawbacks come through as *_REFUND entries
			txType = entity.TransactionRefund
		}
		status := strings.ToLower(firstText(rec.Data, "status"))
		if status == "" {
			status = "completed"
		}
		transactions = append(transactions, entity.Transaction{
			ID:          rec.ID,
			Type:        txType,
			Amount:      firstNumber(rec.Data, "amount"),
			Status:      status,
			Date:        createdAtOrNow(rec.Data, "timestamp"),
			Description: "Referral Reward - " + refType,
		})
	}

	sortByTimeDesc(transactions, func(t entity.Transaction) string { return t.Date })
	return transactions
}

// isPaidStatus matches the payment statuses counted as revenue
func isPaidStatus(status string) bool {
	switch strings.ToLower(status) {
	case "paid", "completed":
		return true
	}
	return false
}

func createdAtOrNow(data rawdoc.Doc, key string) string {
	if v, ok := data.Lookup(key); ok {
		if iso := rawdoc.DecodeTime(v).ISO(); iso != "" {
			return iso
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}
