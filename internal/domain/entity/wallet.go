// internal/domain/entity/wallet.go
package entity

// WalletStats aggregates platform-wide money figures
type WalletStats struct {
	Balance          float64 `json:"balance"`
	TotalEarnings    float64 `json:"totalEarnings"`
	TodayEarnings    float64 `json:"todayEarnings"`
	PendingPayouts   float64 `json:"pendingPayouts"`
	TotalWithdrawals float64 `json:"totalWithdrawals"`
}

// TransactionType classifies a wallet transaction
type TransactionType string

const (
	TransactionEarning    TransactionType = "earning"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionRefund     TransactionType = "refund"
)

// Transaction is one row of the wallet transaction history
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Status      string          `json:"status"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}
