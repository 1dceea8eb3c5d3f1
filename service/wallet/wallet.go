package wallet

import (
	"context"
	"github.com/QuangTung97/campaign-ledger/repository"
	"github.com/shopspring/decimal"
	"time"
)

// Transaction is one payout credited to the creator
type Transaction struct {
	SubmissionID int64
	CampaignID   int64
	Amount       decimal.Decimal
	AutoPaid     bool
	PaidAt       time.Time
}

// Wallet ...
type Wallet struct {
	CreatorID    string
	Balance      decimal.Decimal
	Transactions []Transaction
}

// IService ...
type IService interface {
	GetWallet(ctx context.Context, creatorID string) (Wallet, error)
}

// Service aggregates approved and auto paid submissions, it never moves money
type Service struct {
	provider       repository.Provider
	submissionRepo repository.Submission
}

var _ IService = &Service{}

// NewService ...
func NewService(provider repository.Provider, submissionRepo repository.Submission) *Service {
	return &Service{
		provider:       provider,
		submissionRepo: submissionRepo,
	}
}

// GetWallet returns the balance and the payouts, latest first
func (s *Service) GetWallet(ctx context.Context, creatorID string) (Wallet, error) {
	list, err := s.submissionRepo.ListPaidSubmissionsByCreator(s.provider.Readonly(ctx), creatorID)
	if err != nil {
		return Wallet{}, err
	}

	w := Wallet{
		CreatorID:    creatorID,
		Balance:      decimal.Zero,
		Transactions: make([]Transaction, 0, len(list)),
	}
	for _, sub := range list {
		amount := decimal.Zero
		if sub.PayoutAmount.Valid {
			amount = sub.PayoutAmount.Decimal
		}
		w.Balance = w.Balance.Add(amount)

		w.Transactions = append(w.Transactions, Transaction{
			SubmissionID: sub.ID,
			CampaignID:   sub.CampaignID,
			Amount:       amount,
			AutoPaid:     sub.AutoPaid,
			PaidAt:       sub.ApprovedAt.Time,
		})
	}
	return w, nil
}
