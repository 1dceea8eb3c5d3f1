//go:build integration
// +build integration

package repository

import (
	"context"
	"database/sql"
	"github.com/QuangTung97/campaign-ledger/model"
	"github.com/shopspring/decimal"
	"time"
)

func newContext() context.Context {
	return context.Background()
}

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func newNullTime(s string) sql.NullTime {
	return sql.NullTime{
		Valid: true,
		Time:  newTime(s),
	}
}

func newDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newNullDecimal(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(newDecimal(s))
}

func newCampaignModel(slots int64) model.Campaign {
	return model.Campaign{
		AdvertiserID:   "adv01",
		Title:          "title 01",
		Description:    "description 01",
		TotalSlots:     slots,
		RemainingSlots: slots,
		RewardPerPost:  newDecimal("150.00"),
		Status:         model.CampaignStatusActive,
	}
}
