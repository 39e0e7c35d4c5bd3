package entity

import "github.com/shopspring/decimal"

// InvestmentCalculation is derived from (amount, config) on every amount
// change. Pure value, never cached or mutated in place.
type InvestmentCalculation struct {
	Amount              decimal.Decimal `json:"amount"`
	BaseShares          int64           `json:"base_shares"`
	BonusPercent        decimal.Decimal `json:"bonus_percent"`
	BonusShares         int64           `json:"bonus_shares"`
	TotalShares         int64           `json:"total_shares"`
	EffectiveSharePrice decimal.Decimal `json:"effective_share_price"`
	InvestorFee         decimal.Decimal `json:"investor_fee"`
	TotalWithFee        decimal.Decimal `json:"total_with_fee"`
}

// NextTierInfo describes the closest bonus tier the amount does not yet
// reach and how much more is needed to get there.
type NextTierInfo struct {
	Tier         BonusTier       `json:"tier"`
	AmountNeeded decimal.Decimal `json:"amount_needed"`
}
