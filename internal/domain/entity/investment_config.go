package entity

import "github.com/shopspring/decimal"

// BonusTier grants extra shares once the invested amount reaches the
// threshold. Tiers may arrive from the provider in any order.
type BonusTier struct {
	Threshold    decimal.Decimal `json:"threshold"`
	BonusPercent decimal.Decimal `json:"bonus_percent"`
}

// InvestmentConfig is the campaign configuration the amount-selection step
// computes against. Constructed once per session, immutable afterwards.
type InvestmentConfig struct {
	SharePrice         decimal.Decimal   `json:"share_price"`
	MinInvestment      decimal.Decimal   `json:"min_investment"`
	MaxInvestment      *decimal.Decimal  `json:"max_investment,omitempty"`
	InvestorFeePercent decimal.Decimal   `json:"investor_fee_percent"`
	AmountRaised       decimal.Decimal   `json:"amount_raised"`
	FundingGoal        decimal.Decimal   `json:"funding_goal"`
	PresetAmounts      []decimal.Decimal `json:"preset_amounts"`
	BonusTiers         []BonusTier       `json:"bonus_tiers"`
}

// WithinLimits reports whether the amount satisfies the configured minimum
// and, when present, maximum.
func (c InvestmentConfig) WithinLimits(amount decimal.Decimal) bool {
	if amount.LessThan(c.MinInvestment) {
		return false
	}

	if c.MaxInvestment != nil && amount.GreaterThan(*c.MaxInvestment) {
		return false
	}

	return true
}
