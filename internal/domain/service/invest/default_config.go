package invest

import (
	"github.com/shopspring/decimal"

	"investintake/internal/domain/entity"
)

// DefaultConfig is the hardcoded fallback used whenever the deal
// configuration cannot be fetched from the provider. Preset amounts must
// stay aligned to whole multiples of the share price.
func DefaultConfig() entity.InvestmentConfig {
	return entity.InvestmentConfig{
		SharePrice:         decimal.RequireFromString("0.85"),
		MinInvestment:      decimal.RequireFromString("500.65"),
		MaxInvestment:      nil,
		InvestorFeePercent: decimal.RequireFromString("2"),
		AmountRaised:       decimal.Zero,
		FundingGoal:        decimal.RequireFromString("5000000"),
		PresetAmounts: []decimal.Decimal{
			decimal.RequireFromString("850"),
			decimal.RequireFromString("2550"),
			decimal.RequireFromString("5100"),
			decimal.RequireFromString("10200"),
			decimal.RequireFromString("25500"),
		},
		BonusTiers: []entity.BonusTier{
			{Threshold: decimal.RequireFromString("5000"), BonusPercent: decimal.RequireFromString("5")},
			{Threshold: decimal.RequireFromString("10000"), BonusPercent: decimal.RequireFromString("10")},
			{Threshold: decimal.RequireFromString("25000"), BonusPercent: decimal.RequireFromString("15")},
		},
	}
}
