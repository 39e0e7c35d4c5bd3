// Package invest holds the pure investment arithmetic: share/amount
// conversion, volume bonus tier lookup and whole-share alignment.
package invest

import (
	"sort"

	"github.com/shopspring/decimal"

	"investintake/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100) //nolint:gochecknoglobals

// Calculate derives the full share/bonus/fee breakdown for an amount.
// All numeric edge cases degrade gracefully: amount zero yields zero
// shares, and the effective share price falls back to the configured one
// when no shares are bought.
func Calculate(amount decimal.Decimal, config entity.InvestmentConfig) entity.InvestmentCalculation {
	baseShares := int64(0)
	if config.SharePrice.IsPositive() {
		baseShares = amount.Div(config.SharePrice).Floor().IntPart()
	}

	bonusPercent := bonusPercentFor(amount, config.BonusTiers)

	bonusShares := decimal.NewFromInt(baseShares).
		Mul(bonusPercent).
		Div(oneHundred).
		Floor().
		IntPart()

	totalShares := baseShares + bonusShares

	effectiveSharePrice := config.SharePrice
	if totalShares > 0 {
		effectiveSharePrice = amount.Div(decimal.NewFromInt(totalShares))
	}

	// Fee applies to the pre-bonus share value only.
	investorFee := decimal.NewFromInt(baseShares).
		Mul(config.SharePrice).
		Mul(config.InvestorFeePercent).
		Div(oneHundred)

	return entity.InvestmentCalculation{
		Amount:              amount,
		BaseShares:          baseShares,
		BonusPercent:        bonusPercent,
		BonusShares:         bonusShares,
		TotalShares:         totalShares,
		EffectiveSharePrice: effectiveSharePrice,
		InvestorFee:         investorFee,
		TotalWithFee:        amount.Add(investorFee),
	}
}

// bonusPercentFor picks the tier with the highest threshold the amount
// meets or exceeds. Equal thresholds tie-break on the higher bonus, so the
// result does not depend on the order tiers were supplied in.
func bonusPercentFor(amount decimal.Decimal, tiers []entity.BonusTier) decimal.Decimal {
	sorted := sortTiersDescending(tiers)

	for _, tier := range sorted {
		if amount.GreaterThanOrEqual(tier.Threshold) {
			return tier.BonusPercent
		}
	}

	return decimal.Zero
}

// NextTier returns the closest tier strictly above the amount and how much
// more is needed to reach it. The second return is false when the amount
// already meets or exceeds every tier.
func NextTier(amount decimal.Decimal, config entity.InvestmentConfig) (entity.NextTierInfo, bool) {
	sorted := make([]entity.BonusTier, len(config.BonusTiers))
	copy(sorted, config.BonusTiers)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Threshold.LessThan(sorted[j].Threshold)
	})

	for _, tier := range sorted {
		if tier.Threshold.GreaterThan(amount) {
			return entity.NextTierInfo{
				Tier:         tier,
				AmountNeeded: tier.Threshold.Sub(amount),
			}, true
		}
	}

	return entity.NextTierInfo{}, false
}

// AlignToSharePrice rounds the amount up to the smallest value buying a
// whole number of shares, to two decimal places. Degenerate inputs pass
// through unchanged.
func AlignToSharePrice(amount, sharePrice decimal.Decimal) decimal.Decimal {
	if !sharePrice.IsPositive() || !amount.IsPositive() {
		return amount
	}

	shares := amount.Div(sharePrice).Ceil()

	return shares.Mul(sharePrice).Round(2)
}

func sortTiersDescending(tiers []entity.BonusTier) []entity.BonusTier {
	sorted := make([]entity.BonusTier, len(tiers))
	copy(sorted, tiers)

	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Threshold.Equal(sorted[j].Threshold) {
			return sorted[i].Threshold.GreaterThan(sorted[j].Threshold)
		}

		return sorted[i].BonusPercent.GreaterThan(sorted[j].BonusPercent)
	})

	return sorted
}
