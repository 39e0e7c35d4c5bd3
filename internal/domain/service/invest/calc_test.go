package invest_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"investintake/internal/domain/entity"
	"investintake/internal/domain/service/invest"
)

func testConfig() entity.InvestmentConfig {
	return entity.InvestmentConfig{
		SharePrice:         decimal.RequireFromString("0.85"),
		MinInvestment:      decimal.RequireFromString("500.65"),
		InvestorFeePercent: decimal.RequireFromString("2"),
		BonusTiers: []entity.BonusTier{
			// Deliberately unordered: evaluation must not depend on input order.
			{Threshold: decimal.RequireFromString("10000"), BonusPercent: decimal.RequireFromString("10")},
			{Threshold: decimal.RequireFromString("25000"), BonusPercent: decimal.RequireFromString("15")},
			{Threshold: decimal.RequireFromString("5000"), BonusPercent: decimal.RequireFromString("5")},
		},
	}
}

func TestCalculate(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name         string
		amount       string
		baseShares   int64
		bonusPercent string
		bonusShares  int64
		totalShares  int64
	}{
		{
			name:         "Below lowest tier",
			amount:       "2500.70",
			baseShares:   2942,
			bonusPercent: "0",
			bonusShares:  0,
			totalShares:  2942,
		},
		{
			name:         "Mid tier",
			amount:       "10000.25",
			baseShares:   11765,
			bonusPercent: "10",
			bonusShares:  1176,
			totalShares:  12941,
		},
		{
			name:         "Exactly on lowest tier",
			amount:       "5000",
			baseShares:   5882,
			bonusPercent: "5",
			bonusShares:  294,
			totalShares:  6176,
		},
		{
			name:         "Top tier",
			amount:       "25000",
			baseShares:   29411,
			bonusPercent: "15",
			bonusShares:  4411,
			totalShares:  33822,
		},
		{
			name:         "Zero amount",
			amount:       "0",
			baseShares:   0,
			bonusPercent: "0",
			bonusShares:  0,
			totalShares:  0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			amount := decimal.RequireFromString(tc.amount)

			calc := invest.Calculate(amount, testConfig())

			rq.Equal(tc.baseShares, calc.BaseShares)
			rq.True(calc.BonusPercent.Equal(decimal.RequireFromString(tc.bonusPercent)),
				"bonus percent: want %s, got %s", tc.bonusPercent, calc.BonusPercent)
			rq.Equal(tc.bonusShares, calc.BonusShares)
			rq.Equal(tc.totalShares, calc.TotalShares)

			rq.Equal(calc.BaseShares+calc.BonusShares, calc.TotalShares)

			if calc.TotalShares > 0 {
				reconstructed := calc.EffectiveSharePrice.Mul(decimal.NewFromInt(calc.TotalShares))
				rq.True(reconstructed.Sub(amount).Abs().LessThan(decimal.RequireFromString("0.01")),
					"totalShares * effectiveSharePrice must reconstruct the amount")
			} else {
				rq.True(calc.EffectiveSharePrice.Equal(testConfig().SharePrice))
			}

			rq.True(calc.TotalWithFee.Equal(amount.Add(calc.InvestorFee)))
		})
	}
}

func TestCalculateFeeIgnoresBonusShares(t *testing.T) {
	rq := require.New(t)

	config := testConfig()
	amount := decimal.RequireFromString("10000.25")

	calc := invest.Calculate(amount, config)

	// Fee is computed on the pre-bonus share value only.
	wantFee := decimal.NewFromInt(calc.BaseShares).
		Mul(config.SharePrice).
		Mul(config.InvestorFeePercent).
		Div(decimal.NewFromInt(100))

	rq.True(calc.InvestorFee.Equal(wantFee), "want %s, got %s", wantFee, calc.InvestorFee)
}

func TestCalculateEqualThresholdTieBreak(t *testing.T) {
	rq := require.New(t)

	config := testConfig()
	config.BonusTiers = []entity.BonusTier{
		{Threshold: decimal.RequireFromString("5000"), BonusPercent: decimal.RequireFromString("3")},
		{Threshold: decimal.RequireFromString("5000"), BonusPercent: decimal.RequireFromString("7")},
	}

	// Equal thresholds resolve to the higher bonus regardless of input order.
	calc := invest.Calculate(decimal.RequireFromString("6000"), config)
	rq.True(calc.BonusPercent.Equal(decimal.RequireFromString("7")))

	config.BonusTiers[0], config.BonusTiers[1] = config.BonusTiers[1], config.BonusTiers[0]

	calc = invest.Calculate(decimal.RequireFromString("6000"), config)
	rq.True(calc.BonusPercent.Equal(decimal.RequireFromString("7")))
}

func TestCalculateDegenerateSharePrice(t *testing.T) {
	rq := require.New(t)

	config := testConfig()
	config.SharePrice = decimal.Zero

	calc := invest.Calculate(decimal.RequireFromString("1000"), config)

	rq.Zero(calc.BaseShares)
	rq.Zero(calc.TotalShares)
	rq.True(calc.EffectiveSharePrice.Equal(decimal.Zero))
}

func TestNextTier(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name         string
		amount       string
		wantOK       bool
		threshold    string
		amountNeeded string
	}{
		{
			name:         "Below every tier",
			amount:       "1000",
			wantOK:       true,
			threshold:    "5000",
			amountNeeded: "4000",
		},
		{
			name:         "Between tiers",
			amount:       "7500.50",
			wantOK:       true,
			threshold:    "10000",
			amountNeeded: "2499.50",
		},
		{
			name:         "Exactly on a tier",
			amount:       "10000",
			wantOK:       true,
			threshold:    "25000",
			amountNeeded: "15000",
		},
		{
			name:   "At the top tier",
			amount: "25000",
			wantOK: false,
		},
		{
			name:   "Above every tier",
			amount: "30000",
			wantOK: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			info, ok := invest.NextTier(decimal.RequireFromString(tc.amount), testConfig())

			rq.Equal(tc.wantOK, ok)

			if !tc.wantOK {
				return
			}

			rq.True(info.Tier.Threshold.Equal(decimal.RequireFromString(tc.threshold)))
			rq.True(info.AmountNeeded.Equal(decimal.RequireFromString(tc.amountNeeded)))
			rq.True(info.AmountNeeded.IsPositive())
		})
	}
}

func TestAlignToSharePrice(t *testing.T) {
	rq := require.New(t)

	sharePrice := decimal.RequireFromString("0.85")

	testCases := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "Already aligned", amount: "850", want: "850"},
		{name: "Rounds up", amount: "100", want: "100.3"},
		{name: "Just above a whole share", amount: "0.86", want: "1.7"},
		{name: "One cent", amount: "0.01", want: "0.85"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got := invest.AlignToSharePrice(decimal.RequireFromString(tc.amount), sharePrice)

			rq.True(got.Equal(decimal.RequireFromString(tc.want)), "want %s, got %s", tc.want, got)

			// Idempotency.
			again := invest.AlignToSharePrice(got, sharePrice)
			rq.True(again.Equal(got))
		})
	}
}

func TestAlignToSharePricePassthrough(t *testing.T) {
	rq := require.New(t)

	// Degenerate inputs return the amount unchanged.
	amount := decimal.RequireFromString("123.45")

	rq.True(invest.AlignToSharePrice(amount, decimal.Zero).Equal(amount))
	rq.True(invest.AlignToSharePrice(amount, decimal.RequireFromString("-1")).Equal(amount))
	rq.True(invest.AlignToSharePrice(decimal.Zero, decimal.RequireFromString("0.85")).Equal(decimal.Zero))
}

func TestDefaultConfigPresetsAreShareAligned(t *testing.T) {
	rq := require.New(t)

	config := invest.DefaultConfig()

	for _, preset := range config.PresetAmounts {
		aligned := invest.AlignToSharePrice(preset, config.SharePrice)
		rq.True(aligned.Equal(preset), "preset %s is not share aligned", preset)
	}
}
