package provider

import (
	"context"
	"fmt"
	"net/http"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"investintake/internal/domain/entity"
)

type dealDTO struct {
	SharePrice         decimal.Decimal  `json:"share_price"`
	MinInvestment      decimal.Decimal  `json:"min_investment"`
	MaxInvestment      *decimal.Decimal `json:"max_investment"`
	InvestorFeePercent decimal.Decimal  `json:"investor_fee_percent"`
	AmountRaised       decimal.Decimal  `json:"amount_raised"`
	FundingGoal        decimal.Decimal  `json:"funding_goal"`
	PresetAmounts      []string         `json:"preset_amounts"`
}

type tierDTO struct {
	Threshold    decimal.Decimal `json:"threshold"`
	BonusPercent decimal.Decimal `json:"bonus_percent"`
}

// GetDeal fetches the deal metadata backing the investment configuration.
func (c *Client) GetDeal(ctx context.Context) (entity.InvestmentConfig, error) {
	var deal dealDTO

	if err := c.doJSON(ctx, http.MethodGet, "/v1/deals/"+c.dealID, nil, &deal); err != nil {
		return entity.InvestmentConfig{}, fmt.Errorf("doJSON: %w", err)
	}

	presets := make([]decimal.Decimal, 0, len(deal.PresetAmounts))

	for _, preset := range deal.PresetAmounts {
		amount, err := decimal.NewFromString(preset)
		if err != nil {
			return entity.InvestmentConfig{}, fmt.Errorf("decimal.NewFromString(%q): %w", preset, err)
		}

		presets = append(presets, amount)
	}

	return entity.InvestmentConfig{
		SharePrice:         deal.SharePrice,
		MinInvestment:      deal.MinInvestment,
		MaxInvestment:      deal.MaxInvestment,
		InvestorFeePercent: deal.InvestorFeePercent,
		AmountRaised:       deal.AmountRaised,
		FundingGoal:        deal.FundingGoal,
		PresetAmounts:      presets,
	}, nil
}

// GetIncentiveTiers fetches the volume bonus tiers of the deal.
func (c *Client) GetIncentiveTiers(ctx context.Context) ([]entity.BonusTier, error) {
	var tiers []tierDTO

	if err := c.doJSON(ctx, http.MethodGet, "/v1/deals/"+c.dealID+"/incentives", nil, &tiers); err != nil {
		return nil, fmt.Errorf("doJSON: %w", err)
	}

	return lo.Map(tiers, func(tier tierDTO, _ int) entity.BonusTier {
		return entity.BonusTier{
			Threshold:    tier.Threshold,
			BonusPercent: tier.BonusPercent,
		}
	}), nil
}
