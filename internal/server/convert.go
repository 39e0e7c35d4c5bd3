package server

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"investintake/internal/domain/entity"
	"investintake/internal/domain/service/intake"
	"investintake/internal/domain/value"
	"investintake/pkg/lox"
	"investintake/pkg/rest"
)

func newRESTInvestmentConfig(config entity.InvestmentConfig) rest.InvestmentConfig {
	restConfig := rest.InvestmentConfig{
		SharePrice:         config.SharePrice.String(),
		MinInvestment:      config.MinInvestment.String(),
		InvestorFeePercent: config.InvestorFeePercent.String(),
		AmountRaised:       config.AmountRaised.String(),
		FundingGoal:        config.FundingGoal.String(),
		PresetAmounts: lox.Map(config.PresetAmounts, func(preset decimal.Decimal) string {
			return preset.String()
		}),
		BonusTiers: lox.Map(config.BonusTiers, func(tier entity.BonusTier) rest.BonusTier {
			return rest.BonusTier{
				Threshold:    tier.Threshold.String(),
				BonusPercent: tier.BonusPercent.String(),
			}
		}),
	}

	if config.MaxInvestment != nil {
		restConfig.MaxInvestment = config.MaxInvestment.String()
	}

	return restConfig
}

func newRESTSearchResponse(records []entity.InvestorRecord) rest.SearchInvestorsResponse {
	return rest.SearchInvestorsResponse{
		Found:       len(records) > 0,
		Investments: newRESTInvestments(records),
	}
}

func newRESTInvestments(records []entity.InvestorRecord) []rest.InvestmentResult {
	return lo.Map(records, func(record entity.InvestorRecord, _ int) rest.InvestmentResult {
		return rest.InvestmentResult{
			InvestorID: record.ID,
			State:      record.State.String(),
			Amount:     record.Amount.String(),
			AccessLink: record.AccessLink,
		}
	})
}

func newCreateParams(request rest.CreateInvestorRequest) (intake.CreateParams, error) {
	amount, err := parseAmount(request.InvestmentAmount)
	if err != nil {
		return intake.CreateParams{}, fmt.Errorf("parseAmount: %w", err)
	}

	investorType, err := parseInvestorType(request.InvestorType)
	if err != nil {
		return intake.CreateParams{}, err
	}

	profile, err := newDomainProfile(profileFields{
		firstName:            request.FirstName,
		lastName:             request.LastName,
		entityName:           request.EntityName,
		jointHolderFirstName: request.JointHolderFirstName,
		jointHolderLastName:  request.JointHolderLastName,
		trustees:             request.Trustees,
	}, investorType)
	if err != nil {
		return intake.CreateParams{}, fmt.Errorf("newDomainProfile: %w", err)
	}

	params := intake.CreateParams{
		Email:        request.Email,
		Amount:       amount,
		InvestorType: investorType,
		Profile:      profile,
	}

	if request.UTM != nil {
		params.UTM = entity.UTMAttribution{
			Source:   request.UTM.Source,
			Medium:   request.UTM.Medium,
			Campaign: request.UTM.Campaign,
			Term:     request.UTM.Term,
			Content:  request.UTM.Content,
		}
	}

	return params, nil
}

func newCompleteParams(request rest.CompleteInvestmentRequest) (intake.CompleteParams, error) {
	investorType, err := parseInvestorType(request.InvestorType)
	if err != nil {
		return intake.CompleteParams{}, err
	}

	profile, err := newDomainProfile(profileFields{
		firstName:            request.FirstName,
		lastName:             request.LastName,
		entityName:           request.EntityName,
		jointHolderFirstName: request.JointHolderFirstName,
		jointHolderLastName:  request.JointHolderLastName,
		trustees:             request.Trustees,
	}, investorType)
	if err != nil {
		return intake.CompleteParams{}, fmt.Errorf("newDomainProfile: %w", err)
	}

	return intake.CompleteParams{
		InvestorID:   request.InvestorID,
		Email:        request.Email,
		InvestorType: investorType,
		Profile:      profile,
	}, nil
}

type profileFields struct {
	firstName            string
	lastName             string
	entityName           string
	jointHolderFirstName string
	jointHolderLastName  string
	trustees             []rest.TrusteeName
}

func newDomainProfile(fields profileFields, investorType value.InvestorType) (entity.InvestorProfile, error) {
	profile := entity.InvestorProfile{
		Type:      investorType,
		FirstName: fields.firstName,
		LastName:  fields.lastName,
	}

	if investorType.RequiresJointHolder() {
		if fields.jointHolderFirstName == "" || fields.jointHolderLastName == "" {
			return entity.InvestorProfile{}, fmt.Errorf("joint investments require both joint holder names")
		}

		profile.JointHolderFirstName = fields.jointHolderFirstName
		profile.JointHolderLastName = fields.jointHolderLastName
	}

	if investorType.RequiresEntityName() {
		if fields.entityName == "" {
			return entity.InvestorProfile{}, fmt.Errorf("%s investments require an entity name", investorType)
		}

		profile.EntityName = fields.entityName
	}

	switch investorType {
	case value.InvestorTypeCorporation:
		profile.SigningOfficerFirstName = fields.firstName
		profile.SigningOfficerLastName = fields.lastName
	case value.InvestorTypeTrust:
		profile.Trustees = lo.Map(fields.trustees, func(trustee rest.TrusteeName, _ int) entity.TrusteeName {
			return entity.TrusteeName{
				FirstName: trustee.FirstName,
				LastName:  trustee.LastName,
			}
		})

		if len(profile.Trustees) == 0 {
			profile.Trustees = []entity.TrusteeName{{
				FirstName: fields.firstName,
				LastName:  fields.lastName,
			}}
		}
	}

	return profile, nil
}
