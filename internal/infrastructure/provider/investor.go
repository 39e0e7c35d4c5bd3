package provider

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"investintake/internal/domain/entity"
)

type createInvestorRequest struct {
	Email           string          `json:"email"`
	Name            string          `json:"name"`
	InvestmentValue decimal.Decimal `json:"investment_value"`
	AllocationUnit  string          `json:"allocation_unit"`
	ProfileID       int64           `json:"profile_id,omitempty"`
	UTMSource       string          `json:"utm_source,omitempty"`
	UTMMedium       string          `json:"utm_medium,omitempty"`
	UTMCampaign     string          `json:"utm_campaign,omitempty"`
	UTMTerm         string          `json:"utm_term,omitempty"`
	UTMContent      string          `json:"utm_content,omitempty"`
}

// CreateInvestor creates a deal-scoped investor record with the minimal
// field set. Allocation unit is always dollars; share math stays ours.
func (c *Client) CreateInvestor(ctx context.Context, params entity.NewInvestor) (entity.InvestorRecord, error) {
	request := createInvestorRequest{
		Email:           params.Email,
		Name:            params.Name,
		InvestmentValue: params.Amount,
		AllocationUnit:  "amount",
		ProfileID:       params.ProfileID,
		UTMSource:       params.UTM.Source,
		UTMMedium:       params.UTM.Medium,
		UTMCampaign:     params.UTM.Campaign,
		UTMTerm:         params.UTM.Term,
		UTMContent:      params.UTM.Content,
	}

	var response investorDTO

	endpoint := "/v1/deals/" + c.dealID + "/investors"

	if err := c.doJSON(ctx, http.MethodPost, endpoint, request, &response); err != nil {
		return entity.InvestorRecord{}, fmt.Errorf("doJSON: %w", err)
	}

	return response.toEntity(), nil
}

type updateInvestorRequest struct {
	CurrentStep string `json:"current_step,omitempty"`
	ProfileID   int64  `json:"profile_id,omitempty"`
}

// UpdateInvestor patches the current step and/or profile reference of a
// deal investor record.
func (c *Client) UpdateInvestor(ctx context.Context, investorID int64, params entity.InvestorUpdate) (entity.InvestorRecord, error) {
	request := updateInvestorRequest{
		CurrentStep: params.CurrentStep,
		ProfileID:   params.ProfileID,
	}

	var response investorDTO

	endpoint := "/v1/deals/" + c.dealID + "/investors/" + strconv.FormatInt(investorID, 10)

	if err := c.doJSON(ctx, http.MethodPatch, endpoint, request, &response); err != nil {
		return entity.InvestorRecord{}, fmt.Errorf("doJSON: %w", err)
	}

	return response.toEntity(), nil
}

// SearchInvestors runs a free-text search over the deal's investors. The
// provider answers with either a bare collection or a paginated envelope;
// both are accepted, anything else fails loudly.
func (c *Client) SearchInvestors(ctx context.Context, query string) ([]entity.InvestorRecord, error) {
	var raw []byte

	endpoint := "/v1/deals/" + c.dealID + "/investors/search"

	request := struct {
		Query string `json:"query"`
	}{Query: query}

	if err := c.doJSON(ctx, http.MethodPost, endpoint, request, &raw); err != nil {
		return nil, fmt.Errorf("doJSON: %w", err)
	}

	dtos, err := decodeInvestorList(raw)
	if err != nil {
		return nil, fmt.Errorf("decodeInvestorList: %w", err)
	}

	records := make([]entity.InvestorRecord, 0, len(dtos))

	for _, dto := range dtos {
		records = append(records, dto.toEntity())
	}

	return records, nil
}

// GetAccessLink fetches a one-time-access payment link for the investor.
func (c *Client) GetAccessLink(ctx context.Context, investorID int64) (string, error) {
	var response struct {
		AccessLink string `json:"access_link"`
	}

	endpoint := "/v1/investors/" + strconv.FormatInt(investorID, 10) + "/access_link"

	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return "", fmt.Errorf("doJSON: %w", err)
	}

	return response.AccessLink, nil
}
