package provider

import (
	"context"
	"fmt"
	"net/http"

	"investintake/internal/domain/entity"
	"investintake/internal/domain/value"
)

type trusteeDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type profileRequest struct {
	Type                    string       `json:"type"`
	FirstName               string       `json:"first_name,omitempty"`
	LastName                string       `json:"last_name,omitempty"`
	Name                    string       `json:"name,omitempty"`
	JointHolderFirstName    string       `json:"joint_holder_first_name,omitempty"`
	JointHolderLastName     string       `json:"joint_holder_last_name,omitempty"`
	SigningOfficerFirstName string       `json:"signing_officer_first_name,omitempty"`
	SigningOfficerLastName  string       `json:"signing_officer_last_name,omitempty"`
	Trustees                []trusteeDTO `json:"trustees,omitempty"`
}

type profileResponse struct {
	ID int64 `json:"id"`
}

// CreateProfile creates a typed investor profile. Each investor type has
// its own minimal required-field set; fields outside the set for the given
// type are not sent at all.
func (c *Client) CreateProfile(ctx context.Context, profile entity.InvestorProfile) (int64, error) {
	request := profileRequest{
		Type: profile.Type.String(),
	}

	switch profile.Type {
	case value.InvestorTypeJoint:
		request.FirstName = profile.FirstName
		request.LastName = profile.LastName
		request.JointHolderFirstName = profile.JointHolderFirstName
		request.JointHolderLastName = profile.JointHolderLastName
	case value.InvestorTypeCorporation:
		request.Name = profile.EntityName
		request.SigningOfficerFirstName = profile.SigningOfficerFirstName
		request.SigningOfficerLastName = profile.SigningOfficerLastName
	case value.InvestorTypeTrust:
		request.Name = profile.EntityName

		for _, trustee := range profile.Trustees {
			request.Trustees = append(request.Trustees, trusteeDTO{
				FirstName: trustee.FirstName,
				LastName:  trustee.LastName,
			})
		}
	case value.InvestorTypeIndividual, value.InvestorTypeManaged:
		request.FirstName = profile.FirstName
		request.LastName = profile.LastName
	}

	var response profileResponse

	if err := c.doJSON(ctx, http.MethodPost, "/v1/investor_profiles", request, &response); err != nil {
		return 0, fmt.Errorf("doJSON: %w", err)
	}

	return response.ID, nil
}
