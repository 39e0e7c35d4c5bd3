package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"investintake/internal/domain/value"
)

// InvestorRecord is the deal-scoped investor the provider owns. We hold
// only a transient reference (id + last-known state) for the session.
type InvestorRecord struct {
	ID         int64               `json:"id"`
	Email      string              `json:"email"`
	Name       string              `json:"name"`
	Amount     decimal.Decimal     `json:"amount"`
	State      value.WorkflowState `json:"state"`
	ProfileID  int64               `json:"profile_id,omitempty"`
	AccessLink string              `json:"access_link,omitempty"`
}

// InvestorProfile is the typed KYC profile linked to an investor record.
type InvestorProfile struct {
	ID                      int64              `json:"id"`
	Type                    value.InvestorType `json:"type"`
	FirstName               string             `json:"first_name,omitempty"`
	LastName                string             `json:"last_name,omitempty"`
	EntityName              string             `json:"entity_name,omitempty"`
	JointHolderFirstName    string             `json:"joint_holder_first_name,omitempty"`
	JointHolderLastName     string             `json:"joint_holder_last_name,omitempty"`
	SigningOfficerFirstName string             `json:"signing_officer_first_name,omitempty"`
	SigningOfficerLastName  string             `json:"signing_officer_last_name,omitempty"`
	Trustees                []TrusteeName      `json:"trustees,omitempty"`
}

type TrusteeName struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// IntakeEvent is one append-only audit record of an intake milestone.
// Best effort: losing one never fails the user-facing request.
type IntakeEvent struct {
	ID          string          `json:"id" db:"id"`
	Kind        string          `json:"kind" db:"kind"`
	Email       string          `json:"email" db:"email"`
	InvestorID  int64           `json:"investor_id,omitempty" db:"investor_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	UTMSource   string          `json:"utm_source,omitempty" db:"utm_source"`
	UTMMedium   string          `json:"utm_medium,omitempty" db:"utm_medium"`
	UTMCampaign string          `json:"utm_campaign,omitempty" db:"utm_campaign"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

const (
	IntakeEventSearched  = "searched"
	IntakeEventCreated   = "created"
	IntakeEventResumed   = "resumed"
	IntakeEventCompleted = "completed"
)
