// This file mirrors the openapi document of the intake API and is
// expected to be regenerated as types.gen.go once the document is published.
package rest

// InvestmentConfig describes the campaign parameters the amount-selection
// step renders: share price, bounds, preset amounts and volume bonus tiers.
type InvestmentConfig struct {
	SharePrice         string      `json:"sharePrice"`
	MinInvestment      string      `json:"minInvestment"`
	MaxInvestment      string      `json:"maxInvestment,omitempty"`
	InvestorFeePercent string      `json:"investorFeePercent"`
	AmountRaised       string      `json:"amountRaised,omitempty"`
	FundingGoal        string      `json:"fundingGoal,omitempty"`
	PresetAmounts      []string    `json:"presetAmounts"`
	BonusTiers         []BonusTier `json:"bonusTiers"`
}

type BonusTier struct {
	Threshold    string `json:"threshold"`
	BonusPercent string `json:"bonusPercent"`
}

type DealConfigResponse struct {
	Config InvestmentConfig `json:"config"`
}

type SearchInvestorsRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SearchInvestorsResponse struct {
	Found       bool               `json:"found"`
	Investments []InvestmentResult `json:"investments"`
}

// InvestmentResult is one resumable provider-side investor record.
type InvestmentResult struct {
	InvestorID int64  `json:"investorId"`
	State      string `json:"state"`
	Amount     string `json:"amount,omitempty"`
	AccessLink string `json:"accessLink,omitempty"`
}

type CreateInvestorRequest struct {
	Email                string          `json:"email" validate:"required,email"`
	InvestmentAmount     string          `json:"investmentAmount" validate:"required"`
	InvestorType         string          `json:"investorType" validate:"required"`
	FirstName            string          `json:"firstName" validate:"required"`
	LastName             string          `json:"lastName" validate:"required"`
	EntityName           string          `json:"entityName,omitempty"`
	JointHolderFirstName string          `json:"jointHolderFirstName,omitempty"`
	JointHolderLastName  string          `json:"jointHolderLastName,omitempty"`
	Trustees             []TrusteeName   `json:"trustees,omitempty"`
	UTM                  *UTMAttribution `json:"utm,omitempty"`
}

type TrusteeName struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

type UTMAttribution struct {
	Source   string `json:"source,omitempty"`
	Medium   string `json:"medium,omitempty"`
	Campaign string `json:"campaign,omitempty"`
	Term     string `json:"term,omitempty"`
	Content  string `json:"content,omitempty"`
}

type CreateInvestorResponse struct {
	InvestorID     int64  `json:"investorId"`
	ProfileID      int64  `json:"profileId,omitempty"`
	SubscriptionID int64  `json:"subscriptionId,omitempty"`
	State          string `json:"state"`
	PaymentURL     string `json:"paymentUrl,omitempty"`
}

// ExistingInvestmentsResponse is returned by investor creation when a
// resumable record already exists for the email.
type ExistingInvestmentsResponse struct {
	ExistingInvestments bool               `json:"existingInvestments"`
	Investments         []InvestmentResult `json:"investments"`
}

type CompleteInvestmentRequest struct {
	InvestorID           int64         `json:"investorId" validate:"required"`
	Email                string        `json:"email" validate:"required,email"`
	FirstName            string        `json:"firstName" validate:"required"`
	LastName             string        `json:"lastName" validate:"required"`
	InvestorType         string        `json:"investorType" validate:"required"`
	EntityName           string        `json:"entityName,omitempty"`
	JointHolderFirstName string        `json:"jointHolderFirstName,omitempty"`
	JointHolderLastName  string        `json:"jointHolderLastName,omitempty"`
	Trustees             []TrusteeName `json:"trustees,omitempty"`
}

type CompleteInvestmentResponse struct {
	InvestorID int64  `json:"investorId"`
	State      string `json:"state"`
	PaymentURL string `json:"paymentUrl,omitempty"`
}

type AccessLinkResponse struct {
	AccessLink string `json:"accessLink"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
