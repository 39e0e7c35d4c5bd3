package entity

import "github.com/shopspring/decimal"

// UTMAttribution is optional marketing attribution captured at intake and
// forwarded to the provider.
type UTMAttribution struct {
	Source   string `json:"source,omitempty"`
	Medium   string `json:"medium,omitempty"`
	Campaign string `json:"campaign,omitempty"`
	Term     string `json:"term,omitempty"`
	Content  string `json:"content,omitempty"`
}

// NewInvestor is the minimal field set for creating a deal-scoped
// investor record with the provider.
type NewInvestor struct {
	Email     string
	Name      string
	Amount    decimal.Decimal
	ProfileID int64
	UTM       UTMAttribution
}

// InvestorUpdate patches a deal investor record: current step and/or
// profile reference.
type InvestorUpdate struct {
	CurrentStep string
	ProfileID   int64
}
