package persistence

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"investintake/internal/domain/entity"
)

type intakeEventSchema struct {
	ID          string    `db:"id"`
	Kind        string    `db:"kind"`
	Email       string    `db:"email"`
	InvestorID  int64     `db:"investor_id"`
	Amount      string    `db:"amount"`
	UTMSource   string    `db:"utm_source"`
	UTMMedium   string    `db:"utm_medium"`
	UTMCampaign string    `db:"utm_campaign"`
	CreatedAt   time.Time `db:"created_at"`
}

func newIntakeEventSchema(event entity.IntakeEvent) intakeEventSchema {
	return intakeEventSchema{
		ID:          event.ID,
		Kind:        event.Kind,
		Email:       event.Email,
		InvestorID:  event.InvestorID,
		Amount:      event.Amount.String(),
		UTMSource:   event.UTMSource,
		UTMMedium:   event.UTMMedium,
		UTMCampaign: event.UTMCampaign,
		CreatedAt:   event.CreatedAt,
	}
}

func (s intakeEventSchema) toDomain() (entity.IntakeEvent, error) {
	amount, err := decimal.NewFromString(s.Amount)
	if err != nil {
		return entity.IntakeEvent{}, fmt.Errorf("decimal.NewFromString(%q): %w", s.Amount, err)
	}

	return entity.IntakeEvent{
		ID:          s.ID,
		Kind:        s.Kind,
		Email:       s.Email,
		InvestorID:  s.InvestorID,
		Amount:      amount,
		UTMSource:   s.UTMSource,
		UTMMedium:   s.UTMMedium,
		UTMCampaign: s.UTMCampaign,
		CreatedAt:   s.CreatedAt,
	}, nil
}
