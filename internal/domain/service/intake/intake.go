// Package intake orchestrates the intake flows: deal configuration with
// fallback, resume-by-email, investor creation with typed profile shaping
// and the final completion hand-off to hosted checkout.
package intake

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"

	"investintake/internal/domain"
	"investintake/internal/domain/entity"
	"investintake/internal/domain/service/invest"
	"investintake/internal/domain/value"
	"investintake/internal/infrastructure/provider"
	"investintake/pkg/contextx"
	"investintake/pkg/errcodes"
)

const (
	dealConfigCacheTTL = 5 * time.Minute
	dealConfigCacheKey = "deal-config"

	// currentStepCompleted is the provider-side step tag written on
	// completion, right before redirecting to hosted checkout.
	currentStepCompleted = "payment"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type ProviderClient interface {
	GetDeal(ctx context.Context) (entity.InvestmentConfig, error)
	GetIncentiveTiers(ctx context.Context) ([]entity.BonusTier, error)
	CreateProfile(ctx context.Context, profile entity.InvestorProfile) (int64, error)
	CreateInvestor(ctx context.Context, params entity.NewInvestor) (entity.InvestorRecord, error)
	UpdateInvestor(ctx context.Context, investorID int64, params entity.InvestorUpdate) (entity.InvestorRecord, error)
	SearchInvestors(ctx context.Context, query string) ([]entity.InvestorRecord, error)
	GetAccessLink(ctx context.Context, investorID int64) (string, error)
}

type IntakeEventRepository interface {
	Append(ctx context.Context, event entity.IntakeEvent) error
}

// Service glues the provider client, the configuration cache and the
// audit log together. A Service constructed without a provider client
// (credentials absent) still serves the fallback configuration and
// answers everything else with a configuration-missing error.
type Service struct {
	provider    ProviderClient
	events      IntakeEventRepository
	configCache *cache.Cache
}

func NewService(providerClient ProviderClient, events IntakeEventRepository) *Service {
	return &Service{
		provider:    providerClient,
		events:      events,
		configCache: cache.New(dealConfigCacheTTL, dealConfigCacheTTL),
	}
}

// DealConfig returns the campaign configuration: provider-backed with a
// TTL cache, falling back to the hardcoded default on any failure.
func (s *Service) DealConfig(ctx context.Context) entity.InvestmentConfig {
	if cached, ok := s.configCache.Get(dealConfigCacheKey); ok {
		return cached.(entity.InvestmentConfig)
	}

	if s.provider == nil {
		return invest.DefaultConfig()
	}

	config, err := s.provider.GetDeal(ctx)
	if err != nil {
		logger(ctx).Warn("deal config fetch failed, serving fallback", "error", err)
		return invest.DefaultConfig()
	}

	tiers, err := s.provider.GetIncentiveTiers(ctx)
	if err != nil {
		logger(ctx).Warn("incentive tiers fetch failed, serving fallback", "error", err)
		return invest.DefaultConfig()
	}

	config.BonusTiers = tiers

	if !config.SharePrice.IsPositive() || !config.MinInvestment.IsPositive() {
		logger(ctx).Warn("deal config incomplete, serving fallback")
		return invest.DefaultConfig()
	}

	s.configCache.Set(dealConfigCacheKey, config, cache.DefaultExpiration)

	return config
}

// Search looks up resumable investor records by email. A no-match answer
// is found=false with an empty list, never an error. Access links are
// attached best-effort: their failure never hides a found record.
func (s *Service) Search(ctx context.Context, email string) ([]entity.InvestorRecord, error) {
	if s.provider == nil {
		return nil, errProviderNotConfigured()
	}

	records, err := s.provider.SearchInvestors(ctx, email)
	if err != nil {
		return nil, translateProviderError(err)
	}

	resumable := make([]entity.InvestorRecord, 0, len(records))

	for _, record := range records {
		if !strings.EqualFold(record.Email, email) {
			continue
		}

		if !record.State.Resumable() {
			continue
		}

		if record.AccessLink == "" {
			if link, linkErr := s.provider.GetAccessLink(ctx, record.ID); linkErr == nil {
				record.AccessLink = link
			} else {
				logger(ctx).Warn("access link fetch failed", "investor_id", record.ID, "error", linkErr)
			}
		}

		resumable = append(resumable, record)
	}

	s.recordEvent(ctx, entity.IntakeEvent{
		Kind:  entity.IntakeEventSearched,
		Email: email,
	})

	return resumable, nil
}

type CreateParams struct {
	Email        string
	Amount       decimal.Decimal
	InvestorType value.InvestorType
	Profile      entity.InvestorProfile
	UTM          entity.UTMAttribution
}

// CreateResult is either a freshly created investor or the set of
// existing resumable records found first.
type CreateResult struct {
	Investor            entity.InvestorRecord
	ProfileID           int64
	PaymentURL          string
	ExistingInvestments []entity.InvestorRecord
}

// Create makes a minimal investor record for step two. When a resumable
// record already exists for the email, it is returned instead of
// creating a duplicate.
func (s *Service) Create(ctx context.Context, params CreateParams) (CreateResult, error) {
	if s.provider == nil {
		return CreateResult{}, errProviderNotConfigured()
	}

	existing, err := s.Search(ctx, params.Email)
	if err != nil {
		// Search failing must not block a fresh intake; creation decides.
		logger(ctx).Warn("pre-create search failed", "error", err)
	}

	if len(existing) > 0 {
		s.recordEvent(ctx, entity.IntakeEvent{
			Kind:       entity.IntakeEventResumed,
			Email:      params.Email,
			InvestorID: existing[0].ID,
			Amount:     params.Amount,
			UTMSource:  params.UTM.Source,
		})

		recordIntakeOutcome(outcomeResumed)

		return CreateResult{ExistingInvestments: existing}, nil
	}

	profile := params.Profile
	profile.Type = params.InvestorType

	profileID, err := s.provider.CreateProfile(ctx, profile)
	if err != nil {
		return CreateResult{}, translateProviderError(err)
	}

	investor, err := s.provider.CreateInvestor(ctx, entity.NewInvestor{
		Email:     params.Email,
		Name:      strings.TrimSpace(profile.FirstName + " " + profile.LastName),
		Amount:    params.Amount,
		ProfileID: profileID,
		UTM:       params.UTM,
	})
	if err != nil {
		return CreateResult{}, translateProviderError(err)
	}

	paymentURL := investor.AccessLink
	if paymentURL == "" {
		if link, linkErr := s.provider.GetAccessLink(ctx, investor.ID); linkErr == nil {
			paymentURL = link
		} else {
			logger(ctx).Warn("access link fetch failed", "investor_id", investor.ID, "error", linkErr)
		}
	}

	s.recordEvent(ctx, entity.IntakeEvent{
		Kind:        entity.IntakeEventCreated,
		Email:       params.Email,
		InvestorID:  investor.ID,
		Amount:      params.Amount,
		UTMSource:   params.UTM.Source,
		UTMMedium:   params.UTM.Medium,
		UTMCampaign: params.UTM.Campaign,
	})

	recordIntakeOutcome(outcomeCreated)

	return CreateResult{
		Investor:   investor,
		ProfileID:  profileID,
		PaymentURL: paymentURL,
	}, nil
}

type CompleteParams struct {
	InvestorID   int64
	Email        string
	InvestorType value.InvestorType
	Profile      entity.InvestorProfile
}

type CompleteResult struct {
	Investor   entity.InvestorRecord
	PaymentURL string
}

// Complete creates the typed profile, links it to the investor record and
// fetches the hosted checkout link. The link fetch is best-effort: its
// failure omits the redirect URL, it never fails the completion.
func (s *Service) Complete(ctx context.Context, params CompleteParams) (CompleteResult, error) {
	if s.provider == nil {
		return CompleteResult{}, errProviderNotConfigured()
	}

	profile := params.Profile
	profile.Type = params.InvestorType

	profileID, err := s.provider.CreateProfile(ctx, profile)
	if err != nil {
		return CompleteResult{}, translateProviderError(err)
	}

	investor, err := s.provider.UpdateInvestor(ctx, params.InvestorID, entity.InvestorUpdate{
		CurrentStep: currentStepCompleted,
		ProfileID:   profileID,
	})
	if err != nil {
		return CompleteResult{}, translateProviderError(err)
	}

	paymentURL := ""

	if link, linkErr := s.provider.GetAccessLink(ctx, investor.ID); linkErr == nil {
		paymentURL = link
	} else {
		logger(ctx).Warn("access link fetch failed", "investor_id", investor.ID, "error", linkErr)
	}

	s.recordEvent(ctx, entity.IntakeEvent{
		Kind:       entity.IntakeEventCompleted,
		Email:      params.Email,
		InvestorID: investor.ID,
		Amount:     investor.Amount,
	})

	recordIntakeOutcome(outcomeCompleted)

	return CompleteResult{
		Investor:   investor,
		PaymentURL: paymentURL,
	}, nil
}

// AccessLink fetches the one-time-access payment link for an investor.
func (s *Service) AccessLink(ctx context.Context, investorID int64) (string, error) {
	if s.provider == nil {
		return "", errProviderNotConfigured()
	}

	link, err := s.provider.GetAccessLink(ctx, investorID)
	if err != nil {
		return "", translateProviderError(err)
	}

	return link, nil
}

// recordEvent appends to the audit log best-effort. Losing an event never
// fails the user-facing request.
func (s *Service) recordEvent(ctx context.Context, event entity.IntakeEvent) {
	if s.events == nil {
		return
	}

	if err := s.events.Append(ctx, event); err != nil {
		logger(ctx).Warn("intake event append failed", "kind", event.Kind, "error", err)
	}
}

func errProviderNotConfigured() error {
	return domain.NewStatusError(
		http.StatusServiceUnavailable,
		errcodes.ConfigurationMissing,
		"Investment processing is not configured. Please contact support.",
	)
}

// translateProviderError maps raw provider failures onto the user-facing
// taxonomy, surfacing the upstream status code.
func translateProviderError(err error) error {
	if errors.Is(err, provider.ErrNetwork) {
		recordIntakeOutcome(outcomeFailed)

		return domain.WrapStatusError(
			err,
			http.StatusServiceUnavailable,
			errcodes.NetworkFailure,
			"We could not reach the investment platform. Please check your connection and try again.",
		)
	}

	var apiErr *provider.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	recordIntakeOutcome(outcomeFailed)

	switch {
	case apiErr.StatusCode == http.StatusConflict:
		return domain.WrapStatusError(
			err,
			http.StatusConflict,
			errcodes.InvestorAlreadyExists,
			"An investment with this email already exists. Use the resume option to continue it.",
		)
	case apiErr.StatusCode == http.StatusUnprocessableEntity:
		message := apiErr.Message
		if message == "" {
			message = "The investment platform rejected the submitted details. Please review them and try again."
		}

		return domain.WrapStatusError(err, http.StatusUnprocessableEntity, errcodes.ProviderValidation, message)
	case apiErr.StatusCode == http.StatusTooManyRequests:
		return domain.WrapStatusError(
			err,
			http.StatusTooManyRequests,
			errcodes.ProviderRateLimited,
			"The investment platform is busy. Please wait a moment and try again.",
		)
	default:
		return domain.WrapStatusError(
			err,
			apiErr.StatusCode,
			errcodes.ProviderUnavailable,
			"The investment platform is temporarily unavailable. Please try again later.",
		)
	}
}
