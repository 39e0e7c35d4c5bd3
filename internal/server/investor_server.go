package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	"github.com/shopspring/decimal"

	"investintake/internal/domain/entity"
	"investintake/internal/domain/service/intake"
	"investintake/internal/domain/value"
	"investintake/pkg/errcodes"
	"investintake/pkg/httpx/reply"
	"investintake/pkg/httpx/req"
	"investintake/pkg/rest"
)

type intakeService interface {
	Search(ctx context.Context, email string) ([]entity.InvestorRecord, error)
	Create(ctx context.Context, params intake.CreateParams) (intake.CreateResult, error)
	Complete(ctx context.Context, params intake.CompleteParams) (intake.CompleteResult, error)
	AccessLink(ctx context.Context, investorID int64) (string, error)
}

type InvestorServer struct {
	intakeService intakeService
}

func NewInvestorServer(intakeService intakeService) InvestorServer {
	return InvestorServer{
		intakeService: intakeService,
	}
}

func (s InvestorServer) postV1InvestorsSearch(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.SearchInvestorsRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	records, err := s.intakeService.Search(ctx, request.Email)
	if err != nil {
		return fmt.Errorf("intakeService.Search: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSearchResponse(records))

	return nil
}

func (s InvestorServer) postV1Investors(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateInvestorRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	params, err := newCreateParams(request)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("newCreateParams: %w", err),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	result, err := s.intakeService.Create(ctx, params)
	if err != nil {
		return fmt.Errorf("intakeService.Create: %w", err)
	}

	if len(result.ExistingInvestments) > 0 {
		reply.JSON(ctx, w, http.StatusOK, rest.ExistingInvestmentsResponse{
			ExistingInvestments: true,
			Investments:         newRESTInvestments(result.ExistingInvestments),
		})

		return nil
	}

	reply.JSON(ctx, w, http.StatusCreated, rest.CreateInvestorResponse{
		InvestorID:     result.Investor.ID,
		ProfileID:      result.ProfileID,
		SubscriptionID: result.Investor.ProfileID,
		State:          result.Investor.State.String(),
		PaymentURL:     result.PaymentURL,
	})

	return nil
}

func (s InvestorServer) postV1InvestorsComplete(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CompleteInvestmentRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	params, err := newCompleteParams(request)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("newCompleteParams: %w", err),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	result, err := s.intakeService.Complete(ctx, params)
	if err != nil {
		return fmt.Errorf("intakeService.Complete: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.CompleteInvestmentResponse{
		InvestorID: result.Investor.ID,
		State:      result.Investor.State.String(),
		PaymentURL: result.PaymentURL,
	})

	return nil
}

func (s InvestorServer) getV1InvestorAccessLink(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	investorID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || investorID <= 0 {
		return failure.NewInvalidArgumentError(
			"invalid investor id",
			failure.WithCode(errcodes.InvalidInvestorID),
			failure.WithDescription("Investor id must be a positive integer"),
		)
	}

	link, err := s.intakeService.AccessLink(ctx, investorID)
	if err != nil {
		return fmt.Errorf("intakeService.AccessLink: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.AccessLinkResponse{
		AccessLink: link,
	})

	return nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("decimal.NewFromString: %w", err)
	}

	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("amount must be positive, got %s", s)
	}

	return amount, nil
}

func parseInvestorType(s string) (value.InvestorType, error) {
	investorType, err := value.ParseInvestorType(s)
	if err != nil {
		return "", fmt.Errorf("value.ParseInvestorType: %w", err)
	}

	return investorType, nil
}
