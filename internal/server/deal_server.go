package server

import (
	"context"
	"net/http"

	"investintake/internal/domain/entity"
	"investintake/pkg/httpx/reply"
	"investintake/pkg/rest"
)

type dealService interface {
	DealConfig(ctx context.Context) entity.InvestmentConfig
}

type DealServer struct {
	dealService dealService
}

func NewDealServer(dealService dealService) DealServer {
	return DealServer{
		dealService: dealService,
	}
}

func (s DealServer) getV1Deal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	config := s.dealService.DealConfig(ctx)

	reply.JSON(ctx, w, http.StatusOK, rest.DealConfigResponse{
		Config: newRESTInvestmentConfig(config),
	})

	return nil
}
