package server

// Server joins the entity-specific HTTP servers of the intake API.
type Server struct {
	DealServer
	InvestorServer
}

func NewServer(
	dealServer DealServer,
	investorServer InvestorServer,
) Server {
	return Server{
		DealServer:     dealServer,
		InvestorServer: investorServer,
	}
}
