package ticket

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/gorilla/schema"

	"github.com/filterable-dev/filterable/api/server/config"
	"github.com/filterable-dev/filterable/api/server/types"
	"github.com/filterable-dev/filterable/internal/utils"
)

type ListTicketsHandler struct {
	config *config.Config
}

func NewListTicketsHandler(config *config.Config) *ListTicketsHandler {
	return &ListTicketsHandler{config}
}

func (h ListTicketsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := &types.ListTicketsRequest{
		PaginationRequest: &types.PaginationRequest{},
	}

	decoder := schema.NewDecoder()

	// the filter and sort parameters are not part of the request struct
	decoder.IgnoreUnknownKeys(true)

	if err := decoder.Decode(req, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		h.config.Logger.Error().Caller().Msgf("API error in ListTicketsHandler: %v", err)
		return
	}

	filterConf := h.config.FilterConf

	order := utils.OrderAsc

	if filterConf.DefaultSortDesc {
		order = utils.OrderDesc
	}

	pageSize := uint(filterConf.PageSize)

	tickets, paginatedResult, err := h.config.Repository.Ticket.ListTickets(
		r.URL.Query(),
		utils.WithSortParams(filterConf.SortByParam, filterConf.SortDescParam),
		utils.WithSortBy(filterConf.DefaultSortBy),
		utils.WithOrder(order),
		utils.WithLimit(pageSize),
		utils.WithOffset(req.Page*pageSize),
	)

	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.config.Logger.Error().Caller().Msgf("API error in ListTicketsHandler: %v", err)
		return
	}

	res := &types.ListTicketsResponse{
		Pagination: &types.PaginationResponse{
			NumPages:    paginatedResult.NumPages,
			CurrentPage: paginatedResult.CurrentPage,
			NextPage:    paginatedResult.NextPage,
		},
	}

	for _, ticket := range tickets {
		res.Tickets = append(res.Tickets, ticket.ToAPIType())
	}

	render.JSON(w, r, res)
}
