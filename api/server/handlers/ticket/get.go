package ticket

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"gorm.io/gorm"

	"github.com/filterable-dev/filterable/api/server/config"
)

type GetTicketHandler struct {
	config *config.Config
}

func NewGetTicketHandler(config *config.Config) *GetTicketHandler {
	return &GetTicketHandler{config}
}

func (h GetTicketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ticketUID := chi.URLParam(r, "uid")

	if ticketUID == "" {
		w.WriteHeader(http.StatusBadRequest)
		h.config.Logger.Error().Caller().Msgf("API error in GetTicketHandler: %v", fmt.Errorf("empty ticket id"))
		return
	}

	ticket, err := h.config.Repository.Ticket.ReadTicket(ticketUID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.WriteHeader(http.StatusNotFound)
			h.config.Logger.Error().Caller().Msgf("API error in GetTicketHandler: %v", err)
			return
		}

		w.WriteHeader(http.StatusBadRequest)
		h.config.Logger.Error().Caller().Msgf("API error in GetTicketHandler: %v", err)
		return
	}

	render.JSON(w, r, ticket.ToAPIType())
}
