package healthcheck

import (
	"net/http"

	"github.com/filterable-dev/filterable/api/server/config"
)

type ReadyzHandler struct {
	config *config.Config
}

func NewReadyzHandler(config *config.Config) *ReadyzHandler {
	return &ReadyzHandler{config}
}

func (h *ReadyzHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	db := h.config.Repository.DB

	sqlDB, err := db.DB()

	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.config.Logger.Error().Caller().Msgf("API error in ReadyzHandler: %v", err)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.config.Logger.Error().Caller().Msgf("API error in ReadyzHandler: %v", err)
		return
	}

	writeHealthy(w)
}

func writeHealthy(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("."))
}
