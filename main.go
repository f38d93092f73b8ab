package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/joeshaw/envdecode"

	"github.com/filterable-dev/filterable/api/server/config"
	healthcheckHandlers "github.com/filterable-dev/filterable/api/server/handlers/healthcheck"
	ticketHandlers "github.com/filterable-dev/filterable/api/server/handlers/ticket"
	"github.com/filterable-dev/filterable/internal/adapter"
	"github.com/filterable-dev/filterable/internal/envconf"
	"github.com/filterable-dev/filterable/internal/logger"
	"github.com/filterable-dev/filterable/internal/repository"
)

func main() {
	var envDecoderConf envconf.EnvDecoderConf = envconf.EnvDecoderConf{}

	if err := envdecode.StrictDecode(&envDecoderConf); err != nil {
		logger.NewErrorConsole(true).Fatal().Caller().Msgf("could not decode env conf: %v", err)

		os.Exit(1)
	}

	l := logger.NewConsole(envDecoderConf.Debug)

	// create database connection through adapter
	db, err := adapter.New(&envDecoderConf.DBConf)

	if err != nil {
		l.Fatal().Caller().Msgf("could not create database connection: %v", err)
	}

	if err := repository.AutoMigrate(db, false); err != nil {
		l.Fatal().Caller().Msgf("auto migration failed: %v", err)
	}

	repo := repository.NewRepository(db)

	conf, err := config.GetConfig(&envDecoderConf, repo)

	if err != nil {
		l.Fatal().Caller().Msgf("could not load config: %v", err)
	}

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Method("GET", "/livez", healthcheckHandlers.NewLivezHandler(conf))
	r.Method("GET", "/readyz", healthcheckHandlers.NewReadyzHandler(conf))

	r.Method("GET", "/tickets", ticketHandlers.NewListTicketsHandler(conf))
	r.Method("GET", "/tickets/{uid}", ticketHandlers.NewGetTicketHandler(conf))

	addr := fmt.Sprintf(":%d", envDecoderConf.ServerPort)

	l.Info().Msgf("listening on %s", addr)

	if err := http.ListenAndServe(addr, r); err != nil {
		l.Fatal().Caller().Msgf("server shut down: %v", err)
	}
}
