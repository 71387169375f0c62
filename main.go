package main

import (
	"io"
	"os"

	"github.com/envelope-zero/planner/pkg/budget"
	"github.com/envelope-zero/planner/pkg/config"
	"github.com/envelope-zero/planner/pkg/controllers"
	"github.com/envelope-zero/planner/pkg/money"
	"github.com/envelope-zero/planner/pkg/router"
	"github.com/envelope-zero/planner/pkg/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	rules, err := config.LoadRules(cfg.RulesFile)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	s, err := openStore(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	var source money.RateSource
	if h := money.NewHTTPSource(cfg.FXAPIURL); h != nil {
		source = h
	} else {
		log.Info().Msg("FX_API_URL is not set, using default exchange rates only")
	}

	engine := budget.NewEngine(s, money.NewRates(source),
		budget.WithRuleSet(rules.RuleSet),
		budget.WithCategories(rules.Categories),
	)

	r, err := router.Config(cfg.APIURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(controllers.Controller{Engine: engine}, r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// openStore creates the plan store selected by the configuration.
func openStore(cfg config.Config) (store.Store, error) {
	if cfg.Storage == config.StorageMemory {
		log.Warn().Msg("Using in-memory storage, all data is lost on restart")
		return store.NewMemory(), nil
	}

	// Create data directory
	if err := os.MkdirAll(cfg.DataDir, os.ModePerm); err != nil {
		return nil, err
	}

	return store.OpenSQLite(cfg.DSN())
}
