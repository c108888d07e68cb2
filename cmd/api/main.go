package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/julienschmidt/httprouter"

	"github.com/jimiolaniyan/goaccounts/config"
	"github.com/jimiolaniyan/goaccounts/mongodb"
	"github.com/jimiolaniyan/goaccounts/rest"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("service", "goaccounts")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	client, err := mongodb.Connect(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Error("mongo connect failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(); err != nil {
			logger.Error("mongo disconnect failed", "error", err)
		}
	}()

	router := httprouter.New()
	router.Handler(http.MethodPost, "/api/signup", rest.Adapt(makeSignUpController(cfg, client, logger)))
	router.Handler(http.MethodPost, "/api/login", rest.Adapt(makeLoginController(cfg, client, logger)))

	logger.Info("server started", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
