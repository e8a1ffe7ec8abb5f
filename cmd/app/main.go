package main

import (
	"zeit/config"
	"zeit/di"
	"zeit/shared/logger"

	_ "zeit/docs"
)

// @title zeit API
// @version 1.0
// @description Current date and time for any IANA timezone, with response caching and per-client rate limiting.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
