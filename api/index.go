package handler

import (
	"net/http"
	"sync"
	"zeit/config"
	"zeit/di"
	"zeit/shared/logger"

	_ "zeit/docs"
)

var (
	setupOnce sync.Once
	mux       http.Handler
)

// Handler is the serverless entrypoint; the service is wired once per
// isolate and reused across invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	setupOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetLogLevel(cfg)

		mux = di.InitializeService().Handler()
	})

	r.RequestURI = r.URL.String()

	mux.ServeHTTP(w, r)
}
