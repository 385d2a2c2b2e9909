package http_router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lintang-b-s/ir-lab/pkg/http/http-router/controllers"
	"github.com/lintang-b-s/ir-lab/pkg/http/http-router/middleware"
	router_helper "github.com/lintang-b-s/ir-lab/pkg/http/http-router/router-helper"
	http_server "github.com/lintang-b-s/ir-lab/pkg/http/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/lintang-b-s/ir-lab/docs"
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

// Handler wires every route behind the middleware chain.
func (api *API) Handler(
	labService controllers.LabService,
	searchService controllers.SearchService,
	journeyService controllers.JourneyService,
	contentService controllers.ContentService,
) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", middleware.REQUEST_ID_HEADER},
		ExposedHeaders:   []string{"Link", middleware.REQUEST_ID_HEADER},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	group := router_helper.NewRouteGroup(router, "/api")

	controllers.NewLabAPI(labService, api.log).Routes(group)
	controllers.NewSearchAPI(searchService, api.log).Routes(group)
	controllers.NewJourneyAPI(journeyService, api.log).Routes(group)
	controllers.NewContentAPI(contentService, api.log).Routes(group)

	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	router.Handler(http.MethodGet, "/swagger/*any", httpSwagger.WrapHandler)

	return alice.New(corsHandler.Handler, middleware.EnforceJSONHandler, api.recoverPanic,
		middleware.RealIP, middleware.Heartbeat("healthz"), middleware.RequestID,
		middleware.Logger(api.log), middleware.Labels).Then(router)
}

func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	labService controllers.LabService,
	searchService controllers.SearchService,
	journeyService controllers.JourneyService,
	contentService controllers.ContentService,
) error {
	api.log.Info("Run httprouter API")

	handler := api.Handler(labService, searchService, journeyService, contentService)

	srv := http_server.New(ctx, api.log, handler, config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	return srv.ListenAndServe()
}

// recoverPanic turns a panicking handler into a 500 and keeps the server alive.
func (api *API) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				api.log.Error("panic while serving request",
					zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Any("panic", err))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":{"code":"internal_server_error","message":"internal server error"}}`))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
