package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/nerdwave-nick/pokemoves/internal/api/common"
	"github.com/rs/cors"
)

type Controller interface {
	RegisterRoutes(rctx common.RouteCreationContext)
}

// MakeRouter registers every controller on a huma api served by mux and wraps the result in cors handling.
func MakeRouter(mux *http.ServeMux, controllers []Controller) http.Handler {
	config := huma.DefaultConfig("pokemoves", "1.0.0")
	config.Info.Description = "Filtered pokeapi move lists and summaries"
	humaAPI := humago.New(mux, config)

	rctx := common.RouteCreationContext{API: humaAPI}
	for _, c := range controllers {
		c.RegisterRoutes(rctx)
	}

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}).Handler(mux)
}
