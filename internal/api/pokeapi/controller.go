package intapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/nerdwave-nick/pokemoves/internal/api/common"
	"github.com/nerdwave-nick/pokemoves/internal/moves"
	"github.com/nerdwave-nick/pokemoves/internal/pokeapi"
	"github.com/nerdwave-nick/pokemoves/internal/summary"
)

type Fetcher interface {
	Pokemon(ctx context.Context, idOrName string) (*pokeapi.Pokemon, error)
	Move(ctx context.Context, idOrName string) (*pokeapi.Move, error)
	ResolveVersionGroup(ctx context.Context, ref string) (string, *pokeapi.VersionGroup, error)
}

type PokemonMovesInput struct {
	ID           string `path:"id" doc:"Pokémon id or name"`
	VersionGroup string `query:"version_group" doc:"Version group id, name or url" default:"https://pokeapi.co/api/v2/version-group/9/"`
	Method       string `query:"method" doc:"Move learn method" default:"level-up"`
}

type PokemonMovesBody struct {
	Body []moves.FilteredMoveRecord
}

type PokemonInput struct {
	ID string `path:"id" doc:"Pokémon id or name"`
}

type PokemonSummaryBody struct {
	Body summary.Pokemon
}

type MoveInput struct {
	Name string `path:"name" doc:"Move id or name"`
}

type MoveSummaryBody struct {
	Body summary.Move
}

type Controller struct {
	fetcher Fetcher
}

func (c *Controller) RegisterRoutes(rctx common.RouteCreationContext) {
	defaultTags := []string{"Pokeapi"}
	common.AddHumaRoute(rctx, c.PokemonMoves, huma.Operation{
		OperationID: "get-pokemon-moves",
		Method:      http.MethodGet,
		Path:        "/api/pokemon/{id}/moves",
		Summary:     "Moves a Pokémon learns by one method in one version group",
		Tags:        defaultTags,
	})
	common.AddHumaRoute(rctx, c.PokemonSummary, huma.Operation{
		OperationID: "get-pokemon-summary",
		Method:      http.MethodGet,
		Path:        "/api/pokemon/{id}/summary",
		Tags:        defaultTags,
	})
	common.AddHumaRoute(rctx, c.MoveSummary, huma.Operation{
		OperationID: "get-move-summary",
		Method:      http.MethodGet,
		Path:        "/api/moves/{name}/summary",
		Tags:        defaultTags,
	})
}

func (c *Controller) PokemonMoves(ctx context.Context, in *PokemonMovesInput) (*PokemonMovesBody, huma.StatusError) {
	url, vg, err := c.fetcher.ResolveVersionGroup(ctx, in.VersionGroup)
	if err != nil {
		return nil, upstreamError(err)
	}
	if vg != nil && !vg.HasLearnMethod(in.Method) {
		return nil, huma.Error400BadRequest(fmt.Sprintf("version group %q has no learn method %q", vg.Name, in.Method))
	}
	p, err := c.fetcher.Pokemon(ctx, in.ID)
	if err != nil {
		return nil, upstreamError(err)
	}
	records, err := moves.Filter(p.Moves, url, in.Method)
	if err != nil {
		return nil, upstreamError(err)
	}
	return &PokemonMovesBody{Body: records}, nil
}

func (c *Controller) PokemonSummary(ctx context.Context, in *PokemonInput) (*PokemonSummaryBody, huma.StatusError) {
	p, err := c.fetcher.Pokemon(ctx, in.ID)
	if err != nil {
		return nil, upstreamError(err)
	}
	return &PokemonSummaryBody{Body: summary.FromPokemon(p)}, nil
}

func (c *Controller) MoveSummary(ctx context.Context, in *MoveInput) (*MoveSummaryBody, huma.StatusError) {
	m, err := c.fetcher.Move(ctx, in.Name)
	if err != nil {
		return nil, upstreamError(err)
	}
	return &MoveSummaryBody{Body: summary.FromMove(m)}, nil
}

func upstreamError(err error) huma.StatusError {
	switch {
	case errors.Is(err, pokeapi.ErrNotFound):
		return huma.Error404NotFound("resource not found on pokeapi", err)
	case errors.Is(err, moves.ErrMissingField):
		slog.Warn("malformed move data from pokeapi", slog.Any("error", err))
		return huma.Error502BadGateway("pokeapi returned malformed move data", err)
	default:
		slog.Error("fetching from pokeapi", slog.Any("error", err))
		return huma.Error502BadGateway("fetching from pokeapi failed", err)
	}
}

func MakeController(fetcher Fetcher) *Controller {
	return &Controller{fetcher: fetcher}
}
