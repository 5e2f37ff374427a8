// Package harvest walks ranges of pokeapi resources and writes one reduced
// JSON document per resource. Resources are processed one after the other.
package harvest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/nerdwave-nick/pokemoves/internal/moves"
	"github.com/nerdwave-nick/pokemoves/internal/pokeapi"
	"github.com/nerdwave-nick/pokemoves/internal/summary"
)

type Fetcher interface {
	Pokemon(ctx context.Context, idOrName string) (*pokeapi.Pokemon, error)
	Move(ctx context.Context, idOrName string) (*pokeapi.Move, error)
}

type Writer interface {
	Write(name string, v any) (string, error)
}

type Options struct {
	// KeepGoing logs and skips failing resources instead of aborting the run.
	KeepGoing bool
}

type Report struct {
	Processed int
	Written   int
	Skipped   int
	// Records is the number of filtered move records written, only set by Moves.
	Records int
}

type Harvester struct {
	fetcher Fetcher
	out     Writer
	opts    Options
}

func New(fetcher Fetcher, out Writer, opts Options) *Harvester {
	return &Harvester{fetcher: fetcher, out: out, opts: opts}
}

// Moves writes the moves each pokemon in [from, to] learns for target, named after the pokemon's first form.
func (h *Harvester) Moves(ctx context.Context, from, to int, target moves.Target) (Report, error) {
	return h.idRange(ctx, from, to, func(id string) (int, error) {
		p, err := h.fetcher.Pokemon(ctx, id)
		if err != nil {
			return 0, err
		}
		records, err := moves.FilterTarget(p.Moves, target)
		if err != nil {
			return 0, fmt.Errorf("filtering moves of %q: %w", p.Name, err)
		}
		path, err := h.out.Write(p.FormName(), records)
		if err != nil {
			return 0, err
		}
		slog.Info("moves written", slog.String("pokemon", p.Name), slog.Int("records", len(records)), slog.String("path", path))
		return len(records), nil
	})
}

// Stats writes name, id, types and base stats of each pokemon in [from, to].
func (h *Harvester) Stats(ctx context.Context, from, to int) (Report, error) {
	return h.idRange(ctx, from, to, func(id string) (int, error) {
		p, err := h.fetcher.Pokemon(ctx, id)
		if err != nil {
			return 0, err
		}
		path, err := h.out.Write(p.Name, summary.FromPokemon(p))
		if err != nil {
			return 0, err
		}
		slog.Info("stats written", slog.String("pokemon", p.Name), slog.String("path", path))
		return 0, nil
	})
}

// MoveDetails writes the battle relevant details of every named move.
func (h *Harvester) MoveDetails(ctx context.Context, names []string) (Report, error) {
	return h.each(ctx, names, func(name string) (int, error) {
		m, err := h.fetcher.Move(ctx, name)
		if err != nil {
			return 0, err
		}
		path, err := h.out.Write(m.Name, summary.FromMove(m))
		if err != nil {
			return 0, err
		}
		slog.Info("move written", slog.String("move", m.Name), slog.String("path", path))
		return 0, nil
	})
}

func (h *Harvester) idRange(ctx context.Context, from, to int, fn func(id string) (int, error)) (Report, error) {
	if from < 1 || to < from {
		return Report{}, fmt.Errorf("invalid id range %d..%d", from, to)
	}
	ids := make([]string, 0, to-from+1)
	for id := from; id <= to; id++ {
		ids = append(ids, strconv.Itoa(id))
	}
	return h.each(ctx, ids, fn)
}

func (h *Harvester) each(ctx context.Context, keys []string, fn func(key string) (int, error)) (Report, error) {
	var (
		report Report
		errs   []error
	)
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return report, errors.Join(append(errs, err)...)
		}
		report.Processed++
		n, err := fn(key)
		if err != nil {
			err = fmt.Errorf("%s: %w", key, err)
			if !h.opts.KeepGoing {
				return report, err
			}
			slog.Warn("skipping", slog.String("key", key), slog.Any("error", err))
			report.Skipped++
			errs = append(errs, err)
			continue
		}
		report.Written++
		report.Records += n
	}
	return report, errors.Join(errs...)
}
