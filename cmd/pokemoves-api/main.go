package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/joho/godotenv"
	"github.com/nerdwave-nick/pokemoves/internal/api"
	"github.com/nerdwave-nick/pokemoves/internal/api/health"
	intapi "github.com/nerdwave-nick/pokemoves/internal/api/pokeapi"
	"github.com/nerdwave-nick/pokemoves/internal/cache"
	"github.com/nerdwave-nick/pokemoves/internal/logging"
	"github.com/nerdwave-nick/pokemoves/internal/pokeapi"
)

func startServer(ctx context.Context, opts *Options, server *http.Server, stack *cache.Stack) func() {
	return func() {
		// start background gc and closing handler
		stack.StartGC(ctx, time.Duration(opts.GCInterval)*time.Second)
		slog.Info("badger db background gc started...")

		slog.Info("server ready to listen...", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				return
			}
			slog.Error("error in listen and serve", slog.Any("error", err))
			log.Fatal(err)
		}
	}
}

func stopServerWithTimeout(cancelRunningProcesses context.CancelFunc, server *http.Server, stack *cache.Stack) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := server.Shutdown(ctx)
		if err != nil {
			slog.Error("shutting down http server", slog.Any("error", err))
		}

		cancelRunningProcesses()
		err = stack.Close()
		if err != nil {
			slog.Error("shutting down cache", slog.Any("error", err))
		}
	}
}

type Options struct {
	DBPath      string `doc:"The path of the badger db folder" default:".badger"`
	GCInterval  int    `doc:"The garbage collection interval of the badger db in seconds" default:"600"`
	L2CacheTTL  int    `doc:"The ttl of the larger l2 cache in seconds" default:"86400"`
	L1CacheTTL  int    `doc:"The ttl of the smaller l1 in-memory cache in seconds" default:"7200"`
	L1CacheSize int    `doc:"The size of the smaller l1 in-memory cache in number of items" default:"2000"`
	RedisAddr   string `doc:"Address of a redis server shared as an additional cache layer, disabled when empty" default:""`
	BaseURL     string `doc:"The pokeapi base url" default:"https://pokeapi.co/api/v2/"`
	Port        int    `doc:"Port to listen on." short:"p" default:"8080"`
	Level       string `doc:"The log level. Valid levels are debug, info, warn, and error." short:"l" default:"info"`
}

func (o *Options) Validate() error {
	var errs []error
	if o.DBPath == "" {
		errs = append(errs, fmt.Errorf("db path can't be empty"))
	}
	if o.L2CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("l2 ttl must be greater than 0, got %d", o.L2CacheTTL))
	}
	if o.L1CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("l1 ttl must be greater than 0, got %d", o.L1CacheTTL))
	}
	if o.L1CacheSize <= 0 {
		errs = append(errs, fmt.Errorf("l1 size must be greater than 0, got %d", o.L1CacheSize))
	}
	if o.GCInterval <= 0 {
		errs = append(errs, fmt.Errorf("gc interval must be greater than 0, got %d", o.GCInterval))
	}
	if o.Port <= 0 || o.Port > 65535 {
		errs = append(errs, fmt.Errorf("port must be between 1 and 65535, got %d", o.Port))
	}
	if !strings.HasPrefix(o.BaseURL, "http://") && !strings.HasPrefix(o.BaseURL, "https://") {
		errs = append(errs, fmt.Errorf("base url must be an http(s) url, got %q", o.BaseURL))
	}
	return errors.Join(errs...)
}

func main() {
	// SERVICE_* variables from a .env file feed the humacli options
	_ = godotenv.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cli := humacli.New(func(hooks humacli.Hooks, opts *Options) {
		logging.SetLevel(opts.Level)
		err := opts.Validate()
		if err != nil {
			slog.Error("invalid options", slog.Any("error", err))
			os.Exit(1)
		}

		stack, err := cache.OpenStack(cache.StackOptions{
			DBPath:      opts.DBPath,
			L1CacheSize: opts.L1CacheSize,
			L1CacheTTL:  time.Duration(opts.L1CacheTTL) * time.Second,
			L2CacheTTL:  time.Duration(opts.L2CacheTTL) * time.Second,
			RedisAddr:   opts.RedisAddr,
		})
		if err != nil {
			slog.Error("opening cache", slog.Any("error", err))
			os.Exit(1)
		}

		papiClient := pokeapi.NewClient(stack, http.Client{Timeout: 30 * time.Second}, pokeapi.WithBaseURL(opts.BaseURL))

		router := api.MakeRouter(
			http.NewServeMux(),
			[]api.Controller{
				health.MakeController(),
				intapi.MakeController(papiClient),
			},
		)
		slog.Debug("router created, proceeding to start backend...")

		server := &http.Server{
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			Addr:         fmt.Sprintf(":%d", opts.Port),
			Handler:      router,
		}

		hooks.OnStart(startServer(ctx, opts, server, stack))
		hooks.OnStop(stopServerWithTimeout(cancel, server, stack))
	})

	// Run the thing!
	cli.Run()
}
