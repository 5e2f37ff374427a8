package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/nerdwave-nick/pokemoves/internal/cache"
	"github.com/nerdwave-nick/pokemoves/internal/export"
	"github.com/nerdwave-nick/pokemoves/internal/harvest"
	"github.com/nerdwave-nick/pokemoves/internal/logging"
	"github.com/nerdwave-nick/pokemoves/internal/pokeapi"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envPrefix is prepended to the upper snake case flag name, e.g. POKEMOVES_DB_PATH.
const envPrefix = "POKEMOVES_"

type RootOptions struct {
	LogLevel    string
	DBPath      string
	GCInterval  int
	L2CacheTTL  int
	L1CacheTTL  int
	L1CacheSize int
	RedisAddr   string
	BaseURL     string
	Timeout     int
	Indent      bool
	KeepGoing   bool
}

func concatErr(err error, olderr error) error {
	if olderr != nil {
		return fmt.Errorf("%s\n%w", err.Error(), olderr)
	}
	return err
}

func (o *RootOptions) Validate() error {
	var err error
	if o.DBPath == "" {
		err = concatErr(fmt.Errorf("db-path can't be empty"), err)
	}
	if o.L2CacheTTL <= 0 {
		err = concatErr(fmt.Errorf("l2-ttl must be greater than 0"), err)
	}
	if o.L1CacheTTL <= 0 {
		err = concatErr(fmt.Errorf("l1-ttl must be greater than 0"), err)
	}
	if o.L1CacheSize <= 0 {
		err = concatErr(fmt.Errorf("l1-size must be greater than 0"), err)
	}
	if o.GCInterval <= 0 {
		err = concatErr(fmt.Errorf("gc-interval must be greater than 0"), err)
	}
	if o.Timeout <= 0 {
		err = concatErr(fmt.Errorf("timeout must be greater than 0"), err)
	}
	if !strings.HasPrefix(o.BaseURL, "http://") && !strings.HasPrefix(o.BaseURL, "https://") {
		err = concatErr(fmt.Errorf("base-url must be an http(s) url"), err)
	}
	return err
}

var rootOpts = &RootOptions{}

// Execute runs the command line. Cobra has already printed the error when one is returned.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootOpts.DBPath, "db-path", ".badger", "The path of the badger db folder. Will be created when it doesn't exist.")
	flags.IntVar(&rootOpts.GCInterval, "gc-interval", 600, "The garbage collection interval of the badger db in seconds. Needs to be greater than 0.")
	flags.IntVar(&rootOpts.L2CacheTTL, "l2-ttl", 86400, "The ttl of the larger l2 cache in seconds. Needs to be greater than 0.")
	flags.IntVar(&rootOpts.L1CacheTTL, "l1-ttl", 7200, "The ttl of the smaller l1 cache in seconds. Needs to be greater than 0.")
	flags.IntVar(&rootOpts.L1CacheSize, "l1-size", 2000, "The size of the smaller l1 cache in number of items. Needs to be greater than 0.")
	flags.StringVar(&rootOpts.RedisAddr, "redis-addr", "", "Address of a redis server shared as an additional cache layer. Disabled when empty.")
	flags.StringVar(&rootOpts.BaseURL, "base-url", pokeapi.DefaultBaseURL, "The pokeapi base url.")
	flags.IntVar(&rootOpts.Timeout, "timeout", 30, "The http timeout for a single pokeapi request in seconds.")
	flags.BoolVar(&rootOpts.Indent, "indent", false, "Indent the written json documents.")
	flags.BoolVar(&rootOpts.KeepGoing, "keep-going", false, "Log and skip resources that fail instead of stopping.")
	flags.StringVarP(&rootOpts.LogLevel, "level", "l", "info", "The log level. Valid levels are debug, info, warn, and error.")

	rootCmd.AddCommand(movesCmd, statsCmd, moveCmd)
}

var rootCmd = &cobra.Command{
	Use:   "pokemoves",
	Short: "pokemoves - harvest pokeapi move lists, stats and move details into json files",
	Long: "pokemoves - harvest pokeapi move lists, stats and move details into json files\n\n" +
		"Every flag can also be set through the environment as " + envPrefix + "<FLAG_NAME>, a .env file in the working directory is loaded first.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		_ = godotenv.Load()
		if err := applyEnv(cmd.Flags()); err != nil {
			return err
		}
		if err := rootOpts.Validate(); err != nil {
			return fmt.Errorf("incorrect command usage:\n%w\n", err)
		}
		logging.SetLevel(rootOpts.LogLevel)
		return nil
	},
}

// applyEnv sets every flag not given on the command line from its environment variable.
func applyEnv(flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed || err != nil {
			return
		}
		key := envPrefix + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		value, ok := os.LookupEnv(key)
		if !ok {
			return
		}
		if serr := f.Value.Set(value); serr != nil {
			err = fmt.Errorf("invalid value %q for %s: %w", value, key, serr)
		}
	})
	return err
}

// withHarvester opens the cache stack, builds a harvester writing to outDir
// and runs fn with it. Everything is closed again when fn returns.
func withHarvester(ctx context.Context, outDir string, fn func(*pokeapi.Client, *harvest.Harvester) error) error {
	stack, err := cache.OpenStack(cache.StackOptions{
		DBPath:      rootOpts.DBPath,
		L1CacheSize: rootOpts.L1CacheSize,
		L1CacheTTL:  time.Duration(rootOpts.L1CacheTTL) * time.Second,
		L2CacheTTL:  time.Duration(rootOpts.L2CacheTTL) * time.Second,
		RedisAddr:   rootOpts.RedisAddr,
	})
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		if err := stack.Close(); err != nil {
			slog.Error("shutting down cache", slog.Any("error", err))
		}
	}()
	stack.StartGC(ctx, time.Duration(rootOpts.GCInterval)*time.Second)

	out, err := export.NewDir(outDir, rootOpts.Indent)
	if err != nil {
		return err
	}

	client := pokeapi.NewClient(
		stack,
		http.Client{Timeout: time.Duration(rootOpts.Timeout) * time.Second},
		pokeapi.WithBaseURL(rootOpts.BaseURL),
	)
	return fn(client, harvest.New(client, out, harvest.Options{KeepGoing: rootOpts.KeepGoing}))
}

func logReport(what string, report harvest.Report, started time.Time) {
	slog.Info(what+" harvest finished",
		slog.Int("processed", report.Processed),
		slog.Int("written", report.Written),
		slog.Int("skipped", report.Skipped),
		slog.Int("records", report.Records),
		slog.Duration("took", time.Since(started)),
	)
}
