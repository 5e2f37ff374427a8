package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger"
	"github.com/nerdwave-nick/pokeapi-go"
	"github.com/redis/go-redis/v9"
)

var (
	_ pokeapi.Cache = (*OtterCache)(nil)
	_ pokeapi.Cache = (*BadgerCache)(nil)
	_ pokeapi.Cache = (*RedisCache)(nil)
	_ pokeapi.Cache = (*MultiLayerCache)(nil)
)

type StackOptions struct {
	// DBPath is the badger directory, created when missing.
	DBPath      string
	L1CacheSize int
	L1CacheTTL  time.Duration
	L2CacheTTL  time.Duration
	// RedisAddr adds a shared redis layer behind badger when set.
	RedisAddr string
}

// Stack owns every cache layer: otter in memory, badger on disk and optionally redis.
type Stack struct {
	*MultiLayerCache
	memory *OtterCache
	db     *badger.DB
	redis  *redis.Client
}

func OpenStack(opts StackOptions) (*Stack, error) {
	// persistent badger db and cache wrapper
	db, err := badger.Open(badger.DefaultOptions(opts.DBPath).WithLogger(&BadgerLoggerWrapper{}))
	if err != nil {
		return nil, fmt.Errorf("opening badger db at %q: %w", opts.DBPath, err)
	}
	badgerCache := NewBadgerCache(db, opts.L2CacheTTL)

	// in memory otter cache
	otterCache, err := NewOtterCache(opts.L1CacheSize, opts.L1CacheTTL)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("building otter cache: %w", err), db.Close())
	}

	s := &Stack{db: db, memory: otterCache}
	// multi layer cache with preference for the in memory cache
	layers := []pokeapi.Cache{otterCache, &badgerCache}
	if opts.RedisAddr != "" {
		s.redis = redis.NewClient(&redis.Options{
			Addr:         opts.RedisAddr,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.redis.Ping(ctx).Err(); err != nil {
			return nil, errors.Join(fmt.Errorf("connecting to redis at %q: %w", opts.RedisAddr, err), s.Close())
		}
		slog.Info("redis cache connected", slog.String("address", opts.RedisAddr))
		layers = append(layers, NewRedisCache(s.redis, opts.L2CacheTTL))
	}
	s.MultiLayerCache = NewMultiLayerCache(layers...)
	return s, nil
}

// StartGC runs badger value log garbage collection every interval until ctx is done.
func (s *Stack) StartGC(ctx context.Context, gcInterval time.Duration) {
	go func() {
		for {
			select {
			case <-time.After(gcInterval):
				err := s.db.RunValueLogGC(0.5)
				if err != nil {
					if !errors.Is(err, badger.ErrNoRewrite) {
						slog.Error("running the badger db gc", slog.Any("error", err))
					}
				}
			case <-ctx.Done():
				slog.Debug("badger gc loop shut down")
				return
			}
		}
	}()
}

func (s *Stack) Close() error {
	slog.Debug("closing cache stack", slog.Int("in_memory", s.memory.Len()))
	s.memory.Close()
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	errs = append(errs, s.db.Close())
	return errors.Join(errs...)
}
