package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/dgraph-io/badger"
	"github.com/redis/go-redis/v9"
)

type entry struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// recordingCache is an in-memory layer that counts calls and can be told to fail.
type recordingCache struct {
	items  map[string]any
	sets   int
	gets   int
	getErr error
	setErr error
}

func newRecordingCache() *recordingCache {
	return &recordingCache{items: map[string]any{}}
}

func (c *recordingCache) Set(endpoint string, value any) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	v := *(value.(*entry))
	c.items[endpoint] = v
	return nil
}

func (c *recordingCache) Get(endpoint string, value any) (bool, error) {
	c.gets++
	if c.getErr != nil {
		return false, c.getErr
	}
	v, ok := c.items[endpoint]
	if !ok {
		return false, nil
	}
	*(value.(*entry)) = v.(entry)
	return true, nil
}

func TestMultiLayerCache_BackfillsFasterLayers(t *testing.T) {
	t.Parallel()

	l1, l2, l3 := newRecordingCache(), newRecordingCache(), newRecordingCache()
	l3.items["pokemon/1/"] = entry{Name: "bulbasaur", Level: 1}
	c := NewMultiLayerCache(l1, l2, l3)

	var got entry
	found, err := c.Get("pokemon/1/", &got)
	if err != nil || !found {
		t.Fatalf("Get = (%v, %v), want hit", found, err)
	}
	if got.Name != "bulbasaur" {
		t.Fatalf("got %+v", got)
	}
	if l1.sets != 1 || l2.sets != 1 || l3.sets != 0 {
		t.Fatalf("back-fill sets = %d/%d/%d, want 1/1/0", l1.sets, l2.sets, l3.sets)
	}

	found, err = c.Get("pokemon/1/", &got)
	if err != nil || !found {
		t.Fatalf("second Get = (%v, %v), want hit", found, err)
	}
	if l2.gets != 1 {
		t.Fatalf("l2 consulted %d times, want 1", l2.gets)
	}
}

func TestMultiLayerCache_MissAndError(t *testing.T) {
	t.Parallel()

	l1, l2 := newRecordingCache(), newRecordingCache()
	c := NewMultiLayerCache(l1, l2)

	var got entry
	found, err := c.Get("pokemon/2/", &got)
	if err != nil || found {
		t.Fatalf("Get = (%v, %v), want miss", found, err)
	}

	if err := c.Set("pokemon/2/", &entry{Name: "ivysaur"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if l1.sets != 1 || l2.sets != 1 {
		t.Fatalf("Set reached %d/%d layers", l1.sets, l2.sets)
	}

	boom := errors.New("boom")
	l1.getErr = boom
	if _, err := c.Get("pokemon/2/", &got); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestMultiLayerCache_SetWritesPastFailingLayer(t *testing.T) {
	t.Parallel()

	l1, shared, l3 := newRecordingCache(), newRecordingCache(), newRecordingCache()
	down := errors.New("connection refused")
	shared.setErr = down
	c := NewMultiLayerCache(l1, shared, l3)

	key := "https://pokeapi.co/api/v2/pokemon/25/"
	err := c.Set(key, &entry{Name: "pikachu", Level: 5})
	if !errors.Is(err, down) {
		t.Fatalf("err = %v, want it to wrap the failing layer's error", err)
	}
	if _, ok := l1.items[key]; !ok {
		t.Fatal("first layer not written")
	}
	if _, ok := l3.items[key]; !ok {
		t.Fatal("layer after the failing one not written")
	}
}

func TestOtterCache_RoundTrip(t *testing.T) {
	t.Parallel()

	c, err := NewOtterCache(10, time.Minute)
	if err != nil {
		t.Fatalf("building otter: %v", err)
	}
	t.Cleanup(c.Close)

	var got entry
	if found, err := c.Get("move/33/", &got); err != nil || found {
		t.Fatalf("Get on empty cache = (%v, %v)", found, err)
	}
	if err := c.Set("move/33/", entry{Name: "tackle", Level: 1}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	found, err := c.Get("move/33/", &got)
	if err != nil || !found {
		t.Fatalf("Get = (%v, %v), want hit", found, err)
	}
	if got != (entry{Name: "tackle", Level: 1}) {
		t.Fatalf("got %+v", got)
	}
	if n := c.Len(); n != 1 {
		t.Fatalf("Len = %d, want 1", n)
	}
}

func openBadger(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(&BadgerLoggerWrapper{}))
	if err != nil {
		t.Fatalf("opening badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestBadgerCache_RoundTrip(t *testing.T) {
	t.Parallel()

	bc := NewBadgerCache(openBadger(t), time.Hour)

	var got entry
	if found, err := bc.Get("pokemon/4/", &got); err != nil || found {
		t.Fatalf("Get on empty cache = (%v, %v)", found, err)
	}
	if err := bc.Set("pokemon/4/", entry{Name: "charmander", Level: 5}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	found, err := bc.Get("pokemon/4/", &got)
	if err != nil || !found {
		t.Fatalf("Get = (%v, %v), want hit", found, err)
	}
	if got != (entry{Name: "charmander", Level: 5}) {
		t.Fatalf("got %+v", got)
	}
}

func TestStack_OpenAndClose(t *testing.T) {
	t.Parallel()

	s, err := OpenStack(StackOptions{
		DBPath:      t.TempDir(),
		L1CacheSize: 16,
		L1CacheTTL:  time.Minute,
		L2CacheTTL:  time.Hour,
	})
	if err != nil {
		t.Fatalf("OpenStack: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.StartGC(ctx, time.Hour)

	if err := s.Set("pokemon/7/", entry{Name: "squirtle"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	var got entry
	found, err := s.Get("pokemon/7/", &got)
	if err != nil || !found || got.Name != "squirtle" {
		t.Fatalf("Get = (%+v, %v, %v)", got, found, err)
	}

	cancel()
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestRedisCache_RoundTrip(t *testing.T) {
	addr := os.Getenv("POKEMOVES_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("POKEMOVES_TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	rc := NewRedisCache(client, time.Minute)

	key := "test/" + t.Name() + "/"
	t.Cleanup(func() { client.Del(context.Background(), redisKeyPrefix+key) })

	if err := rc.Set(key, entry{Name: "pikachu", Level: 25}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	var got entry
	found, err := rc.Get(key, &got)
	if err != nil || !found {
		t.Fatalf("Get = (%v, %v), want hit", found, err)
	}
	if got != (entry{Name: "pikachu", Level: 25}) {
		t.Fatalf("got %+v", got)
	}
	if found, err := rc.Get("test/missing/", &got); err != nil || found {
		t.Fatalf("Get missing = (%v, %v), want miss", found, err)
	}
}
