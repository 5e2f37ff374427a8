package intapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/nerdwave-nick/pokemoves/internal/api/common"
	"github.com/nerdwave-nick/pokemoves/internal/moves"
	"github.com/nerdwave-nick/pokemoves/internal/pokeapi"
)

const redBlue = "https://pokeapi.co/api/v2/version-group/1/"

type fakeFetcher struct {
	pokemon map[string]string
}

func (f *fakeFetcher) Pokemon(_ context.Context, id string) (*pokeapi.Pokemon, error) {
	raw, ok := f.pokemon[id]
	if !ok {
		return nil, &pokeapi.StatusError{Endpoint: "pokemon/" + id + "/", StatusCode: http.StatusNotFound}
	}
	var p pokeapi.Pokemon
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (f *fakeFetcher) Move(_ context.Context, name string) (*pokeapi.Move, error) {
	if name != "tackle" {
		return nil, &pokeapi.StatusError{Endpoint: "move/" + name + "/", StatusCode: http.StatusNotFound}
	}
	power := 40
	return &pokeapi.Move{ID: 33, Name: "tackle", Power: &power}, nil
}

func (f *fakeFetcher) ResolveVersionGroup(_ context.Context, ref string) (string, *pokeapi.VersionGroup, error) {
	switch ref {
	case "red-blue":
		return redBlue, &pokeapi.VersionGroup{
			ID:               1,
			Name:             "red-blue",
			MoveLearnMethods: []pokeapi.NamedAPIResource{{Name: moves.LevelUp}, {Name: "machine"}},
		}, nil
	case "nowhere":
		return "", nil, &pokeapi.StatusError{Endpoint: "version-group/nowhere/", StatusCode: http.StatusNotFound}
	}
	return ref, nil, nil
}

func newTestAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	MakeController(&fakeFetcher{pokemon: map[string]string{
		"1": `{"id":1,"name":"bulbasaur","moves":[
			{"move":{"name":"tackle","url":"https://pokeapi.co/api/v2/move/33/"},"version_group_details":[
				{"level_learned_at":1,"move_learn_method":{"name":"level-up"},"version_group":{"url":"https://pokeapi.co/api/v2/version-group/1/"}},
				{"level_learned_at":1,"move_learn_method":{"name":"level-up"},"version_group":{"url":"https://pokeapi.co/api/v2/version-group/9/"}}]},
			{"move":{"name":"vine-whip","url":"https://pokeapi.co/api/v2/move/22/"},"version_group_details":[
				{"level_learned_at":13,"move_learn_method":{"name":"level-up"},"version_group":{"url":"https://pokeapi.co/api/v2/version-group/1/"}}]}],
			"types":[{"slot":1,"type":{"name":"grass","url":"t"}}],"stats":[{"base_stat":45,"stat":{"name":"hp","url":"s"}}]}`,
		"132": `{"id":132,"name":"ditto","moves":[{"move":{"name":"transform"},"version_group_details":[]}]}`,
	}}).RegisterRoutes(common.RouteCreationContext{API: api})
	return api
}

func decodeRecords(t *testing.T, body []byte) []moves.FilteredMoveRecord {
	t.Helper()
	var records []moves.FilteredMoveRecord
	if err := json.Unmarshal(body, &records); err != nil {
		t.Fatalf("decoding %s: %v", body, err)
	}
	return records
}

func TestPokemonMoves_DefaultTarget(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	resp := api.Get("/api/pokemon/1/moves")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.Code, resp.Body.String())
	}
	records := decodeRecords(t, resp.Body.Bytes())
	if len(records) != 1 || records[0].Move.Name != "tackle" || *records[0].Move.LearnData.VersionGroup.URL != moves.DefaultVersionGroupURL {
		t.Fatalf("unexpected records %s", resp.Body.String())
	}
}

func TestPokemonMoves_ByVersionGroupName(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	resp := api.Get("/api/pokemon/1/moves?version_group=red-blue&method=level-up")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.Code, resp.Body.String())
	}
	records := decodeRecords(t, resp.Body.Bytes())
	if len(records) != 2 || records[0].Move.Name != "tackle" || records[1].Move.Name != "vine-whip" {
		t.Fatalf("unexpected records %s", resp.Body.String())
	}
	if *records[1].Move.LearnData.LevelLearnedAt != 13 {
		t.Fatalf("learn data not carried over: %s", resp.Body.String())
	}
}

func TestPokemonMoves_Errors(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	cases := []struct {
		path string
		code int
	}{
		{"/api/pokemon/999/moves", http.StatusNotFound},
		{"/api/pokemon/1/moves?version_group=nowhere", http.StatusNotFound},
		{"/api/pokemon/1/moves?version_group=red-blue&method=tutor", http.StatusBadRequest},
		{"/api/pokemon/132/moves", http.StatusBadGateway},
	}
	for _, tc := range cases {
		if resp := api.Get(tc.path); resp.Code != tc.code {
			t.Errorf("GET %s = %d, want %d (%s)", tc.path, resp.Code, tc.code, resp.Body.String())
		}
	}
}

func TestSummaries(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)

	resp := api.Get("/api/pokemon/1/summary")
	if resp.Code != http.StatusOK {
		t.Fatalf("pokemon summary status = %d, body %s", resp.Code, resp.Body.String())
	}
	var p map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &p)
	if p["name"] != "bulbasaur" {
		t.Fatalf("unexpected summary %s", resp.Body.String())
	}

	resp = api.Get("/api/moves/tackle/summary")
	if resp.Code != http.StatusOK {
		t.Fatalf("move summary status = %d, body %s", resp.Code, resp.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &m)
	if m["power"] != float64(40) || m["accuracy"] != nil {
		t.Fatalf("unexpected summary %s", resp.Body.String())
	}

	if resp := api.Get("/api/moves/splash/summary"); resp.Code != http.StatusNotFound {
		t.Fatalf("missing move status = %d", resp.Code)
	}
}
