package summary

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nerdwave-nick/pokemoves/internal/pokeapi"
)

func TestFromPokemon(t *testing.T) {
	t.Parallel()

	var p pokeapi.Pokemon
	raw := `{"id":25,"name":"pikachu","types":[{"slot":1,"type":{"name":"electric","url":"u"}}],
	"stats":[{"base_stat":35,"effort":0,"stat":{"name":"hp","url":"u"}},{"base_stat":90,"effort":2,"stat":{"name":"speed","url":"u"}}]}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}

	got := FromPokemon(&p)
	want := Pokemon{
		Name:      "pikachu",
		ID:        25,
		Types:     []string{"electric"},
		BaseStats: map[string]int{"hp": 35, "speed": 90},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestFromMove_KeepsNullsAndInfoKey(t *testing.T) {
	t.Parallel()

	var m pokeapi.Move
	raw := `{"id":252,"name":"fake-out","accuracy":100,"effect_chance":100,"pp":10,"priority":3,"power":40,
	"damage_class":{"name":"physical","url":"u"},"type":{"name":"normal","url":"u"},
	"meta":{"ailment":{"name":"none","url":"u"},"category":{"name":"damage","url":"u"},"min_hits":null,"max_hits":null,
	"min_turns":null,"max_turns":null,"drain":0,"healing":0,"crit_rate":0,"ailment_chance":0,"flinch_chance":100,"stat_chance":0}}`
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	m.Accuracy = nil

	b, err := json.Marshal(FromMove(&m))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, ok := doc["accuracy"]; !ok || v != nil {
		t.Fatalf("accuracy = %v (present %v), want null", v, ok)
	}
	info, ok := doc["Info"].(map[string]any)
	if !ok {
		t.Fatalf("Info missing in %s", b)
	}
	if info["flinch_chance"] != float64(100) || info["max_hits"] != nil {
		t.Fatalf("unexpected Info %v", info)
	}
	if entries, ok := doc["effect_entries"].([]any); !ok || len(entries) != 0 {
		t.Fatalf("effect_entries = %v, want []", doc["effect_entries"])
	}
}
