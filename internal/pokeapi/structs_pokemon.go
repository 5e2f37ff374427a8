package pokeapi

import "github.com/nerdwave-nick/pokemoves/internal/moves"

type Pokemon struct {
	// The identifier for this resource.
	ID int `json:"id"`
	// The name for this resource.
	Name string `json:"name"`
	// The base experience gained for defeating this Pokémon.
	BaseExperience int `json:"base_experience"`
	// The height of this Pokémon in decimetres.
	Height int `json:"height"`
	// Set for exactly one Pokémon used as the default for each species.
	IsDefault bool `json:"is_default"`
	// Order for sorting. Almost national order, except families are grouped together.
	Order int `json:"order"`
	// The weight of this Pokémon in hectograms.
	Weight int `json:"weight"`
	// A list of forms this Pokémon can take on.
	Forms []NamedAPIResource `json:"forms"`
	// A list of moves along with learn methods and level details pertaining to specific version groups.
	Moves []moves.RawMoveEntry `json:"moves"`
	// The species this Pokémon belongs to.
	Species NamedAPIResource `json:"species"`
	// A list of base stat values for this Pokémon.
	Stats []PokemonStat `json:"stats"`
	// A list of details showing types this Pokémon has.
	Types []PokemonType `json:"types"`
}

type PokemonStat struct {
	// The stat the Pokémon has.
	Stat NamedAPIResource `json:"stat"`
	// The effort points (EV) the Pokémon has in the stat.
	Effort int `json:"effort"`
	// The base value of the stat.
	BaseStat int `json:"base_stat"`
}

type PokemonType struct {
	// The order the Pokémon's types are listed in.
	Slot int `json:"slot"`
	// The type the referenced Pokémon has.
	Type NamedAPIResource `json:"type"`
}

// FormName is the name of the first form, falling back to the pokemon name.
func (p *Pokemon) FormName() string {
	if len(p.Forms) > 0 && p.Forms[0].Name != "" {
		return p.Forms[0].Name
	}
	return p.Name
}
