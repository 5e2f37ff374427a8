// Package summary reduces pokeapi resources to the flat documents the battle
// simulator loads.
package summary

import "github.com/nerdwave-nick/pokemoves/internal/pokeapi"

type Pokemon struct {
	Name      string         `json:"name"`
	ID        int            `json:"id"`
	Types     []string       `json:"types"`
	BaseStats map[string]int `json:"base_stats"`
}

// Move keeps nullable numbers as pointers so they encode as null.
type Move struct {
	Name          string                   `json:"name"`
	Accuracy      *int                     `json:"accuracy"`
	EffectChance  *int                     `json:"effect_chance"`
	PP            *int                     `json:"pp"`
	Priority      int                      `json:"priority"`
	Power         *int                     `json:"power"`
	DamageClass   pokeapi.NamedAPIResource `json:"damage_class"`
	Type          pokeapi.NamedAPIResource `json:"type"`
	EffectEntries []pokeapi.VerboseEffect  `json:"effect_entries"`
	Info          *pokeapi.MoveMetaData    `json:"Info"`
}

func FromPokemon(p *pokeapi.Pokemon) Pokemon {
	s := Pokemon{
		Name:      p.Name,
		ID:        p.ID,
		Types:     make([]string, 0, len(p.Types)),
		BaseStats: make(map[string]int, len(p.Stats)),
	}
	for _, t := range p.Types {
		s.Types = append(s.Types, t.Type.Name)
	}
	for _, st := range p.Stats {
		s.BaseStats[st.Stat.Name] = st.BaseStat
	}
	return s
}

func FromMove(m *pokeapi.Move) Move {
	effects := m.EffectEntries
	if effects == nil {
		effects = []pokeapi.VerboseEffect{}
	}
	return Move{
		Name:          m.Name,
		Accuracy:      m.Accuracy,
		EffectChance:  m.EffectChance,
		PP:            m.PP,
		Priority:      m.Priority,
		Power:         m.Power,
		DamageClass:   m.DamageClass,
		Type:          m.Type,
		EffectEntries: effects,
		Info:          m.Meta,
	}
}
