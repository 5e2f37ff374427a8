package pokeapi

type Move struct {
	// The identifier for this resource.
	ID int `json:"id"`
	// The name for this resource.
	Name string `json:"name"`
	// The percent value of how likely this move is to be successful.
	Accuracy *int `json:"accuracy"`
	// The percent value of how likely it is this moves effect will happen.
	EffectChance *int `json:"effect_chance"`
	// Power points. The number of times this move can be used.
	PP *int `json:"pp"`
	// A value between -8 and 8. Sets the order in which moves are executed during battle.
	Priority int `json:"priority"`
	// The base power of this move with a value of 0 if it does not have a base power.
	Power *int `json:"power"`
	// The type of damage the move inflicts on the target, e.g. physical.
	DamageClass NamedAPIResource `json:"damage_class"`
	// The effect of this move listed in different languages.
	EffectEntries []VerboseEffect `json:"effect_entries"`
	// The generation in which this move was introduced.
	Generation NamedAPIResource `json:"generation"`
	// Metadata about this move.
	Meta *MoveMetaData `json:"meta"`
	// The elemental type of this move.
	Type NamedAPIResource `json:"type"`
}

type MoveMetaData struct {
	// The status ailment this move inflicts on its target.
	Ailment NamedAPIResource `json:"ailment"`
	// The category of move this move falls under, e.g. damage or ailment.
	Category NamedAPIResource `json:"category"`
	// The minimum number of times this move hits. Null if it always only hits once.
	MinHits *int `json:"min_hits"`
	// The maximum number of times this move hits. Null if it always only hits once.
	MaxHits *int `json:"max_hits"`
	// The minimum number of turns this move continues to take effect. Null if it always only lasts one turn.
	MinTurns *int `json:"min_turns"`
	// The maximum number of turns this move continues to take effect. Null if it always only lasts one turn.
	MaxTurns *int `json:"max_turns"`
	// HP drain (if positive) or Recoil damage (if negative), in percent of damage done.
	Drain int `json:"drain"`
	// The amount of hp gained by the attacking Pokemon, in percent of it's maximum HP.
	Healing int `json:"healing"`
	// Critical hit rate bonus.
	CritRate int `json:"crit_rate"`
	// The likelihood this attack will cause an ailment.
	AilmentChance int `json:"ailment_chance"`
	// The likelihood this attack will cause the target Pokémon to flinch.
	FlinchChance int `json:"flinch_chance"`
	// The likelihood this attack will cause a stat change in the target Pokémon.
	StatChance int `json:"stat_chance"`
}
