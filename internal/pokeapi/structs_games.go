package pokeapi

type VersionGroup struct {
	// The identifier for this resource.
	ID int `json:"id"`
	// The name for this resource.
	Name string `json:"name"`
	// Order for sorting. Almost by date of release, except similar versions are grouped together.
	Order int `json:"order"`
	// The generation this version was introduced in.
	Generation NamedAPIResource `json:"generation"`
	// A list of methods in which Pokémon can learn moves in this version group.
	MoveLearnMethods []NamedAPIResource `json:"move_learn_methods"`
	// The versions this version group owns.
	Versions []NamedAPIResource `json:"versions"`
}

// HasLearnMethod reports whether moves can be learned by the named method in this version group.
func (vg *VersionGroup) HasLearnMethod(name string) bool {
	for _, m := range vg.MoveLearnMethods {
		if m.Name == name {
			return true
		}
	}
	return false
}
