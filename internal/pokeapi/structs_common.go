package pokeapi

type NamedAPIResource struct {
	// The name of the referenced resource.
	Name string `json:"name"`
	// The URL of the referenced resource.
	URL string `json:"url"`
}

type VerboseEffect struct {
	// The localized effect text for an API resource in a specific language.
	Effect string `json:"effect"`
	// The localized effect text in brief.
	ShortEffect string `json:"short_effect"`
	// The language this effect is in.
	Language NamedAPIResource `json:"language"`
}
