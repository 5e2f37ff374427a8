package moves

import "encoding/json"

const (
	// DefaultVersionGroupURL is the version group the move lists are harvested for unless told otherwise.
	DefaultVersionGroupURL = "https://pokeapi.co/api/v2/version-group/9/"
	// LevelUp is the learn method name for moves learned by levelling up.
	LevelUp = "level-up"
)

// Resource is a named pokeapi reference. Fields are pointers so that absent
// keys can be told apart from empty strings.
type Resource struct {
	Name *string `json:"name,omitempty"`
	URL  *string `json:"url,omitempty"`
}

// RawMoveEntry is one element of a pokemon's "moves" list as served by pokeapi.
type RawMoveEntry struct {
	// The move being learned.
	Move *Resource `json:"move,omitempty"`
	// The details of the version groups in which the pokemon can learn the move.
	VersionGroupDetails []RawVersionDetail `json:"version_group_details"`
}

// RawVersionDetail describes how a move is learned in one version group.
//
// The detail keeps the exact JSON it was decoded from and marshals back to it,
// so fields this type does not model survive a round trip.
type RawVersionDetail struct {
	// The minimum level to learn the move.
	LevelLearnedAt *int `json:"level_learned_at,omitempty"`
	// The method by which the move is learned.
	MoveLearnMethod *Resource `json:"move_learn_method,omitempty"`
	// The version group in which the move is learned.
	VersionGroup *Resource `json:"version_group,omitempty"`

	Raw json.RawMessage `json:"-"`
}

func (d *RawVersionDetail) UnmarshalJSON(b []byte) error {
	type plain RawVersionDetail
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*d = RawVersionDetail(p)
	d.Raw = append(json.RawMessage(nil), b...)
	return nil
}

func (d RawVersionDetail) MarshalJSON() ([]byte, error) {
	if len(d.Raw) > 0 {
		return d.Raw, nil
	}
	type plain RawVersionDetail
	return json.Marshal(plain(d))
}

// FilteredMoveRecord is the reshaped output for one matching move/detail pair.
type FilteredMoveRecord struct {
	Move FilteredMove `json:"move"`
}

type FilteredMove struct {
	Name      string           `json:"name"`
	URL       string           `json:"url"`
	LearnData RawVersionDetail `json:"learn_data"`
}

// Target selects the version group and learn method a filter keeps.
type Target struct {
	VersionGroupURL string
	LearnMethod     string
}

// DefaultTarget is level-up moves in DefaultVersionGroupURL.
func DefaultTarget() Target {
	return Target{VersionGroupURL: DefaultVersionGroupURL, LearnMethod: LevelUp}
}
