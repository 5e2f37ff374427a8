package moves

// Filter returns, in encounter order, one record per version group detail
// that matches both the version group url and the learn method exactly.
//
// The whole input is validated before anything is returned: any entry or
// detail missing a required field fails the call with a *MissingFieldError.
func Filter(moves []RawMoveEntry, versionGroupURL, learnMethod string) ([]FilteredMoveRecord, error) {
	filtered := make([]FilteredMoveRecord, 0)
	for i, entry := range moves {
		if err := validateEntry(i, entry); err != nil {
			return nil, err
		}
		for j, detail := range entry.VersionGroupDetails {
			if err := validateDetail(i, j, detail); err != nil {
				return nil, err
			}
			if *detail.VersionGroup.URL != versionGroupURL || *detail.MoveLearnMethod.Name != learnMethod {
				continue
			}
			filtered = append(filtered, FilteredMoveRecord{
				Move: FilteredMove{
					Name:      *entry.Move.Name,
					URL:       *entry.Move.URL,
					LearnData: detail,
				},
			})
		}
	}
	return filtered, nil
}

// FilterTarget is Filter with the pair bundled in a Target.
func FilterTarget(moves []RawMoveEntry, target Target) ([]FilteredMoveRecord, error) {
	return Filter(moves, target.VersionGroupURL, target.LearnMethod)
}

func validateEntry(i int, entry RawMoveEntry) error {
	switch {
	case entry.Move == nil:
		return missing("moves[%d].move", i)
	case entry.Move.Name == nil:
		return missing("moves[%d].move.name", i)
	case entry.Move.URL == nil:
		return missing("moves[%d].move.url", i)
	case entry.VersionGroupDetails == nil:
		return missing("moves[%d].version_group_details", i)
	}
	return nil
}

func validateDetail(i, j int, detail RawVersionDetail) error {
	switch {
	case detail.VersionGroup == nil:
		return missing("moves[%d].version_group_details[%d].version_group", i, j)
	case detail.VersionGroup.URL == nil:
		return missing("moves[%d].version_group_details[%d].version_group.url", i, j)
	case detail.MoveLearnMethod == nil:
		return missing("moves[%d].version_group_details[%d].move_learn_method", i, j)
	case detail.MoveLearnMethod.Name == nil:
		return missing("moves[%d].version_group_details[%d].move_learn_method.name", i, j)
	}
	return nil
}
