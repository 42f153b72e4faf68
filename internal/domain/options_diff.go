package domain

// OptionsDiff lists the flag names whose values differ between two
// resolutions. An empty diff means the build orchestration can reuse its
// previous configure pass.
type OptionsDiff struct {
	Changed []string
}

// IsEmpty reports whether any option changed.
func (d OptionsDiff) IsEmpty() bool {
	return len(d.Changed) == 0
}

// DiffOptions compares two option records flag by flag.
func DiffOptions(prev, next Options) OptionsDiff {
	diff := OptionsDiff{}
	for _, flag := range allFlags {
		prevValue, _ := prev.Value(flag.Name)
		nextValue, _ := next.Value(flag.Name)
		if prevValue != nextValue {
			diff.Changed = append(diff.Changed, flag.Name)
		}
	}
	return diff
}
