package domain

// Match is the verdict an adapter gives for a single selector
type Match int

const (
	// MatchNone means the adapter does not handle the selector
	MatchNone Match = iota
	// MatchShared means the adapter handles it and later adapters may too
	MatchShared
	// MatchExclusive means the adapter handles it and no later adapter sees it
	MatchExclusive
)

// String returns the verdict name
func (m Match) String() string {
	switch m {
	case MatchShared:
		return "shared"
	case MatchExclusive:
		return "exclusive"
	default:
		return "none"
	}
}

// ExclusiveOrNone returns MatchExclusive when ok, MatchNone otherwise
func ExclusiveOrNone(ok bool) Match {
	if ok {
		return MatchExclusive
	}
	return MatchNone
}

// SharedOrNone returns MatchShared when ok, MatchNone otherwise
func SharedOrNone(ok bool) Match {
	if ok {
		return MatchShared
	}
	return MatchNone
}
