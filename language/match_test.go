package language

import "testing"

func TestMatchSupportedExactMatchWins(t *testing.T) {
	desired := MustParse("fr")
	supported := []Code{MustParse("en"), MustParse("fr"), MustParse("de")}
	got, dist := MatchSupported(desired, supported, 25)
	if got != desired || dist != 0 {
		t.Errorf("MatchSupported(fr, [en,fr,de]) = (%v, %d), want (fr, 0)", got, dist)
	}
}

func TestMatchSupportedClosest(t *testing.T) {
	desired := MustParse("en-GB")
	supported := []Code{MustParse("fr"), MustParse("en-US")}
	got, dist := MatchSupported(desired, supported, 25)
	want := MustParse("en-US")
	if got != want {
		t.Errorf("MatchSupported(en-GB, [fr,en-US]) = %v, want %v (dist %d)", got, want, dist)
	}
}

func TestMatchSupportedNoneBelowCutoff(t *testing.T) {
	desired := MustParse("ja")
	supported := []Code{MustParse("en")}
	got, dist := MatchSupported(desired, supported, 10)
	if got != Unknown || dist != unknownDistance {
		t.Errorf("MatchSupported(ja, [en], cutoff=10) = (%v, %d), want (Unknown, %d)", got, dist, unknownDistance)
	}
}

func TestMatchDesiredRankPenalty(t *testing.T) {
	// The first preference has a decent match in supported; the second
	// preference has none below cutoff, so it must not be allowed to
	// override the first despite nominally costing only a rank penalty.
	supported := []Code{MustParse("fr"), MustParse("en-US")}
	candidates := []Code{MustParse("en-GB"), MustParse("de")}
	got, _ := MatchDesired(candidates, supported, DefaultMatchOptions)
	want := MustParse("en-US")
	if got != want {
		t.Errorf("MatchDesired = %v, want %v", got, want)
	}
}

func TestMatchDesiredPrefersExactAtAnyRank(t *testing.T) {
	supported := []Code{MustParse("en-US"), MustParse("fr")}
	candidates := []Code{MustParse("de"), MustParse("fr")}
	got, dist := MatchDesired(candidates, supported, DefaultMatchOptions)
	if got != MustParse("fr") || dist != DefaultMatchOptions.RankPenalty {
		t.Errorf("MatchDesired = (%v, %d), want (fr, %d)", got, dist, DefaultMatchOptions.RankPenalty)
	}
}

func TestMatchDesiredUnknownWhenNothingQualifies(t *testing.T) {
	supported := []Code{MustParse("ja")}
	candidates := []Code{MustParse("en")}
	got, dist := MatchDesired(candidates, supported, DefaultMatchOptions)
	if got != Unknown || dist != unknownDistance {
		t.Errorf("MatchDesired = (%v, %d), want (Unknown, %d)", got, dist, unknownDistance)
	}
}

func TestMatchLists(t *testing.T) {
	// The second preference is an exact match; even with its rank penalty,
	// that beats the first preference's merely-close match.
	supported := []Code{MustParse("en-US"), MustParse("fr")}
	desired := []Code{MustParse("en-GB"), MustParse("fr")}
	got, dist := MatchLists(desired, supported, DefaultMatchOptions)
	want := MustParse("fr")
	if got != want || dist != DefaultMatchOptions.RankPenalty {
		t.Errorf("MatchLists = (%v, %d), want (%v, %d)", got, dist, want, DefaultMatchOptions.RankPenalty)
	}
}
