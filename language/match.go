package language

// MatchOptions configures the cutoff and per-position rank penalty used by
// MatchDesired and MatchLists. The zero value is not valid; use
// DefaultMatchOptions.
type MatchOptions struct {
	Cutoff      int32
	RankPenalty int32
}

// DefaultMatchOptions is cutoff 25, rank penalty 5.
var DefaultMatchOptions = MatchOptions{Cutoff: 25, RankPenalty: 5}

// unknownDistance is the conventional distance reported alongside Unknown
// when no candidate falls below the cutoff.
const unknownDistance = 1000

// MatchSupported finds the element of supported closest to desired. If
// desired appears in supported it is returned immediately with distance 0,
// regardless of position. Otherwise the minimum-distance element below
// cutoff wins ties going to the first encountered. If nothing qualifies,
// it returns (Unknown, unknownDistance).
func MatchSupported(desired Code, supported []Code, cutoff int32) (Code, int32) {
	for _, s := range supported {
		if s == desired {
			return s, 0
		}
	}
	best := Unknown
	bestDist := int32(unknownDistance)
	for _, s := range supported {
		d := Distance(desired, s)
		if d < cutoff && d < bestDist {
			best, bestDist = s, d
		}
	}
	return best, bestDist
}

// MatchDesired iterates candidates (the user's preferences, most preferred
// first) and, for each, finds its best match in supported via
// MatchSupported. A rank penalty of opts.RankPenalty is added to the cost
// for every position past the first; the search stops early once the
// accumulated penalty alone exceeds the best cost found so far. It returns
// the match with the lowest cost together with that cost (its distance
// plus its rank penalty), or (Unknown, unknownDistance) if nothing falls
// below opts.Cutoff.
func MatchDesired(candidates, supported []Code, opts MatchOptions) (Code, int32) {
	best := Unknown
	bestCost := int32(unknownDistance)
	for i, d := range candidates {
		rank := opts.RankPenalty * int32(i)
		if rank >= bestCost {
			break
		}
		match, dist := MatchSupported(d, supported, opts.Cutoff)
		if match == Unknown {
			continue
		}
		cost := dist + rank
		if cost < bestCost {
			best, bestCost = match, cost
		}
	}
	if best == Unknown {
		return Unknown, unknownDistance
	}
	return best, bestCost
}

// MatchLists iterates desired (user preferences, most preferred first) and,
// for each, runs MatchSupported against supported, accumulating the same
// rank penalty and early-exit as MatchDesired. It returns the match with
// the lowest cost together with that cost (distance plus rank penalty), or
// (Unknown, unknownDistance) if nothing falls below opts.Cutoff.
func MatchLists(desired, supported []Code, opts MatchOptions) (Code, int32) {
	return MatchDesired(desired, supported, opts)
}
