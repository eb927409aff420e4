package language

import "strings"

// mustCode builds a Code directly from lowercase subtag strings, bypassing
// Parse so that the table literals in data_*.go never depend on the very
// tables they're populating. Pass "" to leave a field unset.
func mustCode(lang, script, region string) Code {
	var c Code
	if lang != "" {
		v, err := encodeSubtag(strings.ToLower(lang), languageWidth)
		if err != nil {
			panic(err)
		}
		c |= Code(v) << languageShift
	}
	if script != "" {
		v, err := encodeSubtag(strings.ToLower(script), scriptWidth)
		if err != nil {
			panic(err)
		}
		c |= Code(v) << scriptShift
	}
	if region != "" {
		v, err := encodeSubtag(strings.ToLower(region), regionWidth)
		if err != nil {
			panic(err)
		}
		c |= Code(v) << regionShift
	}
	return c
}

// langField returns just the language-field bits for lang, the key
// granularity used by langReplace.
func langField(lang string) Code {
	return mustCode(lang, "", "")
}

// regionFieldOf returns just the region-field bits for region, the key
// granularity used by regionReplace.
func regionFieldOf(region string) Code {
	return mustCode("", "", region)
}

// distanceKey is the lookup key into matchDistance: the ordered pair of
// (desired, supported) codes at whatever granularity the entry was
// recorded at (bare language, language+script, or full maximized code).
type distanceKey struct {
	desired, supported Code
}

// tagReplace holds whole-tag aliases: irregular and grandfathered forms
// that bypass the shape-driven parser entirely. Populated in
// data_aliases.go.
var tagReplace = map[string]Code{}

// langReplace holds language-subtag aliases, keyed by the masked language
// field. Populated in data_aliases.go.
var langReplace = map[Code]Code{}

// regionReplace holds region aliases, keyed by the masked region field.
// Populated in data_aliases.go.
var regionReplace = map[Code]Code{}

// likelySubtags maps a partial code to its maximal form. Populated
// in data_likely.go.
var likelySubtags = map[Code]Code{}

// matchDistance holds pre-computed distances for specific pairs, at
// whatever cascade level (language, language+script, or full maximized
// code) the entry was recorded. Populated in data_distance.go.
var matchDistance = map[distanceKey]int32{}
