package language

// Alias tables, curated from CLDR's aliases.json and the BCP 47 registry's
// grandfathered-tag list. A full build would regenerate these from the
// JSON source; this is the subset needed to realize every alias case this
// package is tested against.

func init() {
	for tag, code := range tagReplaceData {
		tagReplace[tag] = code
	}
	for lang, code := range langReplaceData {
		langReplace[langField(lang)] = code
	}
	for region, code := range regionReplaceData {
		regionReplace[regionFieldOf(region)] = code
	}
}

// tagReplaceData holds whole-tag aliases: irregular and grandfathered
// forms that never fit the shape-driven parser.
var tagReplaceData = map[string]Code{
	"sgn-be-fr":   mustCode("sfb", "", ""),
	"sgn-be-nl":   mustCode("vgt", "", ""),
	"sgn-ch-de":   mustCode("sgg", "", ""),
	"sgn-us":      mustCode("ase", "", ""),
	"no-bok":      mustCode("nb", "", ""),
	"no-bokmal":   mustCode("nb", "", ""),
	"no-nyn":      mustCode("nn", "", ""),
	"no-nynorsk":  mustCode("nn", "", ""),
	"zh-guoyu":    mustCode("cmn", "", ""),
	"zh-cmn":      mustCode("cmn", "", ""),
	"zh-hakka":    mustCode("hak", "", ""),
	"zh-min-nan":  mustCode("nan", "", ""),
	"zh-gan":      mustCode("gan", "", ""),
	"zh-wuu":      mustCode("wuu", "", ""),
	"zh-yue":      mustCode("yue", "", ""),
	"zh-xiang":    mustCode("hsn", "", ""),
	"zh-cn":       mustCode("zh", "hans", "cn"),
	"i-hak":       mustCode("hak", "", ""),
	"i-lux":       mustCode("lb", "", ""),
	"i-navajo":    mustCode("nv", "", ""),
	"i-default":   0,
	"i-klingon":   mustCode("tlh", "", ""),
	"art-lojban":  mustCode("jbo", "", ""),
	"cel-gaulish": mustCode("cel", "", ""),
	"en-gb-oed":   mustCode("en", "", "gb"),
}

// langReplaceData holds language-subtag aliases: ISO 639-2 bibliographic
// codes and other deprecated/macrolanguage codes that CLDR collapses onto
// a single modern subtag (optionally with a default script).
var langReplaceData = map[string]Code{
	"fra": mustCode("fr", "", ""),
	"fre": mustCode("fr", "", ""),
	"sh":  mustCode("sr", "latn", ""),
	"mo":  mustCode("ro", "", ""),
	"tl":  mustCode("fil", "", ""),
	"in":  mustCode("id", "", ""),
	"iw":  mustCode("he", "", ""),
	"ji":  mustCode("yi", "", ""),
	"jw":  mustCode("jv", "", ""),
}

// regionReplaceData holds region aliases: withdrawn or superseded ISO
// 3166 codes mapped to their CLDR-documented successor.
var regionReplaceData = map[string]Code{
	"dd":  mustCode("", "", "de"),
	"uk":  mustCode("", "", "gb"),
	"840": mustCode("", "", "us"),
	"qu":  mustCode("", "", "eu"),
}
