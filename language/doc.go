// Package language implements BCP 47 language tags and the related
// operations defined by Unicode Technical Standard #35 (LDML): alias
// substitution, likely-subtag addition ("maximize"), likely-subtag removal
// ("minimize"), and language-match distance for selecting a best supported
// locale from a user's preferred list.
//
// A tag is represented by a Code, a small, immutable, comparable value that
// packs the language, extended-language, script, and region subtags into a
// single 64-bit integer. Codes are cheap to copy and compare; there is no
// pointer chasing and no shared mutable state, so any number of goroutines
// may call into this package concurrently without synchronization.
//
// Parsing and normalizing
//
// Parse turns an arbitrary BCP 47 string into a Code, applying CLDR's alias
// substitutions along the way:
//
//	c, _ := language.Parse("zh-CN")
//	fmt.Println(c) // zh-Hans-CN
//
// Likely subtags
//
// Maximize fills in a Code's missing script and region using CLDR's likely
// subtags data; Minimize removes whatever Maximize would add back:
//
//	language.MustParse("en").Maximize()         // en-Latn-US
//	language.MustParse("zh-Hant-TW").Minimize() // zh-Hant
//
// Matching
//
// MatchSupported, MatchDesired, and MatchLists select the best of a list of
// supported locales for a user's desired locale(s), using Distance as the
// underlying cost function:
//
//	supported := []language.Code{language.English, language.French}
//	best, dist := language.MatchDesired(
//		[]language.Code{language.MustParse("fr-CA")}, supported, language.DefaultMatchOptions)
//
// References
//
// BCP 47 - Tags for Identifying Languages
// http://tools.ietf.org/html/bcp47
//
// UTS #35 - Unicode LDML, Language and Locale Identifiers
// http://www.unicode.org/reports/tr35/#Unicode_Language_and_Locale_Identifiers
package language
