package language

// matchDistanceData is a curated subset of CLDR's matching.txt, recorded
// at whatever cascade level (full maximized code, language+script, or bare
// language) makes each entry a direct hit the first time regionDistance,
// scriptDistance, or languageDistance looks it up. A full build would
// regenerate this table from CLDR's matching.txt, expanding "sym" rows
// into both orderings at that point instead of listing both here.
func init() {
	for key, val := range matchDistanceData {
		matchDistance[key] = val
	}
}

var matchDistanceData = map[distanceKey]int32{
	{mustCode("en", "latn", "us"), mustCode("en", "latn", "pr")}: 4,
	{mustCode("en", "latn", "pr"), mustCode("en", "latn", "us")}: 4,

	{mustCode("en", "latn", "us"), mustCode("en", "latn", "gb")}: 6,
	{mustCode("en", "latn", "gb"), mustCode("en", "latn", "us")}: 6,

	{mustCode("ta", "taml", "in"), mustCode("en", "latn", "us")}: 14,

	{mustCode("zh", "hans", "cn"), mustCode("zh", "hant", "tw")}: 19,
	{mustCode("zh", "hant", "tw"), mustCode("zh", "hans", "cn")}: 23,

	{mustCode("en", "latn", "us"), mustCode("en", "shaw", "us")}: 46,

	{mustCode("nb", "latn", "no"), mustCode("no", "latn", "no")}: 1,
}
