package language

// Distance returns the CLDR-defined cost of substituting b for a: 0 for an
// exact (post-maximize) match, up to 124 for wholly unrelated locales.
func Distance(a, b Code) int32 {
	return regionDistance(a.Maximize(), b.Maximize())
}

func regionDistance(a, b Code) int32 {
	if a == b {
		return 0
	}
	if d, ok := matchDistance[distanceKey{a, b}]; ok {
		return d
	}
	if a.regionField() == b.regionField() {
		return scriptDistance(a, b)
	}
	return regionWildcard(a, b) + scriptDistance(a, b)
}

func regionWildcard(a, b Code) int32 {
	switch {
	case isLang(a, "pt") && isLang(b, "pt"):
		if isTag(a, "pt-BR") || isTag(b, "pt-BR") || isTag(a, "pt-US") || isTag(b, "pt-US") {
			return 8
		}
		return 4
	case isLang(a, "en") && isLang(b, "en"):
		if isTag(a, "en-US") || isTag(b, "en-US") {
			return 6
		}
		if isTag(a, "en-GB") || isTag(b, "en-GB") || isTag(a, "en-001") || isTag(b, "en-001") {
			return 4
		}
		return 5
	case isLang(a, "es") && isLang(b, "es"):
		if isTag(a, "es-ES") || isTag(b, "es-ES") {
			return 8
		}
		if isTag(a, "es-419") || isTag(b, "es-419") {
			return 4
		}
		return 5
	default:
		return 4
	}
}

func scriptDistance(a, b Code) int32 {
	if a.languageExt() == b.languageExt() && a.scriptField() == b.scriptField() {
		return 0
	}
	if a.scriptField() == b.scriptField() {
		return languageDistance(a, b)
	}
	key := distanceKey{a.languageExt() | a.scriptField(), b.languageExt() | b.scriptField()}
	if d, ok := matchDistance[key]; ok {
		return d
	}
	return scriptWildcard(a, b) + languageDistance(a, b)
}

func scriptWildcard(a, b Code) int32 {
	as, bs := a.Script(), b.Script()
	switch {
	case as == "Hans" && bs == "Hant":
		return 15
	case as == "Hant" && bs == "Hans":
		return 19
	default:
		return 40
	}
}

func languageDistance(a, b Code) int32 {
	if a.languageExt() == b.languageExt() {
		return 0
	}
	key := distanceKey{a.languageField(), b.languageField()}
	if d, ok := matchDistance[key]; ok {
		return d
	}
	return 80
}

func isLang(c Code, lang string) bool {
	l, err := encodeSubtag(lang, languageWidth)
	if err != nil {
		return false
	}
	return c.languageField() == Code(l)<<languageShift
}

func isTag(c Code, tag string) bool {
	parsed, err := Parse(tag)
	if err != nil {
		return false
	}
	return c.languageExt() == parsed.languageExt() && c.regionField() == parsed.regionField()
}
