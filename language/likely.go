package language

// Maximize fills in c's missing script and region fields from the
// LIKELY_SUBTAGS table, following the broaden search order. It panics if
// the table has no entry reachable from c, which indicates incomplete
// data rather than a malformed tag.
func (c Code) Maximize() Code {
	if c.HasLanguage() && c.HasScript() && c.HasRegion() {
		return c
	}
	if likely, ok := likelySubtags[c]; ok {
		return likely
	}
	for _, broader := range Broaden(c) {
		if likely, ok := likelySubtags[broader]; ok {
			return update(likely, c)
		}
	}
	panic("language: maximize: no likely-subtags entry reachable from " + c.String())
}

// Minimize removes whatever Maximize would add back to c, preferring to
// drop the region before the script so that e.g. zh-Hant-TW minimizes to
// zh-Hant rather than zh-TW.
func (c Code) Minimize() Code {
	m := c.Maximize()

	candidates := []Code{
		c & languageMask,
		c & (languageMask | scriptMask),
		c & (languageMask | regionMask),
	}
	for _, cand := range candidates {
		if cand.Maximize() == m {
			return cand
		}
	}
	return c
}
