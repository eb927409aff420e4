package language

import "strings"

type parserState int

const (
	stateAfterLanguage parserState = iota
	stateAfterScript
	stateAfterRegion
	stateAfterVariant
)

// Parse turns an arbitrary BCP 47 string into a Code, applying CLDR's
// whole-tag, language, script, and region alias substitutions along the
// way. It returns an *Error if the input is not a well-formed tag.
func Parse(tag string) (Code, error) {
	norm := strings.ToLower(strings.ReplaceAll(tag, "_", "-"))
	if norm == "" {
		return 0, errParse(tag)
	}
	if replacement, ok := tagReplace[norm]; ok {
		return replacement, nil
	}

	tokens := strings.Split(norm, "-")
	code, err := parseTokens(tokens, tag)
	if err != nil {
		return 0, err
	}
	return substitute(code), nil
}

// parseTokens runs the shape-driven state machine described by the parser
// over tokens, the hyphen-split, lowercased subtags of the original input.
func parseTokens(tokens []string, original string) (Code, error) {
	first := tokens[0]
	if first == "i" || first == "x" {
		return MissingCode, nil
	}

	var code Code
	if first != "und" {
		if !isAlphaNum(first) {
			return 0, errInvalidCharacter(original)
		}
		v, err := encodeSubtag(first, languageWidth)
		if err != nil {
			return 0, errSubtagFormat(original)
		}
		code |= Code(v) << languageShift
	}

	state := stateAfterLanguage
	extlangCount := 0

	for _, tok := range tokens[1:] {
		if tok == "u" || tok == "x" {
			break
		}
		switch {
		case isVariantShape(tok):
			state = stateAfterVariant
			continue
		case isRegionShape(tok):
			if state != stateAfterLanguage && state != stateAfterScript {
				return 0, errSubtagFormat(original)
			}
			if tok != "zz" {
				v, err := encodeSubtag(tok, regionWidth)
				if err != nil {
					return 0, errSubtagFormat(original)
				}
				code = (code &^ regionMask) | (Code(v) << regionShift)
			}
			state = stateAfterRegion
		case isScriptShape(tok):
			if state != stateAfterLanguage {
				return 0, errSubtagFormat(original)
			}
			if tok != "zzzz" {
				v, err := encodeSubtag(tok, scriptWidth)
				if err != nil {
					return 0, errSubtagFormat(original)
				}
				code = (code &^ scriptMask) | (Code(v) << scriptShift)
			}
			state = stateAfterScript
		case isExtlangShape(tok) && state == stateAfterLanguage && extlangCount < 3:
			if tok == "pro" {
				code |= protoMask
			} else if code.extlangField() == 0 {
				v, err := encodeSubtag(tok, extlangWidth)
				if err != nil {
					return 0, errSubtagFormat(original)
				}
				code = (code &^ extlangMask) | (Code(v) << extlangShift)
			}
			extlangCount++
		default:
			return 0, errSubtagFormat(original)
		}
	}
	return code, nil
}

// substitute applies the post-parse alias substitutions in the order
// language replacement, script fixup, region replacement.
func substitute(code Code) Code {
	if newlang, ok := langReplace[code.languageField()]; ok {
		merged := update(code, newlang)
		code = update(merged, code&^languageExtMask)
	}
	if code.Script() == "Qaai" {
		zinh, err := encodeSubtag("zinh", scriptWidth)
		if err == nil {
			code = (code &^ scriptMask) | (Code(zinh) << scriptShift)
		}
	}
	if newregion, ok := regionReplace[code.regionField()]; ok {
		code = (code &^ regionMask) | newregion.regionField()
	}
	return code
}

func isAlphaNum(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9') && !(c >= 'a' && c <= 'z') {
			return false
		}
	}
	return true
}

func isAlpha(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

// isVariantShape matches subtags of length >= 5, or length 4 starting with
// a digit (BCP 47's variant shape).
func isVariantShape(s string) bool {
	if len(s) >= 5 {
		return true
	}
	return len(s) == 4 && s[0] >= '0' && s[0] <= '9'
}

// isRegionShape matches 2-letter alpha or 3-digit region subtags.
func isRegionShape(s string) bool {
	if len(s) == 2 && isAlpha(s) {
		return true
	}
	return len(s) == 3 && isDigits(s)
}

// isScriptShape matches the 4-letter alpha script subtag shape.
func isScriptShape(s string) bool {
	return len(s) == 4 && isAlpha(s)
}

// isExtlangShape matches the 3-letter alpha extlang subtag shape.
func isExtlangShape(s string) bool {
	return len(s) == 3 && isAlpha(s)
}
