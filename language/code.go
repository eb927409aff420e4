package language

import "strings"

// Code is an immutable, bit-packed representation of a BCP 47 language
// tag's language, extlang, script, and region subtags. The zero Code is
// "und" (undetermined in every field). Codes are comparable with ==.
type Code uint64

const (
	regionBits = 11
	scriptBits = 21
	extlangBits = 16
	protoBits  = 1
	languageBits = 15

	regionShift   = 0
	scriptShift   = regionShift + regionBits   // 11
	extlangShift  = scriptShift + scriptBits   // 32
	protoShift    = extlangShift + extlangBits // 48
	languageShift = protoShift + protoBits     // 49

	regionMask   Code = (1<<regionBits - 1) << regionShift
	scriptMask   Code = (1<<scriptBits - 1) << scriptShift
	extlangMask  Code = (1<<extlangBits - 1) << extlangShift
	protoMask    Code = (1<<protoBits - 1) << protoShift
	languageMask Code = (1<<languageBits - 1) << languageShift

	languageExtMask = languageMask | protoMask | extlangMask
)

// MissingCode represents an unrepresentable private-use or grandfathered
// tag. Its language field decodes to "mis".
var MissingCode = mustEncodeLanguageOnly("mis")

func mustEncodeLanguageOnly(lang string) Code {
	v, err := encodeSubtag(lang, languageWidth)
	if err != nil {
		panic(err)
	}
	return Code(v) << languageShift
}

func (c Code) languageField() Code { return c & languageMask }
func (c Code) extlangField() Code  { return c & extlangMask }
func (c Code) protoField() Code    { return c & protoMask }
func (c Code) scriptField() Code   { return c & scriptMask }
func (c Code) regionField() Code   { return c & regionMask }

func (c Code) languageExt() Code { return c & languageExtMask }

// HasLanguage, HasScript, and HasRegion report whether the corresponding
// field is set.
func (c Code) HasLanguage() bool { return c.languageField() != 0 }
func (c Code) HasScript() bool   { return c.scriptField() != 0 }
func (c Code) HasRegion() bool   { return c.regionField() != 0 }

// Language returns the canonical lowercase language subtag, defaulting to
// "und" if unset.
func (c Code) Language() string {
	v := uint64(c.languageField() >> languageShift)
	s := decodeSubtag(v, languageWidth)
	if s == "" {
		return "und"
	}
	return s
}

// Extlang returns the extended-language subtag, or "" if unset. If only the
// proto bit is set, it returns "pro".
func (c Code) Extlang() string {
	v := uint64(c.extlangField() >> extlangShift)
	s := decodeSubtag(v, extlangWidth)
	if s == "" && c.protoField() != 0 {
		return "pro"
	}
	return s
}

// Script returns the title-cased script subtag, or "" if unset.
func (c Code) Script() string {
	v := uint64(c.scriptField() >> scriptShift)
	s := decodeSubtag(v, scriptWidth)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Region returns the uppercased region subtag, or "" if unset.
func (c Code) Region() string {
	v := uint64(c.regionField() >> regionShift)
	s := decodeSubtag(v, regionWidth)
	if s == "" {
		return ""
	}
	if isDigits(s) {
		return s
	}
	return strings.ToUpper(s)
}

// String returns the canonical hyphen-joined form of c.
func (c Code) String() string {
	parts := make([]string, 0, 4)
	parts = append(parts, c.Language())
	if e := c.Extlang(); e != "" {
		parts = append(parts, e)
	}
	if s := c.Script(); s != "" {
		parts = append(parts, s)
	}
	if r := c.Region(); r != "" {
		parts = append(parts, r)
	}
	return strings.Join(parts, "-")
}

// update merges new onto old region by region: language-and-extlang,
// script, and region are each replaced wholesale if new has any bit set in
// that region, otherwise kept from old.
func update(old, overlay Code) Code {
	var out Code
	if overlay.languageExt() != 0 {
		out |= overlay.languageExt()
	} else {
		out |= old.languageExt()
	}
	if overlay.scriptField() != 0 {
		out |= overlay.scriptField()
	} else {
		out |= old.scriptField()
	}
	if overlay.regionField() != 0 {
		out |= overlay.regionField()
	} else {
		out |= old.regionField()
	}
	return out
}

// Broaden returns the ordered list of codes obtained by masking c down to
// each combination in turn, skipping any equal to c itself. Other repeated
// codes are not removed (a bare language yields 0 three times). The order
// is significant: it is the search order Maximize walks.
func Broaden(c Code) []Code {
	lang := c.languageExt()
	script := c.scriptField()
	region := c.regionField()

	candidates := []Code{
		lang | script | region,
		lang | region,
		lang | script,
		lang,
		region,
		script,
		0,
	}
	out := make([]Code, 0, len(candidates))
	for _, cand := range candidates {
		if cand != c {
			out = append(out, cand)
		}
	}
	return out
}
