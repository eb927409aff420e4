package language

// MustParse is like Parse but panics if tag does not parse. It is intended
// for use in tests and variable initializers, not on data from outside the
// program.
func MustParse(tag string) Code {
	c, err := Parse(tag)
	if err != nil {
		panic(err)
	}
	return c
}

// Unknown is the sentinel Code returned by the Match* functions when no
// candidate falls below the cutoff. It is a bit pattern no valid subtag
// encoding can produce (every field's 5-bit letter groups top out at 26,
// never 31), so it never collides with a real tag.
var Unknown = Code(^uint64(0))

// Named constants for tags commonly referenced by identity, mirroring the
// hard-coded wildcards the distance engine checks in distance.go.
var (
	English              = MustParse("en")
	AmericanEnglish      = MustParse("en-US")
	BritishEnglish       = MustParse("en-GB")
	InternationalEnglish = MustParse("en-001")

	Portuguese          = MustParse("pt")
	BrazilianPortuguese = MustParse("pt-BR")
	AmericanPortuguese  = MustParse("pt-US")
	EuropeanPortuguese  = MustParse("pt-PT")

	Spanish              = MustParse("es")
	EuropeanSpanish      = MustParse("es-ES")
	LatinAmericanSpanish = MustParse("es-419")

	Chinese             = MustParse("zh")
	SimplifiedChinese   = MustParse("zh-Hans")
	TraditionalChinese  = MustParse("zh-Hant")
	HongKongChinese     = MustParse("zh-Hant-HK")

	German   = MustParse("de")
	French   = MustParse("fr")
	Italian  = MustParse("it")
	Russian  = MustParse("ru")
	Japanese = MustParse("ja")
	Korean   = MustParse("ko")
	Arabic   = MustParse("ar")

	Undetermined = Code(0)
)
