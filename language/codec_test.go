package language

import "testing"

func TestEncodeDecodeSubtagNumeric(t *testing.T) {
	v, err := encodeSubtag("419", regionWidth)
	if err != nil {
		t.Fatalf("encodeSubtag(419) error: %v", err)
	}
	if v != 419 {
		t.Fatalf("encodeSubtag(419) = %d, want 419", v)
	}
	if got := decodeSubtag(v, regionWidth); got != "419" {
		t.Fatalf("decodeSubtag(419) = %q, want 419", got)
	}
}

func TestEncodeDecodeSubtagAlpha(t *testing.T) {
	cases := []struct {
		s     string
		width int
	}{
		{"en", languageWidth},
		{"zho", languageWidth},
		{"latn", scriptWidth},
		{"us", regionWidth},
		{"gb", regionWidth},
	}
	for _, c := range cases {
		v, err := encodeSubtag(c.s, c.width)
		if err != nil {
			t.Fatalf("encodeSubtag(%q) error: %v", c.s, err)
		}
		if v < subtagBias {
			t.Fatalf("encodeSubtag(%q) = %d, want >= %d", c.s, v, subtagBias)
		}
		if got := decodeSubtag(v, c.width); got != c.s {
			t.Fatalf("decodeSubtag(encodeSubtag(%q)) = %q, want %q", c.s, got, c.s)
		}
	}
}

func TestEncodeSubtagOrdering(t *testing.T) {
	// Lexicographic order on strings must match numeric order on the
	// encoded form, since the distance and alias tables key on it.
	a, _ := encodeSubtag("en", languageWidth)
	b, _ := encodeSubtag("es", languageWidth)
	c, _ := encodeSubtag("fr", languageWidth)
	if !(a < b && b < c) {
		t.Fatalf("encoding not lexicographically ordered: en=%d es=%d fr=%d", a, b, c)
	}

	short, _ := encodeSubtag("en", languageWidth)
	long, _ := encodeSubtag("eng", languageWidth)
	if short >= long {
		t.Fatalf("shorter prefix must sort before longer: en=%d eng=%d", short, long)
	}
}

func TestDecodeSubtagAbsent(t *testing.T) {
	if got := decodeSubtag(0, scriptWidth); got != "" {
		t.Fatalf("decodeSubtag(0) = %q, want empty", got)
	}
}

func TestEncodeSubtagRejectsBadInput(t *testing.T) {
	cases := []string{"", "toolong1", "1000", "0"}
	for _, s := range cases {
		if _, err := encodeSubtag(s, languageWidth); err == nil {
			t.Errorf("encodeSubtag(%q) unexpectedly succeeded", s)
		}
	}
}
