package language

import "testing"

func TestDistanceSeedCases(t *testing.T) {
	cases := []struct {
		a, b string
		want int32
	}{
		{"en", "en-Latn", 0},
		{"en-US", "en-PR", 4},
		{"en-US", "en-GB", 6},
		{"ta", "en", 14},
		{"zh-Hans", "zh-Hant", 19},
		{"zh-Hant", "zh-Hans", 23},
		{"en", "en-Shaw", 46},
		{"en", "ja", 124},
		{"nb", "no", 1},
	}
	for _, c := range cases {
		a, b := MustParse(c.a), MustParse(c.b)
		got := Distance(a, b)
		if got != c.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDistanceNonNegativeAndBounded(t *testing.T) {
	tags := []string{"en", "ja", "zh-Hant", "ta", "nb", "no", "pt-BR", "es-419", "und"}
	for _, a := range tags {
		for _, b := range tags {
			d := Distance(MustParse(a), MustParse(b))
			if d < 0 || d > 124 {
				t.Errorf("Distance(%q, %q) = %d, out of [0, 124]", a, b, d)
			}
		}
	}
}

func TestDistanceZeroIffMaximizedEqual(t *testing.T) {
	pairs := []struct{ a, b string }{
		{"en", "en-Latn"},
		{"en", "en-Latn-US"},
		{"zh-Hans", "zh"},
		{"en", "en-GB"},
	}
	for _, p := range pairs {
		a, b := MustParse(p.a), MustParse(p.b)
		d := Distance(a, b)
		eq := a.Maximize() == b.Maximize()
		if (d == 0) != eq {
			t.Errorf("Distance(%q,%q)=%d but maximized-equal=%v", p.a, p.b, d, eq)
		}
	}
}

func TestDistanceSelfIsZero(t *testing.T) {
	for _, s := range []string{"en", "zh-Hant-TW", "und", "ja-US"} {
		c := MustParse(s)
		if d := Distance(c, c); d != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", s, s, d)
		}
	}
}
