package vin

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"1hgcm82633a004352", "1HGCM82633A004352"},
		{"1HG-CM8-2633-A004352", "1HGCM82633A004352"},
		{"wvw zzz.3b", "WVW ZZZ.3B"}, // only hyphens are stripped
		{"---", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) got %q want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"1hg-cm82633a004352", "1HGCM82633A004352", "a?b!c", ""}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
