package vin

import "testing"

func TestValid(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"1HGCM82633A004352", true},
		{"1hgcm82633a004352", true},    // normalization uppercases
		{"1HG-CM8-2633-A004352", true}, // hyphens stripped before validation
		{"1HGBH41JWMN109186", true},    // check value 10 spelled as 'W'
		{"1HGCM82633A123456", false},   // serial altered, checksum stale
		{"1HGCM82633A00435", false},    // 16 characters
		{"1HGCM82633A0043521", false},  // 18 characters
		{"", false},
		{"1HGCM8263XA004352", false}, // 'X' is not a valid check character
		{"1HGCM8263ZA004352", false}, // letter check characters other than 'W' fail
		{"1HGQM82633A004352", false}, // 'Q' has no transliteration
		{"1HGCM82633AO04352", false}, // 'O' has no transliteration
		{"1HGCM8?633A004352", false}, // symbols fail, no panic
	}
	for _, c := range cases {
		if got := Valid(c.in); got != c.ok {
			t.Fatalf("Valid(%q) got %v want %v", c.in, got, c.ok)
		}
	}
}

func TestValid_WeightedSum(t *testing.T) {
	// Recompute the formula by hand for the known VIN: the weighted sum
	// must be congruent to the embedded check digit '3' mod 11.
	const code = "1HGCM82633A004352"
	sum := 0
	for i := 0; i < len(code); i++ {
		v, ok := charValue(code[i])
		if !ok {
			t.Fatalf("no value for %q at %d", code[i], i)
		}
		sum += v * weights[i]
	}
	if sum%11 != 3 {
		t.Fatalf("weighted sum %d mod 11 got %d want 3", sum, sum%11)
	}
}

func TestValid_Deterministic(t *testing.T) {
	for i := 0; i < 50; i++ {
		if !Valid("1HGCM82633A004352") {
			t.Fatal("valid VIN flapped to invalid")
		}
		if Valid("1HGCM82633A123456") {
			t.Fatal("invalid VIN flapped to valid")
		}
	}
}

func TestCheckValue(t *testing.T) {
	cases := []struct {
		in   byte
		want int
		ok   bool
	}{
		{'0', 0, true}, {'9', 9, true}, {'W', 10, true},
		{'X', 0, false}, {'A', 0, false}, {'?', 0, false},
	}
	for _, c := range cases {
		got, ok := checkValue(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("checkValue(%q) got (%d,%v) want (%d,%v)", c.in, got, ok, c.want, c.ok)
		}
	}
}
