package vin

// checkValue maps a check-digit character to its numeric value. The
// literal 'W' stands for 10; otherwise the character must be a decimal
// digit.
func checkValue(c byte) (int, bool) {
	if c == 'W' {
		return 10, true
	}
	if c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	return 0, false
}

// charValue maps a VIN character to its checksum value: digits map to
// themselves, letters go through the transliteration table. I, O, Q and
// anything else outside the table have no value.
func charValue(c byte) (int, bool) {
	if c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	v, ok := transliterations[c]
	return v, ok
}

// Valid reports whether raw carries a correct ISO 3779 check digit. The
// input is normalized first; anything that is not exactly 17 mappable
// characters with a digit or 'W' in the check slot fails. Pure predicate,
// never panics.
func Valid(raw string) bool {
	code := Normalize(raw)
	if len(code) != codeLen {
		return false
	}

	want, ok := checkValue(code[checkPos])
	if !ok {
		return false
	}

	sum := 0
	for i := 0; i < codeLen; i++ {
		v, ok := charValue(code[i])
		if !ok {
			return false
		}
		sum += v * weights[i]
	}

	return sum%11 == want
}
