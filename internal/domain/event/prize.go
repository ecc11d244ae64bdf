package event

import "strconv"

// ParsePrizePool normalizes a free-form prize-pool string into a numeric
// amount. Currency symbols, thousands separators and spaces are stripped; the
// value parses only if what remains is all digits. Anything else (empty,
// "TBD", mixed text) degrades to 0 rather than erroring, so a sloppy corpus
// entry never aborts a load.
func ParsePrizePool(raw string) int64 {
	cleaned := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '$', ',', ' ':
			continue
		}
		if raw[i] < '0' || raw[i] > '9' {
			return 0
		}
		cleaned = append(cleaned, raw[i])
	}
	if len(cleaned) == 0 {
		return 0
	}

	out, err := strconv.ParseInt(string(cleaned), 10, 64)
	if err != nil {
		return 0
	}
	return out
}
