package crypto

import (
	"fmt"
	"math"
	"strings"
)

// base62Alphabet matches Django's URL-safe base62 encoding used for
// signature timestamps.
const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func base62Encode(n int64) string {
	if n == 0 {
		return "0"
	}

	neg := n < 0
	if neg {
		n = -n
	}

	// 2^63 fits in 11 base62 digits.
	buf := make([]byte, 0, 12)
	for n > 0 {
		buf = append(buf, base62Alphabet[n%62])
		n /= 62
	}
	if neg {
		buf = append(buf, '-')
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

func base62Decode(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("base62: empty string")
	}

	neg := s[0] == '-'
	if neg {
		s = s[1:]
	}
	var n int64
	for i := 0; i < len(s); i++ {
		d := strings.IndexByte(base62Alphabet, s[i])
		if d < 0 {
			return 0, fmt.Errorf("base62: invalid character %q", s[i])
		}
		if n > (math.MaxInt64-int64(d))/62 {
			return 0, fmt.Errorf("base62: value out of range")
		}
		n = n*62 + int64(d)
	}
	if neg {
		n = -n
	}
	return n, nil
}
