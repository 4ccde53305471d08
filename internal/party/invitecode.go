package party

import (
	"crypto/rand"
	"strings"
)

const (
	codeAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeGroupLen  = 4
	codeSeparator = "-"

	// MinCodeLength is the number of significant characters callers should
	// require before attempting a lookup. A UX gate, not a validation rule.
	MinCodeLength = 2 * codeGroupLen

	maxCodeAttempts = 10
)

// GenerateCode produces a candidate invite code: two groups of four
// uppercase alphanumeric characters joined by a dash, e.g. "K7PQ-2MWD".
// Uniqueness is the caller's problem; see NewUniqueCode.
func GenerateCode() string {
	buf := make([]byte, 2*codeGroupLen)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	for i := range buf {
		buf[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
	}
	return string(buf[:codeGroupLen]) + codeSeparator + string(buf[codeGroupLen:])
}

// NewUniqueCode generates an invite code not yet present in the store,
// retrying on collision up to a bounded number of attempts. Exhausting the
// attempts returns ErrCodeSpaceExhausted.
func NewUniqueCode(store GuestStore) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := GenerateCode()
		guests, err := store.FindByInviteCode(code)
		if err != nil {
			return "", err
		}
		if len(guests) == 0 {
			return code, nil
		}
	}
	return "", ErrCodeSpaceExhausted
}

// NormalizeCode uppercases an invite code for lookup or storage. Codes are
// case-insensitive on entry but always stored uppercase.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// PlausibleCode reports whether an entered code carries enough significant
// characters to be worth a store lookup
func PlausibleCode(code string) bool {
	significant := 0
	for _, r := range NormalizeCode(code) {
		if strings.ContainsRune(codeAlphabet, r) {
			significant++
		}
	}
	return significant >= MinCodeLength
}
