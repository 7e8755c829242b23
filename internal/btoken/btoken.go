// Package btoken implements the self-certifying bearer token used to gate
// the control-plane API. A token is a single opaque string built from three
// fixed-width-from-the-end segments:
//
//	<salt><expiry><digest>
//
// where digest is the lowercase hex SHA-512 of salt||expiry||secret (128
// chars), expiry is a 13-digit millisecond Unix timestamp, and salt is
// whatever remains (at least 25 chars). There is no delimiter; the boundary
// is positional, so the widths must never change. Any holder of the shared
// secret can mint tokens offline, and the server needs no session state to
// verify them.
package btoken

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	expiryLen = 13
	digestLen = 128

	// MinSaltLen is the minimum accepted salt length. Shorter salts make
	// offline digest grinding too cheap, so validation rejects them outright.
	MinSaltLen = 25

	minTokenLen = MinSaltLen + expiryLen + digestLen
)

var (
	expiryPattern = regexp.MustCompile(`^\d{13}$`)
	digestPattern = regexp.MustCompile(`^[a-f0-9]{128}$`)
)

// Token is the decoded form of a bearer token.
type Token struct {
	Salt   string
	Expiry time.Time
	Digest string
}

// NewSalt returns a random salt suitable for minting.
func NewSalt() string {
	return uuid.NewString()
}

// Mint builds a token string from a salt, an expiry time and the shared
// secret. The expiry must render as exactly 13 decimal digits in
// milliseconds, which holds for any date between 2001 and 2286.
func Mint(salt string, expiry time.Time, secret string) (string, error) {
	if len(salt) < MinSaltLen {
		return "", fmt.Errorf("salt must be at least %d characters, got %d", MinSaltLen, len(salt))
	}
	ms := strconv.FormatInt(expiry.UnixMilli(), 10)
	if len(ms) != expiryLen {
		return "", fmt.Errorf("expiry %v is outside the representable range", expiry)
	}
	return salt + ms + digestFor(salt, ms, secret), nil
}

// Decode slices a token string into its segments. It returns false if the
// string is too short to contain all three; it does not verify the digest.
func Decode(token string) (Token, bool) {
	if len(token) < minTokenLen {
		return Token{}, false
	}
	salt, ms, digest := split(token)
	if !expiryPattern.MatchString(ms) {
		return Token{}, false
	}
	n, _ := strconv.ParseInt(ms, 10, 64)
	return Token{Salt: salt, Expiry: time.UnixMilli(n), Digest: digest}, true
}

// Validate reports whether token is well-formed, unexpired at now, and
// carries a digest keyed by secret. It never returns an error: any defect
// in the token is simply a false result.
func Validate(token, secret string, now time.Time) bool {
	if len(token) < minTokenLen {
		return false
	}
	salt, ms, digest := split(token)
	if len(salt) <= MinSaltLen-1 {
		return false
	}
	if !expiryPattern.MatchString(ms) || !digestPattern.MatchString(digest) {
		return false
	}
	expiry, err := strconv.ParseInt(ms, 10, 64)
	if err != nil {
		return false
	}
	// Strict inequality: a token presented at exactly its expiry instant
	// is already dead.
	if now.UnixMilli() >= expiry {
		return false
	}
	want := digestFor(salt, ms, secret)
	return subtle.ConstantTimeCompare([]byte(want), []byte(digest)) == 1
}

func split(token string) (salt, expiry, digest string) {
	salt = token[:len(token)-expiryLen-digestLen]
	expiry = token[len(token)-expiryLen-digestLen : len(token)-digestLen]
	digest = token[len(token)-digestLen:]
	return
}

func digestFor(salt, expiry, secret string) string {
	sum := sha512.Sum512([]byte(salt + expiry + secret))
	return hex.EncodeToString(sum[:])
}
