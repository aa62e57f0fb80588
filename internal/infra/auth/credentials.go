// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"comfortstay/config"
	"comfortstay/internal/domain/service"
	"comfortstay/internal/errors"
)

const (
	pgIDPrefix = "PG-"

	defaultTempPasswordLength = 12

	// tempPasswordCharset deliberately omits look-alike characters (0/O, 1/l).
	tempPasswordCharset = "ABCDEFGHJKMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"
)

// credentialService issues pgIds and temporary passwords for approved residents.
type credentialService struct {
	tempPasswordLength int
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(cfg *config.Config) service.CredentialService {
	length := defaultTempPasswordLength
	if cfg.Auth != nil && cfg.Auth.TempPasswordLength > 0 {
		length = cfg.Auth.TempPasswordLength
	}

	return &credentialService{tempPasswordLength: length}
}

// GeneratePGID derives a resident identifier from the email's local part.
// The local part is split on non-letter characters and the uppercase initial
// of each token is taken; with fewer than two alphabetic tokens, the first
// two characters of the local part are used instead. A random 4-digit suffix
// keeps identifiers unique across residents with the same initials.
func (s *credentialService) GeneratePGID(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		local = email[:at]
	}

	tokens := strings.FieldsFunc(local, func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	var initials strings.Builder
	if len(tokens) >= 2 {
		for _, token := range tokens {
			initials.WriteRune(unicode.ToUpper([]rune(token)[0]))
		}
	} else {
		for _, r := range local {
			if initials.Len() >= 2 {
				break
			}
			initials.WriteRune(unicode.ToUpper(r))
		}
	}

	return fmt.Sprintf("%s%s%04d", pgIDPrefix, initials.String(), randomInt(10000))
}

// GenerateTempPassword produces a cryptographically random one-time password.
func (s *credentialService) GenerateTempPassword() (string, error) {
	password := make([]byte, s.tempPasswordLength)
	for i := range password {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(tempPasswordCharset))))
		if err != nil {
			return "", errors.Wrap(err, "generate temp password")
		}
		password[i] = tempPasswordCharset[idx.Int64()]
	}

	return string(password), nil
}

// randomInt returns a uniform random value in [0, max).
func randomInt(max int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken.
		return 0
	}

	return n.Int64()
}
