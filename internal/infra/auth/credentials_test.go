package auth

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comfortstay/config"
)

func newTestCredentialService(t *testing.T) *credentialService {
	t.Helper()

	svc := NewCredentialService(&config.Config{
		Auth: &config.AuthConfig{TempPasswordLength: 12},
	})

	cs, ok := svc.(*credentialService)
	require.True(t, ok)

	return cs
}

func TestGeneratePGID(t *testing.T) {
	t.Parallel()

	svc := newTestCredentialService(t)

	tests := []struct {
		name    string
		email   string
		pattern string
	}{
		{
			name:    "dot separated local part uses initials",
			email:   "jane.doe@example.com",
			pattern: `^PG-JD\d{4}$`,
		},
		{
			name:    "underscore separated local part uses initials",
			email:   "rahul_kumar_sharma@example.com",
			pattern: `^PG-RKS\d{4}$`,
		},
		{
			name:    "digit separated local part uses initials",
			email:   "amit123verma@example.com",
			pattern: `^PG-AV\d{4}$`,
		},
		{
			name:    "single token falls back to first two characters",
			email:   "xavier@example.com",
			pattern: `^PG-XA\d{4}$`,
		},
		{
			name:    "missing at sign still produces an id",
			email:   "priya.patel",
			pattern: `^PG-PP\d{4}$`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pgID := svc.GeneratePGID(tt.email)
			assert.Regexp(t, regexp.MustCompile(tt.pattern), pgID)
		})
	}
}

func TestGenerateTempPassword(t *testing.T) {
	t.Parallel()

	svc := newTestCredentialService(t)

	first, err := svc.GenerateTempPassword()
	require.NoError(t, err)
	assert.Len(t, first, 12)

	second, err := svc.GenerateTempPassword()
	require.NoError(t, err)

	// Two draws colliding would mean the generator is not random.
	assert.NotEqual(t, first, second)
}

func TestBcryptHasherRoundTrip(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4}, // MinCost keeps the test fast
	})

	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)

	assert.True(t, hasher.Check("s3cret-pass", hash))
	assert.False(t, hasher.Check("wrong-pass", hash))
}
