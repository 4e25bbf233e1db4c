package goJWT

import (
	"time"

	"github.com/google/uuid"
)

// Registered claim names.
const (
	ClaimExpiration = "exp"
	ClaimIssuedAt   = "iat"
	ClaimTokenID    = "jti"
)

// NewClaims returns a claims map carrying a random jti, iat set to the
// codec's current time and, when ttl > 0, exp = iat + ttl. All times are
// Unix seconds.
func (c *Codec) NewClaims(ttl time.Duration) map[string]any {
	now := c.now().UTC()
	claims := map[string]any{
		ClaimTokenID:  uuid.NewString(),
		ClaimIssuedAt: now.Unix(),
	}
	if ttl > 0 {
		claims[ClaimExpiration] = now.Add(ttl).Unix()
	}
	return claims
}
