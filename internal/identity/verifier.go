package identity

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	verifiedTokenCacheExpireSeconds = 5 * 60
	verifierCacheSizeBytes          = 10 * 1024 * 1024
)

// CachedVerifier caches successful token verifications for a few
// minutes so that every request does not hit the identity provider.
// Failed verifications are never cached.
type CachedVerifier struct {
	client Client
	cache  *freecache.Cache
}

func NewCachedVerifier(client Client) *CachedVerifier {
	return &CachedVerifier{
		client: client,
		cache:  freecache.NewCache(verifierCacheSizeBytes),
	}
}

func (v *CachedVerifier) VerifyToken(ctx context.Context, idToken string) (string, error) {
	// tokens are long, cache on a digest instead
	tokenDigest := sha256.Sum256([]byte(idToken))
	cacheKey := tokenDigest[:]

	if uidBytes, err := v.cache.Get(cacheKey); err == nil {
		return string(uidBytes), nil
	}

	uid, err := v.client.VerifyToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("verify token: %w", err)
	}

	if err := v.cache.Set(cacheKey, []byte(uid), verifiedTokenCacheExpireSeconds); err != nil {
		log.Errorf("failed to cache verified token for %s: %s", uid, err)
	}

	return uid, nil
}
