package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionPrefix namespaces session keys in Redis.  The full key for a
// token t is "auth_" + t, matching the layout other deployments of this
// service already use.
const sessionPrefix = "auth_"

// SessionRepo stores opaque session tokens in Redis.  Each key maps a
// token to the owning user id and carries the configured TTL, so
// expiry is enforced by Redis itself and lookups never extend a
// session's lifetime.
type SessionRepo struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewSessionRepo(rdb *redis.Client, ttl time.Duration) *SessionRepo {
	return &SessionRepo{RDB: rdb, TTL: ttl}
}

// Create stores token -> userID with the repo's TTL.
func (r *SessionRepo) Create(ctx context.Context, token string, userID uint64) error {
	return r.RDB.Set(ctx, sessionPrefix+token, strconv.FormatUint(userID, 10), r.TTL).Err()
}

// Get resolves a token to a user id.  ErrNotFound covers unknown and
// expired tokens alike.
func (r *SessionRepo) Get(ctx context.Context, token string) (uint64, error) {
	v, err := r.RDB.Get(ctx, sessionPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(v, 10, 64)
}

// Delete removes a session immediately.  ErrNotFound is returned when
// the token was not active, so logout of a dead token reports 401.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	n, err := r.RDB.Del(ctx, sessionPrefix+token).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
