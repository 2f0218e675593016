// Package session tracks the single currently authenticated user.
// Exactly one session exists at a time: a new login overwrites the
// previous one.  Besides the in-memory copy, the active user is
// mirrored as JSON into one redis key so it survives a restart;
// when no redis client is available the mirror is skipped and the
// session lives in memory only.
package session

import (
    "context"
    "encoding/json"
    "log"
    "sync"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/parking-admin/internal/model"
)

// sessionKey is the redis key holding the persisted active user.
const sessionKey = "parking:session:active"

// Store holds the active session.  The redis client may be nil, in
// which case all persistence operations are no-ops.  All methods
// are safe for concurrent use.
type Store struct {
    mu   sync.RWMutex
    user *model.User
    rdb  *redis.Client
}

// New returns an empty session store backed by the given redis
// client (nil allowed).
func New(rdb *redis.Client) *Store {
    return &Store{rdb: rdb}
}

// Current returns the active user and whether anyone is logged in.
func (s *Store) Current() (model.User, bool) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    if s.user == nil {
        return model.User{}, false
    }
    return *s.user, true
}

// Set makes u the active session and writes the persisted mirror.
// It is called on login and after every profile update.
func (s *Store) Set(ctx context.Context, u model.User) {
    s.mu.Lock()
    copied := u
    s.user = &copied
    s.mu.Unlock()
    s.persist(ctx, u)
}

// Clear drops the active session and deletes the persisted mirror.
func (s *Store) Clear(ctx context.Context) {
    s.mu.Lock()
    s.user = nil
    s.mu.Unlock()
    if s.rdb == nil {
        return
    }
    if err := s.rdb.Del(ctx, sessionKey).Err(); err != nil {
        log.Printf("session: clear mirror failed: %v", err)
    }
}

// Restore reads the persisted user once, seeding the session at
// process start.  A missing key simply means logged out.  It
// returns whether a session was restored.
func (s *Store) Restore(ctx context.Context) bool {
    if s.rdb == nil {
        return false
    }
    ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
    defer cancel()
    raw, err := s.rdb.Get(ctx, sessionKey).Bytes()
    if err != nil {
        if err != redis.Nil {
            log.Printf("session: restore failed: %v", err)
        }
        return false
    }
    var u model.User
    if err := json.Unmarshal(raw, &u); err != nil {
        log.Printf("session: bad persisted session, ignoring: %v", err)
        return false
    }
    s.mu.Lock()
    s.user = &u
    s.mu.Unlock()
    return true
}

// persist mirrors the active user to redis.  Failures are logged
// and otherwise ignored: the in-memory session stays authoritative
// for the running process.
func (s *Store) persist(ctx context.Context, u model.User) {
    if s.rdb == nil {
        return
    }
    raw, err := json.Marshal(u)
    if err != nil {
        log.Printf("session: marshal failed: %v", err)
        return
    }
    if err := s.rdb.Set(ctx, sessionKey, raw, 0).Err(); err != nil {
        log.Printf("session: persist failed: %v", err)
    }
}
