package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/dashboard-backend/pkg/config"
	"github.com/angelmondragon/dashboard-backend/pkg/enums"
	"github.com/angelmondragon/dashboard-backend/pkg/logger"
	redisclient "github.com/angelmondragon/dashboard-backend/pkg/redis"
	"github.com/google/uuid"
)

// Record is the identity snapshot kept for a logged-in admin or shop.
type Record struct {
	Kind      enums.IdentityKind `json:"kind"`
	ID        int64              `json:"id"`
	Email     string             `json:"email"`
	Name      string             `json:"name"`
	Role      string             `json:"role"`
	FirstName *string            `json:"first_name,omitempty"`
	LastName  *string            `json:"last_name,omitempty"`
	Phone     *string            `json:"phone,omitempty"`
	Address   *string            `json:"address,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

type recordStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type sessionKeyer interface {
	SessionKey(kind, sessionID string) string
}

// Reader exposes the read-only surface needed by the auth gate.
type Reader interface {
	Load(ctx context.Context, kind enums.IdentityKind, sessionID string) (*Record, bool)
}

// Store keeps one record per (kind, session id). Admin and shop records live
// under distinct keys so both kinds can be signed in at once.
type Store struct {
	store recordStore
	keyer sessionKeyer
	ttl   time.Duration
	logg  *logger.Logger
}

// NewStore constructs a session store backed by Redis.
func NewStore(client *redisclient.Client, cfg config.SessionConfig, logg *logger.Logger) (*Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if cfg.RecordTTL < 0 {
		return nil, fmt.Errorf("session record ttl must not be negative")
	}
	return &Store{
		store: client,
		keyer: client,
		ttl:   cfg.RecordTTL,
		logg:  logg,
	}, nil
}

// Save writes the record, replacing any previous record for the same session.
func (s *Store) Save(ctx context.Context, kind enums.IdentityKind, sessionID string, record Record) error {
	if !kind.IsValid() {
		return fmt.Errorf("invalid identity kind %q", kind)
	}
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("session id is required")
	}
	record.Kind = kind
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding session record: %w", err)
	}
	return s.store.Set(ctx, s.keyer.SessionKey(kind.String(), sessionID), string(payload), s.ttl)
}

// Load returns the stored record. Any failure to read or decode a usable
// record is reported as absent.
func (s *Store) Load(ctx context.Context, kind enums.IdentityKind, sessionID string) (*Record, bool) {
	if !kind.IsValid() || strings.TrimSpace(sessionID) == "" {
		return nil, false
	}
	raw, err := s.store.Get(ctx, s.keyer.SessionKey(kind.String(), sessionID))
	if err != nil {
		if !errors.Is(err, redisclient.ErrNil) {
			s.warn(ctx, kind, "session.load_failed", err)
		}
		return nil, false
	}

	var record Record
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		s.warn(ctx, kind, "session.record_corrupt", err)
		return nil, false
	}
	if record.Kind != kind || record.ID == 0 || record.Role == "" {
		s.warn(ctx, kind, "session.record_incomplete", nil)
		return nil, false
	}
	return &record, true
}

// Clear removes the record. Clearing an absent session is not an error.
func (s *Store) Clear(ctx context.Context, kind enums.IdentityKind, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("session id is required")
	}
	return s.store.Del(ctx, s.keyer.SessionKey(kind.String(), sessionID))
}

func (s *Store) warn(ctx context.Context, kind enums.IdentityKind, msg string, err error) {
	if s.logg == nil {
		return
	}
	ctx = s.logg.WithSessionKind(ctx, kind.String())
	if err != nil {
		ctx = s.logg.WithField(ctx, "error", err.Error())
	}
	s.logg.Warn(ctx, msg)
}

// NewSessionID produces the identifier used as the token jti and Redis key suffix.
func NewSessionID() string {
	return uuid.NewString()
}
