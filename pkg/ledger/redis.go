package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisTTL keeps a claim long enough to cover any time zone skew of
// the calendar day it was made for.
const DefaultRedisTTL = 48 * time.Hour

// Redis is a Store backed by Redis.
// Claims are SET NX keys that expire after the TTL; the latest marker per
// course is kept without expiry.
type Redis struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedis creates a Redis store.
// The client should be obtained from pkg/redis.Open.
func NewRedis(client redis.UniversalClient, prefix string, ttl time.Duration) *Redis {
	if prefix == "" {
		prefix = "dailylesson"
	}
	if ttl <= 0 {
		ttl = DefaultRedisTTL
	}
	return &Redis{client: client, prefix: prefix, ttl: ttl}
}

func (s *Redis) claimKey(m Marker) string {
	return s.prefix + ":claim:" + m.Key()
}

func (s *Redis) lastKey(course string) string {
	return s.prefix + ":last:" + course
}

// Claim implements Store.
func (s *Redis) Claim(ctx context.Context, m Marker) (bool, error) {
	if err := m.validate(); err != nil {
		return false, err
	}

	data, err := json.Marshal(m)
	if err != nil {
		return false, errors.Join(ErrInvalidMarker, err)
	}

	ok, err := s.client.SetNX(ctx, s.claimKey(m), data, s.ttl).Result()
	if err != nil {
		return false, errors.Join(ErrUnavailable, err)
	}
	if !ok {
		return false, nil
	}

	if err := s.client.Set(ctx, s.lastKey(m.Course), data, 0).Err(); err != nil {
		// A claim without its last marker is undone so the day stays claimable.
		if delErr := s.client.Del(context.WithoutCancel(ctx), s.claimKey(m)).Err(); delErr != nil {
			return false, errors.Join(ErrUnavailable, err, delErr)
		}
		return false, errors.Join(ErrUnavailable, err)
	}
	return true, nil
}

// Release implements Store.
func (s *Redis) Release(ctx context.Context, m Marker) error {
	if err := m.validate(); err != nil {
		return err
	}

	if err := s.client.Del(ctx, s.claimKey(m)).Err(); err != nil {
		return errors.Join(ErrUnavailable, err)
	}

	last, err := s.Last(ctx, m.Course)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if last.Date == m.Date {
		if err := s.client.Del(ctx, s.lastKey(m.Course)).Err(); err != nil {
			return errors.Join(ErrUnavailable, err)
		}
	}
	return nil
}

// Last implements Store.
func (s *Redis) Last(ctx context.Context, course string) (Marker, error) {
	data, err := s.client.Get(ctx, s.lastKey(course)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Marker{}, ErrNotFound
	}
	if err != nil {
		return Marker{}, errors.Join(ErrUnavailable, err)
	}

	var m Marker
	if err := json.Unmarshal(data, &m); err != nil {
		return Marker{}, errors.Join(ErrUnavailable, err)
	}
	return m, nil
}

var _ Store = (*Redis)(nil)
