package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"visitcap/internal/model"
	"visitcap/pkg/snowflake"
)

// DefaultRedisKey holds the whole registry as one hash, field = id.
// A companion hash at DefaultRedisKey+":patterns" maps each pattern to its owner id.
const DefaultRedisKey = "visitcap:site_limits"

const redisApplyRetries = 8

// redisSiteLimit is the stored JSON shape. Timestamps are epoch milliseconds.
type redisSiteLimit struct {
	ID           int64  `json:"id"`
	Pattern      string `json:"pattern"`
	VisitLimit   int    `json:"visitLimit"`
	TimeInterval string `json:"timeInterval"`
	VisitCount   int    `json:"visitCount"`
	LastReset    int64  `json:"lastReset"`
	CreatedAt    int64  `json:"createdAt"`
}

type redisSiteLimitRepository struct {
	client     redis.UniversalClient
	key        string
	patternKey string
}

// NewRedisSiteLimitRepository creates a registry stored in a single Redis hash.
func NewRedisSiteLimitRepository(client redis.UniversalClient, key string) SiteLimitRepository {
	if key == "" {
		key = DefaultRedisKey
	}
	return &redisSiteLimitRepository{client: client, key: key, patternKey: key + ":patterns"}
}

// NewRedisClient parses a redis:// URL and verifies the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// Create creates a new site limit record after claiming its pattern.
func (r *redisSiteLimitRepository) Create(ctx context.Context, limit model.SiteLimit) (*model.SiteLimit, error) {
	limit.ID = snowflake.NextID()
	now := time.Now().UTC()
	if limit.CreatedAt.IsZero() {
		limit.CreatedAt = now
	}
	if limit.LastReset.IsZero() {
		limit.LastReset = now
	}

	data, err := encodeSiteLimit(limit)
	if err != nil {
		return nil, err
	}
	// Claiming the pattern first makes concurrent creates of the same pattern race on one HSETNX.
	claimed, err := r.client.HSetNX(ctx, r.patternKey, limit.Pattern, field(limit.ID)).Result()
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrDuplicatePattern
	}
	if err := r.client.HSet(ctx, r.key, field(limit.ID), data).Err(); err != nil {
		r.client.HDel(ctx, r.patternKey, limit.Pattern)
		return nil, err
	}
	return &limit, nil
}

// GetByID returns the record with id, or nil when there is none.
func (r *redisSiteLimitRepository) GetByID(ctx context.Context, id int64) (*model.SiteLimit, error) {
	raw, err := r.client.HGet(ctx, r.key, field(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	limit, err := decodeSiteLimit(raw)
	if err != nil {
		return nil, err
	}
	return &limit, nil
}

// GetByPattern resolves pattern through the pattern index.
func (r *redisSiteLimitRepository) GetByPattern(ctx context.Context, pattern string) (*model.SiteLimit, error) {
	raw, err := r.client.HGet(ctx, r.patternKey, pattern).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("pattern index entry %q: %w", pattern, err)
	}
	// nil while a concurrent Create has claimed the pattern but not yet written the record
	return r.GetByID(ctx, id)
}

// List returns every record in creation order.
func (r *redisSiteLimitRepository) List(ctx context.Context) ([]model.SiteLimit, error) {
	all, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, err
	}

	limits := make([]model.SiteLimit, 0, len(all))
	for id, raw := range all {
		limit, err := decodeSiteLimit(raw)
		if err != nil {
			return nil, fmt.Errorf("decode site limit %s: %w", id, err)
		}
		limits = append(limits, limit)
	}
	// snowflake ids sort in creation order
	sort.Slice(limits, func(i, j int) bool { return limits[i].ID < limits[j].ID })
	return limits, nil
}

// Apply mutates one record under WATCH, retrying when another writer wins.
func (r *redisSiteLimitRepository) Apply(ctx context.Context, id int64, fn MutateFunc) (*model.SiteLimit, error) {
	for attempt := 0; attempt < redisApplyRetries; attempt++ {
		var updated *model.SiteLimit
		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			raw, err := tx.HGet(ctx, r.key, field(id)).Result()
			if errors.Is(err, redis.Nil) {
				return sql.ErrNoRows
			}
			if err != nil {
				return err
			}
			limit, err := decodeSiteLimit(raw)
			if err != nil {
				return err
			}
			pattern := limit.Pattern
			if err := fn(&limit); err != nil {
				return err
			}
			// id and pattern are pinned; the pattern index is keyed on the stored pattern.
			limit.ID = id
			limit.Pattern = pattern

			data, err := encodeSiteLimit(limit)
			if err != nil {
				return err
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.HSet(ctx, r.key, field(id), data)
				return nil
			})
			if err == nil {
				updated = &limit
			}
			return err
		}, r.key)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, fmt.Errorf("apply site limit %d: %w", id, redis.TxFailedErr)
}

// Delete removes the record and releases its pattern.
func (r *redisSiteLimitRepository) Delete(ctx context.Context, id int64) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return sql.ErrNoRows
	}

	var removed *redis.IntCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.HDel(ctx, r.key, field(id))
		pipe.HDel(ctx, r.patternKey, current.Pattern)
		return nil
	})
	if err != nil {
		return err
	}
	if removed.Val() == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteAll drops the registry and its pattern index.
func (r *redisSiteLimitRepository) DeleteAll(ctx context.Context) (int64, error) {
	var count *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		count = pipe.HLen(ctx, r.key)
		pipe.Del(ctx, r.key, r.patternKey)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count.Val(), nil
}

func field(id int64) string {
	return strconv.FormatInt(id, 10)
}

func encodeSiteLimit(limit model.SiteLimit) (string, error) {
	data, err := json.Marshal(redisSiteLimit{
		ID:           limit.ID,
		Pattern:      limit.Pattern,
		VisitLimit:   limit.VisitLimit,
		TimeInterval: string(limit.TimeInterval),
		VisitCount:   limit.VisitCount,
		LastReset:    limit.LastReset.UnixMilli(),
		CreatedAt:    limit.CreatedAt.UnixMilli(),
	})
	if err != nil {
		return "", fmt.Errorf("marshal site limit: %w", err)
	}
	return string(data), nil
}

func decodeSiteLimit(raw string) (model.SiteLimit, error) {
	var stored redisSiteLimit
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return model.SiteLimit{}, fmt.Errorf("unmarshal site limit: %w", err)
	}
	return model.SiteLimit{
		ID:           stored.ID,
		Pattern:      stored.Pattern,
		VisitLimit:   stored.VisitLimit,
		TimeInterval: model.TimeInterval(stored.TimeInterval),
		VisitCount:   stored.VisitCount,
		LastReset:    time.UnixMilli(stored.LastReset).UTC(),
		CreatedAt:    time.UnixMilli(stored.CreatedAt).UTC(),
	}, nil
}
