//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"visitcap/internal/hostmatch"
	"visitcap/internal/model"
	"visitcap/internal/repository"
	"visitcap/pkg/logger"
	"visitcap/pkg/sanitizer"
)

// SiteLimitDTO is the popup's view of a site limit.
type SiteLimitDTO struct {
	ID             string
	Pattern        string
	VisitLimit     int
	TimeInterval   string
	VisitCount     int
	LastReset      time.Time
	ResetAt        *time.Time
	TimeUntilReset string
	CreatedAt      time.Time
}

// SiteLimitService backs the popup configuration surface.
type SiteLimitService interface {
	Create(ctx context.Context, rawURL string, visitLimit int, timeInterval string) (SiteLimitDTO, error)
	List(ctx context.Context) ([]SiteLimitDTO, error)
	Update(ctx context.Context, id int64, visitLimit int, timeInterval string) (SiteLimitDTO, error)
	Reset(ctx context.Context, id int64) (SiteLimitDTO, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
}

type siteLimitService struct {
	repo repository.SiteLimitRepository
	now  Clock
}

// NewSiteLimitService creates a new SiteLimitService.
func NewSiteLimitService(repo repository.SiteLimitRepository, clock Clock) SiteLimitService {
	return &siteLimitService{repo: repo, now: orSystemClock(clock)}
}

// Create normalizes rawURL into a pattern and stores a new site limit for it.
func (s *siteLimitService) Create(ctx context.Context, rawURL string, visitLimit int, timeInterval string) (SiteLimitDTO, error) {
	pattern := hostmatch.NormalizePattern(sanitizer.CleanInput(rawURL))
	if !hostmatch.IsValidPattern(pattern) {
		return SiteLimitDTO{}, ErrInvalid
	}
	interval, err := validateLimit(visitLimit, timeInterval)
	if err != nil {
		return SiteLimitDTO{}, err
	}

	existing, err := s.repo.GetByPattern(ctx, pattern)
	if err != nil {
		return SiteLimitDTO{}, fmt.Errorf("check pattern: %w", err)
	}
	if existing != nil {
		return SiteLimitDTO{}, ErrConflict
	}

	now := s.now()
	created, err := s.repo.Create(ctx, model.SiteLimit{
		Pattern:      pattern,
		VisitLimit:   visitLimit,
		TimeInterval: interval,
		VisitCount:   0,
		LastReset:    now,
		CreatedAt:    now,
	})
	if errors.Is(err, repository.ErrDuplicatePattern) {
		// a concurrent create of the same pattern won
		return SiteLimitDTO{}, ErrConflict
	}
	if err != nil {
		return SiteLimitDTO{}, fmt.Errorf("create site limit: %w", err)
	}
	logger.Info("site limit created", "pattern", pattern, "visit_limit", visitLimit, "interval", interval)
	return toSiteLimitDTO(*created, now), nil
}

// List returns every site limit as seen at the current time.
func (s *siteLimitService) List(ctx context.Context) ([]SiteLimitDTO, error) {
	limits, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list site limits: %w", err)
	}
	now := s.now()
	dtos := make([]SiteLimitDTO, 0, len(limits))
	for _, limit := range limits {
		dtos = append(dtos, toSiteLimitDTO(limit, now))
	}
	return dtos, nil
}

// Update changes the limit and interval and keeps the running count.
func (s *siteLimitService) Update(ctx context.Context, id int64, visitLimit int, timeInterval string) (SiteLimitDTO, error) {
	interval, err := validateLimit(visitLimit, timeInterval)
	if err != nil {
		return SiteLimitDTO{}, err
	}
	return s.apply(ctx, id, func(limit *model.SiteLimit) error {
		limit.VisitLimit = visitLimit
		limit.TimeInterval = interval
		return nil
	})
}

// Reset zeroes the count and starts a new window now.
func (s *siteLimitService) Reset(ctx context.Context, id int64) (SiteLimitDTO, error) {
	now := s.now()
	return s.apply(ctx, id, func(limit *model.SiteLimit) error {
		limit.VisitCount = 0
		limit.LastReset = now
		return nil
	})
}

// Delete removes a site limit.
func (s *siteLimitService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete site limit: %w", err)
	}
	return nil
}

// DeleteAll removes every site limit.
func (s *siteLimitService) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all site limits: %w", err)
	}
	logger.Info("site limits cleared", "count", n)
	return n, nil
}

func (s *siteLimitService) apply(ctx context.Context, id int64, fn repository.MutateFunc) (SiteLimitDTO, error) {
	updated, err := s.repo.Apply(ctx, id, fn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SiteLimitDTO{}, ErrNotFound
		}
		return SiteLimitDTO{}, fmt.Errorf("update site limit: %w", err)
	}
	return toSiteLimitDTO(*updated, s.now()), nil
}

func validateLimit(visitLimit int, timeInterval string) (model.TimeInterval, error) {
	interval := model.TimeInterval(timeInterval)
	if visitLimit < 1 || !interval.Valid() {
		return "", ErrInvalid
	}
	return interval, nil
}

func toSiteLimitDTO(limit model.SiteLimit, now time.Time) SiteLimitDTO {
	dto := SiteLimitDTO{
		ID:             strconv.FormatInt(limit.ID, 10),
		Pattern:        limit.Pattern,
		VisitLimit:     limit.VisitLimit,
		TimeInterval:   string(limit.TimeInterval),
		VisitCount:     limit.VisitCount,
		LastReset:      limit.LastReset,
		TimeUntilReset: NotAvailable,
		CreatedAt:      limit.CreatedAt,
	}
	resetAt, ok := limit.ResetAt()
	if !ok {
		return dto
	}
	if !now.Before(resetAt) {
		// The stored window has lapsed but nothing has visited since. The next visit restarts
		// the window, so show what it will hold instead of the stale count.
		d, _ := limit.TimeInterval.Duration()
		dto.VisitCount = 0
		resetAt = now.Add(d)
	}
	dto.ResetAt = &resetAt
	dto.TimeUntilReset = FormatTimeUntilReset(resetAt.Sub(now))
	return dto
}
