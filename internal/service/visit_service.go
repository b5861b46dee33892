//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"visitcap/internal/model"
	"visitcap/internal/repository"
)

// VisitOutcome is the result of counting one visit.
type VisitOutcome struct {
	Limit      model.SiteLimit
	RolledOver bool
	// Block is nil while the visit is still within the limit.
	Block *model.BlockInstruction
}

// VisitService counts visits against a site limit.
type VisitService interface {
	Evaluate(ctx context.Context, limitID int64) (VisitOutcome, error)
}

type visitService struct {
	limits repository.SiteLimitRepository
	now    Clock
}

// NewVisitService creates a new VisitService.
func NewVisitService(limits repository.SiteLimitRepository, clock Clock) VisitService {
	return &visitService{limits: limits, now: orSystemClock(clock)}
}

// Evaluate rolls the window over if it has elapsed, counts the visit and persists the
// record in one atomic step, then decides whether the visit must be blocked.
func (s *visitService) Evaluate(ctx context.Context, limitID int64) (VisitOutcome, error) {
	now := s.now()

	var rolledOver bool
	updated, err := s.limits.Apply(ctx, limitID, func(limit *model.SiteLimit) error {
		rolledOver = rollover(limit, now)
		limit.VisitCount++
		return nil
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return VisitOutcome{}, ErrNotFound
		}
		return VisitOutcome{}, fmt.Errorf("count visit for %d: %w", limitID, err)
	}

	outcome := VisitOutcome{Limit: *updated, RolledOver: rolledOver}
	if updated.Exceeded() {
		outcome.Block = blockInstruction(*updated, now)
	}
	return outcome, nil
}

// rollover starts a new window when now has reached the end of the current one.
func rollover(limit *model.SiteLimit, now time.Time) bool {
	resetAt, ok := limit.ResetAt()
	if !ok || now.Before(resetAt) {
		return false
	}
	limit.VisitCount = 0
	limit.LastReset = now
	return true
}

func blockInstruction(limit model.SiteLimit, now time.Time) *model.BlockInstruction {
	block := &model.BlockInstruction{
		Pattern:        limit.Pattern,
		VisitCount:     limit.VisitCount,
		VisitLimit:     limit.VisitLimit,
		TimeInterval:   limit.TimeInterval,
		TimeUntilReset: NotAvailable,
	}
	if resetAt, ok := limit.ResetAt(); ok {
		block.ResetAt = resetAt
		block.TimeUntilReset = FormatTimeUntilReset(resetAt.Sub(now))
	}
	return block
}
