//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"strings"

	"visitcap/internal/hostmatch"
	"visitcap/internal/model"
	"visitcap/internal/repository"
	"visitcap/internal/tabtrack"
	"visitcap/internal/urlutil"
	"visitcap/pkg/logger"
)

// ObserverService turns host tab events into at most one counted visit per tab.
type ObserverService interface {
	// HandleEvent returns a redirect when the tab must be sent to the blocked page.
	// Registry failures are logged and yield no redirect and no error.
	HandleEvent(ctx context.Context, event model.TabEvent) (*model.Redirect, error)
	TrackedTabs() int
}

type observerService struct {
	limits     repository.SiteLimitRepository
	visits     VisitService
	tabs       *tabtrack.Tracker
	blockedURL string
	now        Clock
}

// NewObserverService creates a new ObserverService.
func NewObserverService(
	limits repository.SiteLimitRepository,
	visits VisitService,
	tabs *tabtrack.Tracker,
	blockedURL string,
	clock Clock,
) ObserverService {
	return &observerService{
		limits:     limits,
		visits:     visits,
		tabs:       tabs,
		blockedURL: blockedURL,
		now:        orSystemClock(clock),
	}
}

// TrackedTabs returns how many tabs currently have a counted visit.
func (s *observerService) TrackedTabs() int {
	return s.tabs.Size()
}

// HandleEvent applies one tab event and returns the redirect for a blocked visit.
func (s *observerService) HandleEvent(ctx context.Context, event model.TabEvent) (*model.Redirect, error) {
	switch event.Type {
	case model.TabCreated:
	case model.TabUpdated:
		if event.ChangeInfo.URL == "" && event.ChangeInfo.Status != model.TabStatusComplete {
			return nil, nil
		}
	case model.TabRemoved:
		if event.TabID != nil && s.tabs.Forget(*event.TabID) {
			logger.Debug("forgot closed tab", "tab_id", *event.TabID)
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unknown tab event type %q", ErrInvalid, event.Type)
	}

	rawURL := event.ChangeInfo.URL
	if rawURL == "" {
		rawURL = event.URL
	}
	rawURL = strings.TrimSpace(rawURL)
	if event.TabID == nil || rawURL == "" || urlutil.IsPrivileged(rawURL) {
		return nil, nil
	}
	tabID := *event.TabID

	if s.tabs.Seen(tabID) {
		return nil, nil
	}

	limits, err := s.limits.List(ctx)
	if err != nil {
		logger.Error("read site limits", "tab_id", tabID, "error", err)
		return nil, nil
	}
	matched, ok := hostmatch.FindMatch(rawURL, limits)
	if !ok {
		return nil, nil
	}

	// Another event for this tab may have matched in the meantime.
	if !s.tabs.MarkSeen(tabID, s.now()) {
		return nil, nil
	}

	outcome, err := s.visits.Evaluate(ctx, matched.ID)
	if err != nil {
		logger.Error("count visit", "tab_id", tabID, "pattern", matched.Pattern, "error", err)
		return nil, nil
	}
	logger.Debug("visit counted",
		"tab_id", tabID,
		"pattern", outcome.Limit.Pattern,
		"visit_count", outcome.Limit.VisitCount,
		"visit_limit", outcome.Limit.VisitLimit,
		"rolled_over", outcome.RolledOver,
	)
	if outcome.Block == nil {
		return nil, nil
	}

	target, err := BuildBlockedURL(s.blockedURL, *outcome.Block)
	if err != nil {
		logger.Error("build blocked page url", "tab_id", tabID, "error", err)
		return nil, nil
	}
	logger.Info("visit limit exceeded",
		"pattern", outcome.Block.Pattern,
		"visit_count", outcome.Block.VisitCount,
		"visit_limit", outcome.Block.VisitLimit,
	)
	return &model.Redirect{TabID: tabID, URL: target}, nil
}
