package report

import (
	"context"
	"fmt"
	"time"

	"actbot/internal/acts"
	"actbot/internal/auth"
)

// Service answers administrator queries over the stored acts. It keeps no
// state of its own: every call rescans the store.
type Service struct {
	store acts.Store
	gate  *auth.Gate
	now   func() time.Time
}

func NewService(store acts.Store, gate *auth.Gate) *Service {
	return &Service{store: store, gate: gate, now: time.Now}
}

// WithClock replaces the time source used for year inference and the weekly
// window.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List returns every act, newest first. Non-administrators get
// auth.ErrAccessDenied before the store is touched.
func (s *Service) List(ctx context.Context, requester int64) ([]acts.Act, error) {
	if err := s.gate.Authorize(requester); err != nil {
		return nil, err
	}
	items, err := s.store.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan acts: %w", err)
	}
	acts.SortForListing(items, s.now())
	return items, nil
}

// FormatAct renders one act for the listing.
func FormatAct(a acts.Act) string {
	return fmt.Sprintf("👤 %s\n📅 %s 🕒 %s\n📍 %s\n📄 %s", a.SubmitterName, a.Date, a.Time, a.Location, a.Description)
}
