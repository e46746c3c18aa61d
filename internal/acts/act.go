package acts

import (
	"context"
	"sort"
	"time"
)

// Act is a single submitted work record. Date, Time, Location and Description
// hold the submitter's text verbatim.
type Act struct {
	SubmitterID   int64  `json:"user_id"`
	SubmitterName string `json:"name"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Location      string `json:"location"`
	Description   string `json:"description"`
}

// Store is append-only: there is no update or delete.
type Store interface {
	Insert(ctx context.Context, act Act) error
	ScanAll(ctx context.Context) ([]Act, error)
}

// SortForListing orders acts newest first by parsed date. Year-less dates
// are placed in now's year. Acts whose date does not parse go after the
// dated ones; ties and undated acts fall back to the raw date text,
// descending.
func SortForListing(items []Act, now time.Time) {
	type keyed struct {
		act    Act
		day    time.Time
		parsed bool
	}
	ks := make([]keyed, len(items))
	for i, a := range items {
		d, ok := listingDay(a.Date, now)
		ks[i] = keyed{act: a, day: d, parsed: ok}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		a, b := ks[i], ks[j]
		if a.parsed != b.parsed {
			return a.parsed
		}
		if a.parsed && !a.day.Equal(b.day) {
			return a.day.After(b.day)
		}
		return a.act.Date > b.act.Date
	})
	for i := range ks {
		items[i] = ks[i].act
	}
}
