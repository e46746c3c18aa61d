package report

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"actbot/internal/acts"
)

// WindowDays is how far back the weekly summary looks from today.
const WindowDays = 7

// Count is the number of acts one submitter filed inside the window.
type Count struct {
	Name string
	Acts int
}

// Summary содержит результат недельной выборки
type Summary struct {
	From    time.Time
	To      time.Time
	Total   int
	Skipped int
	Acts    []acts.Act
	Counts  []Count
}

// WeeklySummary собирает акты за последние WindowDays дней включительно,
// группирует их по имени отправителя. Акты с нераспознанной датой
// пропускаются и учитываются в Skipped.
func (s *Service) WeeklySummary(ctx context.Context, requester int64) (*Summary, error) {
	if err := s.gate.Authorize(requester); err != nil {
		return nil, err
	}
	items, err := s.store.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan acts: %w", err)
	}
	return Aggregate(items, s.now()), nil
}

// Aggregate applies the weekly window to items relative to now.
func Aggregate(items []acts.Act, now time.Time) *Summary {
	to := acts.StartOfDay(now)
	from := to.AddDate(0, 0, -WindowDays)
	sum := &Summary{From: from, To: to, Total: len(items)}

	byName := make(map[string]int)
	for _, a := range items {
		day, ok := acts.ParseDate(a.Date, now)
		if !ok {
			sum.Skipped++
			continue
		}
		if day.Before(from) || day.After(to) {
			continue
		}
		sum.Acts = append(sum.Acts, a)
		byName[a.SubmitterName]++
	}
	if sum.Skipped > 0 {
		log.Printf("weekly summary: skipped %d acts with unparseable date", sum.Skipped)
	}

	sum.Counts = make([]Count, 0, len(byName))
	for name, n := range byName {
		sum.Counts = append(sum.Counts, Count{Name: name, Acts: n})
	}
	sort.Slice(sum.Counts, func(i, j int) bool { return sum.Counts[i].Name < sum.Counts[j].Name })
	return sum
}

// Text renders the per-submitter counts, one "name: count" line each.
func (sum *Summary) Text() string {
	var b strings.Builder
	b.WriteString("📊 Аналіз за останній тиждень:")
	for _, c := range sum.Counts {
		b.WriteString(fmt.Sprintf("\n%s: %d", c.Name, c.Acts))
	}
	if sum.Skipped > 0 {
		b.WriteString(fmt.Sprintf("\n⚠️ Пропущено записів з нерозпізнаною датою: %d", sum.Skipped))
	}
	return b.String()
}
