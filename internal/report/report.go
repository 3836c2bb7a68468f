// Package report computes the reporting aggregates over the item and
// announcement collections. All functions are pure; "today" is passed in by
// the caller so the trailing window is testable.
package report

import (
	"math"
	"sort"
	"time"

	"github.com/siriwat/lostfound/internal/model"
)

// WindowDays is the length of the daily-series window.
const WindowDays = 30

// Summary is the headline block of the report view.
type Summary struct {
	Total          int `json:"total"`
	Found          int `json:"found"`
	Stored         int `json:"stored"`
	Claimed        int `json:"claimed"`
	ClaimRate      int `json:"claimRate"`      // percent, 0 on an empty collection
	AvgDaysToClaim int `json:"avgDaysToClaim"` // 0 when no item qualifies
}

// CategoryCount is one row of the category aggregate.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DailyRow is one day of the trailing series. Days with no activity appear
// with zero counts.
type DailyRow struct {
	Date    string `json:"date"` // ISO yyyy-mm-dd
	Found   int    `json:"found"`
	Claimed int    `json:"claimed"`
}

// Summarize computes the status totals, claim rate and average days to claim.
func Summarize(items []model.Item) Summary {
	var s Summary
	s.Total = len(items)

	var daysSum, daysN int
	for _, it := range items {
		switch it.Status {
		case model.StatusFound:
			s.Found++
		case model.StatusStored:
			s.Stored++
		case model.StatusClaimed:
			s.Claimed++
			if d, ok := daysBetween(it.DateFound, it.DateClaimed); ok {
				daysSum += d
				daysN++
			}
		}
	}

	if s.Total > 0 {
		s.ClaimRate = int(math.Round(float64(s.Claimed) / float64(s.Total) * 100))
	}
	if daysN > 0 {
		s.AvgDaysToClaim = int(math.Round(float64(daysSum) / float64(daysN)))
	}
	return s
}

// ByCategory groups items by category and returns (category, count) pairs
// sorted by count descending, name ascending on equal counts.
func ByCategory(items []model.Item) []CategoryCount {
	counts := make(map[string]int)
	for _, it := range items {
		counts[it.Category]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, CategoryCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// DailySeries emits one row per calendar day for the trailing WindowDays
// days ending today (inclusive): how many items were found that day, and how
// many claimed items have that claim date.
func DailySeries(items []model.Item, today time.Time) []DailyRow {
	foundBy := make(map[string]int)
	claimedBy := make(map[string]int)
	for _, it := range items {
		foundBy[it.DateFound]++
		if it.Status == model.StatusClaimed && it.DateClaimed != "" {
			claimedBy[it.DateClaimed]++
		}
	}

	out := make([]DailyRow, 0, WindowDays)
	for i := WindowDays - 1; i >= 0; i-- {
		date := model.Today(today.AddDate(0, 0, -i))
		out = append(out, DailyRow{
			Date:    date,
			Found:   foundBy[date],
			Claimed: claimedBy[date],
		})
	}
	return out
}

// Recent returns the n most recent announcements (the collection is ordered
// newest first).
func Recent(anns []model.Announcement, n int) []model.Announcement {
	if len(anns) > n {
		anns = anns[:n]
	}
	return anns
}

// daysBetween returns the whole days from a to b, floored at 0. A negative
// span is a data-entry anomaly, not an error. Unparseable dates disqualify
// the item.
func daysBetween(a, b string) (int, bool) {
	if a == "" || b == "" {
		return 0, false
	}
	ta, err := time.Parse(model.DateFormat, a)
	if err != nil {
		return 0, false
	}
	tb, err := time.Parse(model.DateFormat, b)
	if err != nil {
		return 0, false
	}
	days := int(math.Round(tb.Sub(ta).Hours() / 24))
	if days < 0 {
		days = 0
	}
	return days, true
}
