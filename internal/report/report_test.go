package report

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/siriwat/lostfound/internal/model"
)

var today = time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

func claimedItem(found, claimed string) model.Item {
	return model.Item{
		ID: model.NewID(), Title: "x", LocationFound: "a", StorageLocation: "b",
		Status: model.StatusClaimed, DateFound: found, DateClaimed: claimed, Claimer: "owner",
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.ClaimRate != 0 || s.AvgDaysToClaim != 0 {
		t.Errorf("empty collection must summarize to zeros, got %+v", s)
	}
}

func TestSummarizeTotalsAndClaimRate(t *testing.T) {
	items := []model.Item{
		{Status: model.StatusFound, DateFound: "2026-08-30"},
		{Status: model.StatusStored, DateFound: "2026-08-29"},
		claimedItem("2026-08-20", "2026-08-25"),
	}

	s := Summarize(items)
	if s.Total != 3 || s.Found != 1 || s.Stored != 1 || s.Claimed != 1 {
		t.Errorf("unexpected totals: %+v", s)
	}
	if s.ClaimRate != 33 { // round(1/3*100)
		t.Errorf("expected claim rate 33, got %d", s.ClaimRate)
	}
	if s.AvgDaysToClaim != 5 {
		t.Errorf("expected 5 days to claim, got %d", s.AvgDaysToClaim)
	}
}

func TestClaimRateAllClaimed(t *testing.T) {
	items := []model.Item{
		claimedItem("2026-08-20", "2026-08-22"),
		claimedItem("2026-08-21", "2026-08-21"),
	}
	s := Summarize(items)
	if s.ClaimRate != 100 {
		t.Errorf("expected 100, got %d", s.ClaimRate)
	}
	if s.AvgDaysToClaim != 1 { // round((2+0)/2)
		t.Errorf("expected avg 1, got %d", s.AvgDaysToClaim)
	}
}

func TestAvgDaysToClaimFloorsNegative(t *testing.T) {
	// Claim date before found date is a data-entry anomaly, floored at 0.
	items := []model.Item{claimedItem("2026-08-25", "2026-08-20")}
	s := Summarize(items)
	if s.AvgDaysToClaim != 0 {
		t.Errorf("expected 0, got %d", s.AvgDaysToClaim)
	}
}

func TestAvgDaysToClaimSkipsIncomplete(t *testing.T) {
	items := []model.Item{
		claimedItem("2026-08-20", "2026-08-24"),
		{Status: model.StatusClaimed, DateFound: "2026-08-20"}, // no claim date
		{Status: model.StatusClaimed, DateFound: "garbage", DateClaimed: "2026-08-24"},
	}
	s := Summarize(items)
	if s.AvgDaysToClaim != 4 {
		t.Errorf("expected 4 (only the complete record qualifies), got %d", s.AvgDaysToClaim)
	}
}

func TestByCategory(t *testing.T) {
	items := []model.Item{
		{Category: "Electronics"},
		{Category: "Electronics"},
		{Category: "Documents"},
		{Category: "Clothing"},
	}

	got := ByCategory(items)
	if len(got) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(got))
	}
	if got[0].Name != "Electronics" || got[0].Count != 2 {
		t.Errorf("expected Electronics first, got %+v", got[0])
	}
	// Equal counts order by name.
	if got[1].Name != "Clothing" || got[2].Name != "Documents" {
		t.Errorf("expected name tie-break, got %+v", got[1:])
	}

	// Counts sum to the item total.
	sum := 0
	for _, c := range got {
		sum += c.Count
	}
	if sum != len(items) {
		t.Errorf("category counts sum %d, want %d", sum, len(items))
	}
}

func TestDailySeriesWindow(t *testing.T) {
	items := []model.Item{
		{DateFound: "2026-08-31", Status: model.StatusFound},
		{DateFound: "2026-08-31", Status: model.StatusFound},
		{DateFound: "2026-08-02", Status: model.StatusFound},
		{DateFound: "2026-07-01", Status: model.StatusFound}, // outside the window
		claimedItem("2026-08-20", "2026-08-30"),
	}

	rows := DailySeries(items, today)
	if len(rows) != WindowDays {
		t.Fatalf("expected %d rows, got %d", WindowDays, len(rows))
	}
	if rows[0].Date != "2026-08-02" || rows[len(rows)-1].Date != "2026-08-31" {
		t.Errorf("window bounds wrong: %s .. %s", rows[0].Date, rows[len(rows)-1].Date)
	}

	byDate := make(map[string]DailyRow)
	foundSum := 0
	for _, r := range rows {
		byDate[r.Date] = r
		foundSum += r.Found
	}
	if byDate["2026-08-31"].Found != 2 {
		t.Errorf("expected 2 found on 2026-08-31, got %d", byDate["2026-08-31"].Found)
	}
	if byDate["2026-08-30"].Claimed != 1 {
		t.Errorf("expected 1 claimed on 2026-08-30, got %d", byDate["2026-08-30"].Claimed)
	}
	if byDate["2026-08-15"].Found != 0 || byDate["2026-08-15"].Claimed != 0 {
		t.Error("inactive days must appear with zero counts")
	}
	// Found column sums to items found within the window (the claimed item
	// was found on 2026-08-20, inside it).
	if foundSum != 4 {
		t.Errorf("expected found sum 4 within window, got %d", foundSum)
	}
}

func TestRecent(t *testing.T) {
	anns := []model.Announcement{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	got := Recent(anns, 2)
	if len(got) != 2 || got[0].ID != "a" {
		t.Errorf("expected first 2, got %v", got)
	}
	if got := Recent(anns, 10); len(got) != 3 {
		t.Errorf("expected all 3, got %d", len(got))
	}
}

func TestRenderPNG(t *testing.T) {
	items := []model.Item{
		{Category: "Electronics", DateFound: "2026-08-30", Status: model.StatusFound},
		claimedItem("2026-08-20", "2026-08-25"),
	}
	data, err := RenderPNG(Summarize(items), ByCategory(items), DailySeries(items, today), today)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding rendered chart: %v", err)
	}
	if img.Bounds().Dx() != chartWidth || img.Bounds().Dy() != chartHeight {
		t.Errorf("unexpected canvas %v", img.Bounds())
	}
}

func TestRenderPNGEmpty(t *testing.T) {
	data, err := RenderPNG(Summarize(nil), ByCategory(nil), DailySeries(nil, today), today)
	if err != nil {
		t.Fatalf("RenderPNG on empty state: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("decoding rendered chart: %v", err)
	}
}
