package services

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	dashrepo "github.com/vendora/vendora-backend/internal/data/repos/dashboard"
	types "github.com/vendora/vendora-backend/internal/domain"
)

func TestParsePeriod(t *testing.T) {
	cases := map[string]Period{
		"day":     PeriodDay,
		"week":    PeriodWeek,
		"month":   PeriodMonth,
		"year":    PeriodYear,
		"":        PeriodMonth,
		"quarter": PeriodMonth,
		"DAY":     PeriodMonth,
	}
	for in, want := range cases {
		if got := ParsePeriod(in); got != want {
			t.Errorf("ParsePeriod(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 30, 45, 0, time.UTC)

	cases := []struct {
		period Period
		want   time.Time
	}{
		{PeriodDay, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)},
		{PeriodWeek, now.Add(-7 * 24 * time.Hour)},
		{PeriodMonth, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{PeriodYear, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		if got := tc.period.Start(now); !got.Equal(tc.want) {
			t.Errorf("%s.Start() = %v, want %v", tc.period, got, tc.want)
		}
	}
}

func TestPeriodBucketLayout(t *testing.T) {
	for _, p := range []Period{PeriodDay, PeriodWeek, PeriodMonth} {
		if got := p.BucketLayout(); got != "2006-01-02" {
			t.Errorf("%s.BucketLayout() = %q, want daily", p, got)
		}
	}
	if got := PeriodYear.BucketLayout(); got != "2006-01" {
		t.Errorf("year.BucketLayout() = %q, want monthly", got)
	}
}

func TestSummarizeSales(t *testing.T) {
	got := summarizeSales([]*types.Order{
		{TotalAmount: 5},
		{TotalAmount: 3},
		{TotalAmount: 2},
	})
	if got.TotalSales != 10 {
		t.Errorf("TotalSales = %v, want 10", got.TotalSales)
	}
	if got.TotalOrders != 3 {
		t.Errorf("TotalOrders = %v, want 3", got.TotalOrders)
	}
	if got.AverageOrderValue != 3.33 {
		t.Errorf("AverageOrderValue = %v, want 3.33", got.AverageOrderValue)
	}
}

func TestSummarizeSalesEmpty(t *testing.T) {
	got := summarizeSales(nil)
	if got.TotalSales != 0 || got.TotalOrders != 0 || got.AverageOrderValue != 0 {
		t.Fatalf("empty summary = %+v, want zeros", got)
	}
}

func TestStatusBreakdownZeroFills(t *testing.T) {
	got := statusBreakdown([]dashrepo.StatusCount{
		{Status: types.OrderStatusCompleted, Count: 4},
		{Status: types.OrderStatusPending, Count: 1},
	})
	want := map[string]int64{
		"pending":    1,
		"processing": 0,
		"completed":  4,
		"cancelled":  0,
	}
	if len(got) != len(want) {
		t.Fatalf("breakdown has %d statuses, want %d: %+v", len(got), len(want), got)
	}
	for status, count := range want {
		if got[status] != count {
			t.Errorf("breakdown[%q] = %d, want %d", status, got[status], count)
		}
	}
}

func TestDashboardCacheKeysCoverAllPeriods(t *testing.T) {
	keys := dashboardCacheKeys(uuid.New())
	if len(keys) != 8 {
		t.Fatalf("got %d keys, want 8", len(keys))
	}
	seen := map[string]bool{}
	for _, k := range keys {
		if seen[k] {
			t.Fatalf("duplicate key %q", k)
		}
		seen[k] = true
		if !strings.HasPrefix(k, "dashboard:stats:") && !strings.HasPrefix(k, "dashboard:sales:") {
			t.Errorf("unexpected key %q", k)
		}
	}
}

func TestBucketSales(t *testing.T) {
	at := func(day int) time.Time {
		return time.Date(2026, time.March, day, 12, 0, 0, 0, time.UTC)
	}
	orders := []*types.Order{
		{TotalAmount: 10, CreatedAt: at(3)},
		{TotalAmount: 25, CreatedAt: at(1)},
		{TotalAmount: 5, CreatedAt: at(3)},
	}

	points := bucketSales(orders, "2006-01-02")
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].Date != "2026-03-01" || points[1].Date != "2026-03-03" {
		t.Fatalf("points not in ascending date order: %+v", points)
	}
	if points[0].Sales != 25 || points[0].Orders != 1 {
		t.Errorf("first bucket = %+v, want sales 25 orders 1", points[0])
	}
	if points[1].Sales != 15 || points[1].Orders != 2 {
		t.Errorf("second bucket = %+v, want sales 15 orders 2", points[1])
	}
}

func TestBucketSalesMonthly(t *testing.T) {
	orders := []*types.Order{
		{TotalAmount: 100, CreatedAt: time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)},
		{TotalAmount: 50, CreatedAt: time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)},
	}
	points := bucketSales(orders, "2006-01")
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].Date != "2026-01" || points[1].Date != "2026-02" {
		t.Fatalf("unexpected monthly buckets: %+v", points)
	}
}

func TestBucketSalesEmpty(t *testing.T) {
	if points := bucketSales(nil, "2006-01-02"); len(points) != 0 {
		t.Fatalf("expected no points, got %+v", points)
	}
}
