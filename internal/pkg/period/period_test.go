package period

import (
	"testing"
	"time"
)

func TestQuarterBoundaries(t *testing.T) {
	r := NewResolver(9)

	cases := []struct {
		ts      time.Time
		year    int
		quarter int
	}{
		{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 2025, 1},
		{time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC), 2025, 1},
		{time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 2025, 2},
		{time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), 2025, 3},
		{time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), 2025, 4},
		// UTC 12-31 15:00 在 UTC+9 已是次年 1 月 1 日
		{time.Date(2025, 12, 31, 15, 0, 0, 0, time.UTC), 2026, 1},
		// UTC 3-31 15:00 在 UTC+9 已是 4 月 1 日
		{time.Date(2025, 3, 31, 15, 0, 0, 0, time.UTC), 2025, 2},
	}

	for _, c := range cases {
		year, quarter := r.Quarter(c.ts)
		if year != c.year || quarter != c.quarter {
			t.Fatalf("Quarter(%v) = %d/%d, want %d/%d", c.ts, year, quarter, c.year, c.quarter)
		}
	}
}

func TestTimeOfDay(t *testing.T) {
	r := NewResolver(0)

	cases := []struct {
		hour int
		want string
	}{
		{0, Dawn},
		{5, Dawn},
		{6, Morning},
		{11, Morning},
		{12, Afternoon},
		{17, Afternoon},
		{18, Night},
		{23, Night},
	}

	for _, c := range cases {
		ts := time.Date(2025, 6, 1, c.hour, 30, 0, 0, time.UTC)
		if got := r.TimeOfDay(ts); got != c.want {
			t.Fatalf("TimeOfDay(hour=%d) = %s, want %s", c.hour, got, c.want)
		}
	}
}

func TestTimeOfDayUsesOffset(t *testing.T) {
	r := NewResolver(9)

	// UTC 22:00 在 UTC+9 是次日 07:00
	ts := time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC)
	if got := r.TimeOfDay(ts); got != Morning {
		t.Fatalf("TimeOfDay = %s, want %s", got, Morning)
	}
}

func TestDayRange(t *testing.T) {
	r := NewResolver(9)

	ts := time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC)
	start, end := r.DayRange(ts)

	if !start.Before(ts) && !start.Equal(ts) {
		if ts.Before(start) && !ts.Equal(start) {
			t.Fatalf("DayRange start %v after ts %v", start, ts)
		}
	}
	if !ts.Before(end) {
		t.Fatalf("ts %v not before end %v", ts, end)
	}
	if got := end.Sub(start); got != 24*time.Hour {
		t.Fatalf("day span = %v, want 24h", got)
	}
	// UTC+9 当地为 6 月 2 日
	if r.DateKey(ts) != "2025-06-02" {
		t.Fatalf("DateKey = %s, want 2025-06-02", r.DateKey(ts))
	}
	if !start.Equal(r.Midnight(ts)) {
		t.Fatalf("start %v != midnight %v", start, r.Midnight(ts))
	}
}

func TestUntilMidnight(t *testing.T) {
	r := NewResolver(0)

	ts := time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC)
	if got := r.UntilMidnight(ts); got != time.Hour {
		t.Fatalf("UntilMidnight = %v, want 1h", got)
	}
}

func TestPrevQuarter(t *testing.T) {
	if y, q := PrevQuarter(2025, 1); y != 2024 || q != 4 {
		t.Fatalf("PrevQuarter(2025,1) = %d/%d, want 2024/4", y, q)
	}
	if y, q := PrevQuarter(2025, 3); y != 2025 || q != 2 {
		t.Fatalf("PrevQuarter(2025,3) = %d/%d, want 2025/2", y, q)
	}
}
