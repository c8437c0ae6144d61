package datemath_test

import (
	"testing"
	"time"

	"life-admin/pkg/datemath"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "2024-05-01"},
		{in: "2024-02-29"},
		{in: "2023-02-29", wantErr: true},
		{in: "2024-13-01", wantErr: true},
		{in: "2024-5-1", wantErr: true},
		{in: "2024-05-01T00:00:00Z", wantErr: true},
		{in: "", wantErr: true},
		{in: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := datemath.ParseDate(tt.in, time.UTC)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if datemath.ValidDate(tt.in) == tt.wantErr {
				t.Errorf("ValidDate(%q) disagrees with ParseDate", tt.in)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in       string
		wantHour int
		wantMin  int
		wantErr  bool
	}{
		{in: "09:30", wantHour: 9, wantMin: 30},
		{in: "00:00"},
		{in: "23:59", wantHour: 23, wantMin: 59},
		{in: "24:00", wantErr: true},
		{in: "9:30", wantErr: true},
		{in: "09:60", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, m, err := datemath.ParseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if h != tt.wantHour || m != tt.wantMin {
				t.Errorf("ParseClock(%q) = %d:%d, want %d:%d", tt.in, h, m, tt.wantHour, tt.wantMin)
			}
		})
	}
}

func TestDayOffset(t *testing.T) {
	dubai, err := time.LoadLocation("Asia/Dubai")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		name string
		date string
		now  time.Time
		loc  *time.Location
		want int
	}{
		{
			name: "same day late evening",
			date: "2024-05-01",
			now:  time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC),
			loc:  time.UTC,
			want: 0,
		},
		{
			name: "tomorrow",
			date: "2024-05-02",
			now:  time.Date(2024, 5, 1, 0, 1, 0, 0, time.UTC),
			loc:  time.UTC,
			want: 1,
		},
		{
			name: "yesterday",
			date: "2024-04-30",
			now:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			loc:  time.UTC,
			want: -1,
		},
		{
			name: "local date differs from UTC",
			date: "2024-05-02",
			now:  time.Date(2024, 5, 1, 21, 0, 0, 0, time.UTC),
			loc:  dubai,
			want: 0,
		},
		{
			name: "across spring forward",
			date: "2024-03-11",
			now:  time.Date(2024, 3, 9, 23, 30, 0, 0, newYork),
			loc:  newYork,
			want: 2,
		},
		{
			name: "across year boundary",
			date: "2025-01-01",
			now:  time.Date(2024, 12, 31, 8, 0, 0, 0, time.UTC),
			loc:  time.UTC,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datemath.DayOffset(tt.date, tt.now, tt.loc)
			if err != nil {
				t.Fatalf("DayOffset() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DayOffset() = %d, want %d", got, tt.want)
			}
		})
	}

	if _, err := datemath.DayOffset("not-a-date", time.Now(), time.UTC); err == nil {
		t.Errorf("expected error for invalid date")
	}
}

func TestToday(t *testing.T) {
	dubai, err := time.LoadLocation("Asia/Dubai")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	now := time.Date(2024, 5, 1, 21, 0, 0, 0, time.UTC)
	if got := datemath.Today(now, dubai); got != "2024-05-02" {
		t.Errorf("Today() = %q, want 2024-05-02", got)
	}
}

func TestCombine(t *testing.T) {
	got, err := datemath.Combine("2024-05-01", "14:30", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Combine() = %v, want %v", got, want)
	}

	got, err = datemath.Combine("2024-05-01", "", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Combine() without clock = %v, want midnight", got)
	}

	if _, err := datemath.Combine("2024-05-01", "7pm", time.UTC); err == nil {
		t.Errorf("expected error for invalid clock")
	}
}
