package progress

import (
	"testing"

	"github.com/learntrack/learntrack/internal/models"
)

func challengeWithEntries(totalDays int, startDate string, days ...int) models.Challenge {
	entries := make(map[int]string, len(days))
	for _, d := range days {
		entries[d] = "logged"
	}
	return models.Challenge{
		ID:        "test",
		Title:     "Test Challenge",
		TotalDays: totalDays,
		StartDate: startDate,
		Entries:   entries,
	}
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name string
		days []int
		want int
	}{
		{
			name: "no entries",
			days: nil,
			want: 0,
		},
		{
			name: "single entry",
			days: []int{4},
			want: 1,
		},
		{
			name: "unbroken run",
			days: []int{1, 2, 3},
			want: 3,
		},
		{
			name: "gap before the latest day",
			days: []int{1, 2, 3, 5},
			want: 1,
		},
		{
			name: "run ending at the latest day",
			days: []int{1, 3, 4, 5},
			want: 3,
		},
		{
			name: "two separate runs counts only the latest",
			days: []int{1, 2, 5, 6, 7},
			want: 3,
		},
		{
			name: "run not reaching today still counts",
			days: []int{10, 11, 12},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := challengeWithEntries(30, "2024-03-01", tt.days...)
			if got := CurrentStreak(c); got != tt.want {
				t.Errorf("CurrentStreak(%v) = %d, want %d", tt.days, got, tt.want)
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name      string
		totalDays int
		entries   int
		want      int
	}{
		{
			name:      "no entries",
			totalDays: 30,
			entries:   0,
			want:      0,
		},
		{
			name:      "half done",
			totalDays: 30,
			entries:   15,
			want:      50,
		},
		{
			name:      "rounds to nearest",
			totalDays: 7,
			entries:   3,
			want:      43,
		},
		{
			name:      "all days logged",
			totalDays: 7,
			entries:   7,
			want:      100,
		},
		{
			name:      "entries beyond the nominal range exceed 100",
			totalDays: 10,
			entries:   12,
			want:      120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := make([]int, tt.entries)
			for i := range days {
				days[i] = i + 1
			}
			c := challengeWithEntries(tt.totalDays, "2024-03-01", days...)
			if got := Percentage(c); got != tt.want {
				t.Errorf("Percentage() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPercentageZeroTotalDays(t *testing.T) {
	// A zero-length challenge cannot be created through the store, but the
	// model must not divide by zero on imported data.
	c := challengeWithEntries(0, "2024-03-01", 1)
	if got := Percentage(c); got != 0 {
		t.Errorf("Percentage() with zero totalDays = %d, want 0", got)
	}
}

func TestStatus(t *testing.T) {
	today := "2024-03-10"
	c := challengeWithEntries(14, "2024-03-01", 1, 2, 3, 9)

	tests := []struct {
		name      string
		dayNumber int
		want      DayStatus
	}{
		{
			name:      "logged day is completed",
			dayNumber: 2,
			want:      StatusCompleted,
		},
		{
			name:      "unlogged past day is missed",
			dayNumber: 4,
			want:      StatusMissed,
		},
		{
			name:      "logged past day stays completed",
			dayNumber: 9,
			want:      StatusCompleted,
		},
		{
			name:      "current day",
			dayNumber: 10,
			want:      StatusToday,
		},
		{
			name:      "future day is upcoming",
			dayNumber: 11,
			want:      StatusUpcoming,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Status(c, tt.dayNumber, today)
			if err != nil {
				t.Fatalf("Status() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Status(day %d) = %q, want %q", tt.dayNumber, got, tt.want)
			}
		})
	}
}

func TestStatusCompletedTakesPriorityOverToday(t *testing.T) {
	c := challengeWithEntries(7, "2024-03-01", 10)
	got, err := Status(c, 10, "2024-03-10")
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if got != StatusCompleted {
		t.Errorf("Status() = %q, want %q: a logged entry outranks the date", got, StatusCompleted)
	}
}

func TestIsFullyComplete(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		entries int
		want    bool
	}{
		{"partial", 7, 3, false},
		{"exact", 7, 7, true},
		{"beyond nominal range", 7, 8, true},
		{"empty", 7, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := make([]int, tt.entries)
			for i := range days {
				days[i] = i + 1
			}
			c := challengeWithEntries(tt.total, "2024-03-01", days...)
			if got := IsFullyComplete(c); got != tt.want {
				t.Errorf("IsFullyComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysRemaining(t *testing.T) {
	c := challengeWithEntries(30, "2024-03-01", 1, 2, 3)
	if got := DaysRemaining(c); got != 27 {
		t.Errorf("DaysRemaining() = %d, want 27", got)
	}
}

// End-to-end over a single week: a 7-day challenge started 2024-03-01 with
// entries for days 1-3, viewed mid-challenge on 2024-03-05.
func TestWeekChallengeScenario(t *testing.T) {
	c := challengeWithEntries(7, "2024-03-01", 1, 2, 3)
	today := "2024-03-05"

	if got := CompletedDays(c); got != 3 {
		t.Errorf("CompletedDays() = %d, want 3", got)
	}
	if got := Percentage(c); got != 43 {
		t.Errorf("Percentage() = %d, want 43", got)
	}
	if got := CurrentStreak(c); got != 3 {
		t.Errorf("CurrentStreak() = %d, want 3", got)
	}

	day4, err := Status(c, 4, today)
	if err != nil {
		t.Fatalf("Status(day 4) error = %v", err)
	}
	if day4 != StatusMissed {
		t.Errorf("Status(day 4) = %q, want %q", day4, StatusMissed)
	}

	day7, err := Status(c, 7, today)
	if err != nil {
		t.Fatalf("Status(day 7) error = %v", err)
	}
	if day7 != StatusUpcoming {
		t.Errorf("Status(day 7) = %q, want %q", day7, StatusUpcoming)
	}

	// Once the whole week has gone by, unlogged days all read as missed.
	day7After, err := Status(c, 7, "2024-03-10")
	if err != nil {
		t.Fatalf("Status(day 7, after) error = %v", err)
	}
	if day7After != StatusMissed {
		t.Errorf("Status(day 7) after the challenge window = %q, want %q", day7After, StatusMissed)
	}
}
