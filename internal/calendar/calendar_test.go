package calendar

import "testing"

func TestDateForDay(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		dayNumber int
		want      string
		wantErr   bool
	}{
		{
			name:      "day one is the start date",
			startDate: "2024-03-01",
			dayNumber: 1,
			want:      "2024-03-01",
		},
		{
			name:      "within the same month",
			startDate: "2024-03-01",
			dayNumber: 15,
			want:      "2024-03-15",
		},
		{
			name:      "crosses a month boundary",
			startDate: "2024-01-30",
			dayNumber: 3,
			want:      "2024-02-01",
		},
		{
			name:      "crosses a year boundary",
			startDate: "2023-12-30",
			dayNumber: 3,
			want:      "2024-01-01",
		},
		{
			name:      "leap day",
			startDate: "2024-02-28",
			dayNumber: 2,
			want:      "2024-02-29",
		},
		{
			name:      "non-leap year skips to march",
			startDate: "2023-02-28",
			dayNumber: 2,
			want:      "2023-03-01",
		},
		{
			name:      "invalid start date",
			startDate: "03/01/2024",
			dayNumber: 1,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateForDay(tt.startDate, tt.dayNumber)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DateForDay() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("DateForDay(%q, %d) = %q, want %q", tt.startDate, tt.dayNumber, got, tt.want)
			}
		})
	}
}

func TestDayNumberForDate(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		date      string
		want      int
	}{
		{
			name:      "start date is day one",
			startDate: "2024-03-01",
			date:      "2024-03-01",
			want:      1,
		},
		{
			name:      "ten days in",
			startDate: "2024-03-01",
			date:      "2024-03-10",
			want:      10,
		},
		{
			name:      "across a month boundary",
			startDate: "2024-01-30",
			date:      "2024-02-01",
			want:      3,
		},
		{
			name:      "date before the start",
			startDate: "2024-03-10",
			date:      "2024-03-08",
			want:      -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DayNumberForDate(tt.startDate, tt.date)
			if err != nil {
				t.Fatalf("DayNumberForDate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DayNumberForDate(%q, %q) = %d, want %d", tt.startDate, tt.date, got, tt.want)
			}
		})
	}
}

func TestDayNumberRoundTrip(t *testing.T) {
	// DayNumberForDate must invert DateForDay for every day of a long
	// challenge, including the DST transition windows a wall-clock
	// implementation would trip over.
	starts := []string{"2024-01-01", "2024-02-27", "2024-03-08", "2024-10-25", "2023-12-15"}
	for _, start := range starts {
		for day := 1; day <= 120; day++ {
			date, err := DateForDay(start, day)
			if err != nil {
				t.Fatalf("DateForDay(%q, %d) error = %v", start, day, err)
			}
			got, err := DayNumberForDate(start, date)
			if err != nil {
				t.Fatalf("DayNumberForDate(%q, %q) error = %v", start, date, err)
			}
			if got != day {
				t.Fatalf("round trip failed: start %q day %d -> %q -> %d", start, day, date, got)
			}
		}
	}
}

func TestClassify(t *testing.T) {
	today := "2024-03-10"

	tests := []struct {
		name string
		date string
		want DayClass
	}{
		{
			name: "yesterday is past",
			date: "2024-03-09",
			want: DayPast,
		},
		{
			name: "same day is today",
			date: "2024-03-10",
			want: DayToday,
		},
		{
			name: "tomorrow is future",
			date: "2024-03-11",
			want: DayFuture,
		},
		{
			name: "previous year is past",
			date: "2023-12-31",
			want: DayPast,
		},
		{
			name: "next month is future",
			date: "2024-04-01",
			want: DayFuture,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.date, today)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify(%q, %q) = %v, want %v", tt.date, today, got, tt.want)
			}
		})
	}
}

func TestClassifyInvalidDate(t *testing.T) {
	if _, err := Classify("not-a-date", "2024-03-10"); err == nil {
		t.Error("Classify() with invalid date did not return an error")
	}
	if _, err := Classify("2024-03-10", "not-a-date"); err == nil {
		t.Error("Classify() with invalid today did not return an error")
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2024-03-01", true},
		{"2024-13-01", false},
		{"2024-02-30", false},
		{"03/01/2024", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateDate(tt.date); got != tt.want {
			t.Errorf("ValidateDate(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}
