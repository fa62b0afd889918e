package astrotime

import (
	"errors"
	"math"
	"testing"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want float64
		tol  float64
	}{
		{
			name: "J2000 epoch",
			date: Date{2000, Jan, 1.5, Gregorian},
			want: 2451545.0,
			tol:  1e-9,
		},
		{
			name: "Sputnik launch 1957-10-04.81",
			date: Date{1957, Oct, 4.81, Gregorian},
			want: 2436116.31,
			tol:  1e-6,
		},
		{
			name: "333 Jan 27 12h Julian",
			date: Date{333, Jan, 27.5, Julian},
			want: 1842713.0,
			tol:  1e-9,
		},
		{
			name: "837 Apr 10.3 Julian",
			date: Date{837, Apr, 10.3, Julian},
			want: 2026871.8,
			tol:  1e-6,
		},
		{
			name: "-584 May 28.63 Julian",
			date: Date{-584, May, 28.63, Julian},
			want: 1507900.13,
			tol:  1e-6,
		},
		{
			name: "-4712 Jan 1.5 Julian is day zero",
			date: Date{-4712, Jan, 1.5, Julian},
			want: 0.0,
			tol:  1e-9,
		},
		{
			name: "Unix epoch",
			date: Date{1970, Jan, 1.0, Gregorian},
			want: 2440587.5,
			tol:  1e-9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDay(tt.date)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("JulianDay() = %v, want %v (±%v)", got, tt.want, tt.tol)
			}
		})
	}
}

func TestJulianDayReformBoundary(t *testing.T) {
	// 1582-10-04 (Julian) and 1582-10-15 (Gregorian) are consecutive
	// days across the calendar reform.
	last := JulianDay(Date{1582, Oct, 4, Julian})
	first := JulianDay(Date{1582, Oct, 15, Gregorian})

	if diff := first - last; diff != 1 {
		t.Errorf("reform boundary: JD(1582-10-15 G) - JD(1582-10-04 J) = %v, want 1", diff)
	}
	if first != 2299160.5 {
		t.Errorf("JD(1582-10-15 G) = %v, want 2299160.5", first)
	}
}

func TestDateFromJulianDay(t *testing.T) {
	tests := []struct {
		name      string
		jd        float64
		wantYear  int
		wantMonth Month
		wantDay   float64
	}{
		{"Sputnik", 2436116.31, 1957, Oct, 4.81},
		{"J2000 noon", 2451545.0, 2000, Jan, 1.5},
		{"333 Jan 27.5 (Julian arithmetic)", 1842713.0, 333, Jan, 27.5},
		{"-584 May 28.63 (Julian arithmetic)", 1507900.13, -584, May, 28.63},
		{"first Gregorian day", 2299160.5, 1582, Oct, 15.0},
		{"last Julian day", 2299159.5, 1582, Oct, 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month, day, err := DateFromJulianDay(tt.jd)
			if err != nil {
				t.Fatalf("DateFromJulianDay(%v) error: %v", tt.jd, err)
			}
			if year != tt.wantYear || month != tt.wantMonth {
				t.Errorf("DateFromJulianDay(%v) = %d %v, want %d %v",
					tt.jd, year, month, tt.wantYear, tt.wantMonth)
			}
			if math.Abs(day-tt.wantDay) > 1e-6 {
				t.Errorf("DateFromJulianDay(%v) day = %v, want %v", tt.jd, day, tt.wantDay)
			}
		})
	}
}

func TestDateFromJulianDayNegative(t *testing.T) {
	_, _, _, err := DateFromJulianDay(-1.0)
	if err == nil {
		t.Fatal("DateFromJulianDay(-1.0) should return an error")
	}
	if !errors.Is(err, ErrNegativeJulianDay) {
		t.Errorf("error = %v, want ErrNegativeJulianDay", err)
	}
}

func TestJulianDayRoundTrip(t *testing.T) {
	// Whole Gregorian dates must survive a round trip through the
	// Julian day within 1e-6 days.
	dates := []Date{
		{1600, Jan, 1, Gregorian},
		{1600, Dec, 31, Gregorian},
		{1858, Nov, 17, Gregorian},
		{1900, Feb, 28, Gregorian},
		{1999, Dec, 31, Gregorian},
		{2000, Feb, 29, Gregorian},
		{2024, June, 15, Gregorian},
		{2100, Mar, 1, Gregorian},
	}

	for _, d := range dates {
		jd := JulianDay(d)
		year, month, day, err := DateFromJulianDay(jd)
		if err != nil {
			t.Fatalf("round trip %v: %v", d, err)
		}
		if year != d.Year || month != d.Month || math.Abs(day-d.DecimalDay) > 1e-6 {
			t.Errorf("round trip %v = %d %v %v", d, year, month, day)
		}
	}
}

func TestWeekdayFromDate(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want Weekday
	}{
		{"2000-01-01 (JD 2451545 at noon)", Date{2000, Jan, 1.5, Gregorian}, Saturday},
		{"1954-06-30", Date{1954, June, 30, Gregorian}, Wednesday},
		{"1969-07-20", Date{1969, July, 20, Gregorian}, Sunday},
		{"2024-12-25", Date{2024, Dec, 25, Gregorian}, Wednesday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekdayFromDate(tt.date); got != tt.want {
				t.Errorf("WeekdayFromDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year    int
		calType CalType
		want    bool
	}{
		{2000, Gregorian, true},
		{1900, Gregorian, false},
		{1900, Julian, true},
		{2024, Gregorian, true},
		{2023, Gregorian, false},
		{1600, Gregorian, true},
		{100, Julian, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year, tt.calType); got != tt.want {
			t.Errorf("IsLeapYear(%d, %v) = %v, want %v", tt.year, tt.calType, got, tt.want)
		}
	}
}

func TestDecimalDay(t *testing.T) {
	tests := []struct {
		name string
		dom  DayOfMonth
		want float64
	}{
		{"midnight UT", DayOfMonth{Day: 1}, 1.0},
		{"noon UT", DayOfMonth{Day: 4, Hr: 12}, 4.5},
		{"with minutes and seconds", DayOfMonth{Day: 10, Hr: 6, Min: 36, Sec: 0}, 10.275},
		{"pacific time zone", DayOfMonth{Day: 2, Hr: 4, TimeZone: -8}, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.dom.DecimalDay()
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("DecimalDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecimalYear(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want float64
		tol  float64
	}{
		{
			// January accumulates no month days.
			name: "January reduces to year + day/365",
			date: Date{2023, Jan, 10, Gregorian},
			want: 2023 + 10.0/365.0,
			tol:  1e-12,
		},
		{
			name: "mid-year common year",
			date: Date{2023, July, 1, Gregorian},
			want: 2023 + (181.0 + 1.0) / 365.0,
			tol:  1e-12,
		},
		{
			// Leap day counted in both day sum and year length.
			name: "leap year after February",
			date: Date{2024, Mar, 1, Gregorian},
			want: 2024 + (60.0 + 1.0) / 366.0,
			tol:  1e-12,
		},
		{
			// Before March the leap day contributes nothing.
			name: "leap year February",
			date: Date{2024, Feb, 15, Gregorian},
			want: 2024 + (31.0 + 15.0) / 365.0,
			tol:  1e-12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecimalYear(tt.date)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("DecimalYear() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonthOrd(t *testing.T) {
	if Jan.Ord() != 1 || Dec.Ord() != 12 {
		t.Errorf("month ordinals: Jan=%d Dec=%d, want 1 and 12", Jan.Ord(), Dec.Ord())
	}
}
