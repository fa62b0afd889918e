// Package astrotime implements calendar/Julian day conversions and
// astronomical time scales (ΔT, sidereal time).
package astrotime

import (
	"errors"
	"fmt"
	"math"
)

// CalType identifies the calendar a Date is expressed in. The calendar
// is part of the date value; it is never inferred.
type CalType int

const (
	// Gregorian calendar (reformed, in civil use since 1582-10-15).
	Gregorian CalType = iota
	// Julian calendar (proleptic before the reform).
	Julian
)

func (c CalType) String() string {
	switch c {
	case Gregorian:
		return "Gregorian"
	case Julian:
		return "Julian"
	default:
		return "Unknown"
	}
}

// Month is a calendar month, January = 1.
type Month int

const (
	Jan Month = 1 + iota
	Feb
	Mar
	Apr
	May
	June
	July
	Aug
	Sept
	Oct
	Nov
	Dec
)

// Ord returns the month ordinal, 1 for January through 12 for December.
func (m Month) Ord() int { return int(m) }

func (m Month) String() string {
	names := [...]string{"January", "February", "March", "April", "May",
		"June", "July", "August", "September", "October", "November", "December"}
	if m < Jan || m > Dec {
		return "Unknown"
	}
	return names[m-1]
}

// Date is a calendar date with a decimal day carrying the time of day.
type Date struct {
	Year  int
	Month Month
	// DecimalDay is the day of month plus the fraction of the day,
	// range 1.0 up to but excluding 32.0. Combine civil time fields
	// with DayOfMonth.DecimalDay.
	DecimalDay float64
	CalType    CalType
}

// DayOfMonth is a civil day-of-month with time of day and time zone.
type DayOfMonth struct {
	Day int
	Hr  int
	Min int
	Sec float64
	// TimeZone is the offset from UT in decimal hours,
	// e.g. -8.0 for the Pacific Time Zone.
	TimeZone float64
}

// DecimalDay collapses the day, time of day and time zone into a
// single decimal day referred to UT.
func (d DayOfMonth) DecimalDay() float64 {
	return float64(d.Day) +
		float64(d.Hr)/24.0 +
		float64(d.Min)/(60.0*24.0) +
		d.Sec/(60.0*60.0*24.0) -
		d.TimeZone/24.0
}

// Weekday is a day of the week, Sunday = 0.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

func (w Weekday) String() string {
	names := [...]string{"Sunday", "Monday", "Tuesday", "Wednesday",
		"Thursday", "Friday", "Saturday"}
	if w < Sunday || w > Saturday {
		return "Unknown"
	}
	return names[w]
}

// ErrNegativeJulianDay is returned by DateFromJulianDay for negative input.
var ErrNegativeJulianDay = errors.New("astrotime: negative Julian day")

// gregorianReformJD is the Julian day of 1582-10-15, the first day of
// the Gregorian calendar. Reconstruction switches calendars here.
const gregorianReformJD = 2299161

// JulianDay computes the Julian day for a date. January and February
// are treated as months 13 and 14 of the preceding year. The Gregorian
// correction term applies only to Gregorian dates; for Julian dates it
// is zero. The result is total over all inputs; callers are
// responsible for keeping DecimalDay in range.
func JulianDay(date Date) float64 {
	y := float64(date.Year)
	m := float64(date.Month.Ord())
	if date.Month == Jan || date.Month == Feb {
		y = float64(date.Year - 1)
		m += 12
	}

	a := math.Floor(y / 100)
	b := 0.0
	if date.CalType == Gregorian {
		b = 2 - a + math.Floor(a/4)
	}

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		date.DecimalDay + b - 1524.5
}

// DateFromJulianDay computes the year, month and decimal day for a
// Julian day. The calendar is selected automatically: days before
// 2299161 use Julian arithmetic, days at or after use Gregorian.
// Returns ErrNegativeJulianDay for jd < 0.
func DateFromJulianDay(jd float64) (year int, month Month, decimalDay float64, err error) {
	if jd < 0 {
		return 0, 0, 0, ErrNegativeJulianDay
	}

	jd += 0.5
	z := int64(jd)
	f := jd - float64(z)

	a := z
	if z >= gregorianReformJD {
		alpha := int64(math.Floor((float64(z) - 1867216.25) / 36524.25))
		a = z + 1 + alpha - int64(math.Floor(float64(alpha)/4))
	}

	b := a + 1524
	c := int64(math.Floor((float64(b) - 122.1) / 365.25))
	d := int64(math.Floor(365.25 * float64(c)))
	e := int64(math.Floor(float64(b-d) / 30.6001))

	decimalDay = float64(b-d) - math.Floor(30.6001*float64(e)) + f

	var m int64
	switch {
	case e < 14:
		m = e - 1
	case e == 14 || e == 15:
		m = e - 13
	default:
		// Unreachable for any non-negative jd; a value here means the
		// algorithm itself is broken.
		panic(fmt.Sprintf("astrotime: DateFromJulianDay: month term e=%d out of range", e))
	}

	var y int64
	switch {
	case m > 2:
		y = c - 4716
	case m == 1 || m == 2:
		y = c - 4715
	default:
		panic(fmt.Sprintf("astrotime: DateFromJulianDay: month %d out of range", m))
	}

	return int(y), Month(m), decimalDay, nil
}

// WeekdayFromDate computes the day of the week for a date. The date is
// truncated to 0h UT and treated as Gregorian before taking the Julian
// day, so the weekday is insensitive to the time of day.
func WeekdayFromDate(date Date) Weekday {
	date0h := Date{
		Year:       date.Year,
		Month:      date.Month,
		DecimalDay: math.Floor(date.DecimalDay),
		CalType:    Gregorian,
	}
	jd := JulianDay(date0h)

	return Weekday(int64(jd+1.5) % 7)
}

// IsLeapYear reports whether a year is a leap year in the given
// calendar. The Julian rule is divisibility by 4; the Gregorian rule
// exempts century years not divisible by 400.
func IsLeapYear(year int, calType CalType) bool {
	if calType == Julian {
		return year%4 == 0
	}
	if year%100 == 0 {
		return year%400 == 0
	}
	return year%4 == 0
}

// monthDays holds the day counts of January through November for a
// common year; December's length never contributes to a day-of-year sum.
var monthDays = [11]float64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30}

// DecimalYear converts a date to a year with decimals, e.g. 1945.62.
// For January the result is year + decimalDay/daysInYear with no
// month accumulation.
func DecimalYear(date Date) float64 {
	days := 0.0
	yearLen := 365.0

	for m := 0; m < date.Month.Ord()-1; m++ {
		days += monthDays[m]
	}
	if date.Month.Ord() > 2 && IsLeapYear(date.Year, date.CalType) {
		days++
		yearLen++
	}

	return float64(date.Year) + (days+date.DecimalDay)/yearLen
}
