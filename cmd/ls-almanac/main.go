// Command ls-almanac is a terminal almanac: Julian day, sidereal time,
// solar position and site geodesy for a date and observing site.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/logging"
	"github.com/litescript/ls-almanac/internal/ui"
)

// CLI flags for headless mode
var (
	reportMode    bool
	watchInterval time.Duration
	dateStr       string
	timeStr       string
)

// greenwich is the fallback site when no coordinates are given.
var greenwich = almanac.Site{Name: "Greenwich", LatDeg: 51.4769, LonDeg: 0}

func main() {
	lat := flag.Float64("lat", greenwich.LatDeg, "Site latitude in degrees, north positive")
	lon := flag.Float64("lon", greenwich.LonDeg, "Site longitude in degrees, east positive")
	height := flag.Float64("height", 0, "Site height above sea level in meters")
	siteName := flag.String("site", "", "Site display name")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	quiet := flag.Bool("quiet", false, "Suppress all log output")
	flag.BoolVar(&reportMode, "report", false, "Print a text report instead of the TUI")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat the report at an interval (e.g. 30s)")
	flag.StringVar(&dateStr, "date", "", "Date (YYYY-MM-DD, default today)")
	flag.StringVar(&timeStr, "time", "", "Time of day (HH:MM:SS, default now)")
	tz := flag.Float64("tz", 0, "Time zone of --date/--time in hours east of Greenwich")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))
	if *quiet {
		logger = logging.Discard()
	}

	site := almanac.Site{
		Name:    *siteName,
		LatDeg:  *lat,
		LonDeg:  *lon,
		HeightM: *height,
	}
	if site.Name == "" && site.LatDeg == greenwich.LatDeg && site.LonDeg == greenwich.LonDeg {
		site.Name = greenwich.Name
	}
	if site.LatDeg < -90 || site.LatDeg > 90 {
		fmt.Fprintf(os.Stderr, "Error: latitude %v out of range\n", site.LatDeg)
		os.Exit(1)
	}

	at, live, err := parseInstant(dateStr, timeStr, *tz)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Headless when asked for, or when stdout is not a terminal.
	headless := reportMode || watchInterval > 0 || !term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		runHeadless(ctx, site, at, live, logger)
		return
	}

	model := ui.New(site, at, live)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// parseInstant resolves the --date/--time/--tz flags to an instant in
// UT. With neither date nor time the clock is live; any explicit value
// freezes it.
func parseInstant(dateStr, timeStr string, tzHours float64) (at time.Time, live bool, err error) {
	now := time.Now().UTC()
	if dateStr == "" && timeStr == "" {
		return now, true, nil
	}

	day := now
	if dateStr != "" {
		day, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("parse date %q: %w", dateStr, err)
		}
	}

	clock := time.Duration(0)
	if timeStr != "" {
		t, err := time.Parse("15:04:05", timeStr)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("parse time %q: %w", timeStr, err)
		}
		clock = time.Duration(t.Hour())*time.Hour +
			time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second
	} else {
		clock = now.Sub(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
	}

	at = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC).
		Add(clock).
		Add(-time.Duration(tzHours * float64(time.Hour)))
	return at, false, nil
}

// runHeadless prints the report once, or repeatedly in watch mode.
func runHeadless(ctx context.Context, site almanac.Site, at time.Time, live bool, logger *logging.Logger) {
	outputOnce := func(instant time.Time) {
		r := almanac.Compute(dateFromTime(instant), site)
		logger.Debug("computed report for jd %.5f", r.JulianDay)
		almanac.WriteReport(os.Stdout, r)
	}

	if watchInterval == 0 {
		outputOnce(at)
		return
	}

	outputOnce(at)

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Println()
			if live {
				outputOnce(time.Now().UTC())
			} else {
				at = at.Add(watchInterval)
				outputOnce(at)
			}
		}
	}
}

// dateFromTime converts a UT instant to a calendar date.
func dateFromTime(t time.Time) astrotime.Date {
	t = t.UTC()
	frac := (float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600) / 24

	return astrotime.Date{
		Year:       t.Year(),
		Month:      astrotime.Month(int(t.Month())),
		DecimalDay: float64(t.Day()) + frac,
		CalType:    astrotime.Gregorian,
	}
}
