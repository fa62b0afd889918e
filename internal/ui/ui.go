// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/angle"
	"github.com/litescript/ls-almanac/internal/astrotime"
	"github.com/litescript/ls-almanac/internal/version"
)

// TickMsg triggers periodic clock updates.
type TickMsg time.Time

// Styles for the dashboard panels.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1)

	focusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("205")).
				Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	liveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	frozenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))
)

// Model is the root Bubble Tea model: a live almanac clock for one
// observing site.
type Model struct {
	site almanac.Site

	// at is the instant being displayed, in UT.
	at   time.Time
	live bool // track the wall clock on each tick

	report almanac.Report

	focus  int // highlighted panel, cycled with tab
	width  int
	height int
	ready  bool
}

const panelCount = 3

// New creates the root UI model for a site. When live is true the
// display follows the wall clock until the user steps the time.
func New(site almanac.Site, at time.Time, live bool) Model {
	m := Model{site: site, at: at.UTC(), live: live}
	m.report = almanac.Compute(dateFromTime(m.at), m.site)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "left", "h":
			m = m.step(-24 * time.Hour)
		case "right", "l":
			m = m.step(24 * time.Hour)
		case "down", "j":
			m = m.step(-time.Hour)
		case "up", "k":
			m = m.step(time.Hour)
		case "J":
			m = m.step(-time.Minute)
		case "K":
			m = m.step(time.Minute)

		case "tab":
			m.focus = (m.focus + 1) % panelCount
		case "shift+tab":
			m.focus = (m.focus + panelCount - 1) % panelCount

		case "n":
			m.live = true
			m.at = time.Now().UTC()
			m.report = almanac.Compute(dateFromTime(m.at), m.site)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		if m.live {
			m.at = time.Now().UTC()
			m.report = almanac.Compute(dateFromTime(m.at), m.site)
		}
		return m, tickCmd()
	}

	return m, nil
}

// step freezes the clock and moves the displayed instant.
func (m Model) step(d time.Duration) Model {
	m.live = false
	m.at = m.at.Add(d)
	m.report = almanac.Compute(dateFromTime(m.at), m.site)
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		m.panelBorder(0).Render(m.renderTimePanel()),
		m.panelBorder(1).Render(m.renderSunPanel()),
		m.panelBorder(2).Render(m.renderSitePanel()),
	)
	footer := m.renderFooter()

	return header + "\n" + panels + "\n" + footer
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("  ls-almanac")
	tag := dimStyle.Render(fmt.Sprintf(" v%s", version.Version))

	var mode string
	if m.live {
		mode = liveStyle.Render("● LIVE")
	} else {
		mode = frozenStyle.Render("◼ FROZEN")
	}

	clock := valueStyle.Render(m.at.Format("2006-01-02 15:04:05 UT"))

	return "\n" + title + tag + "   " + clock + "   " + mode + "\n"
}

func (m Model) renderTimePanel() string {
	r := m.report
	var b strings.Builder

	b.WriteString(titleStyle.Render("Time scales"))
	b.WriteString("\n")

	writeRow(&b, "Julian day", fmt.Sprintf("%.5f", r.JulianDay))
	writeRow(&b, "Ephemeris day", fmt.Sprintf("%.5f", r.EphemerisDay))
	writeRow(&b, "ΔT", fmt.Sprintf("%.1f s", r.DeltaT))
	writeRow(&b, "Weekday", r.Weekday.String())
	writeRow(&b, "Mean sidereal", fmtHourAngle(r.MeanSidereal))
	writeRow(&b, "App. sidereal", fmtHourAngle(r.ApparentSidereal))
	writeRow(&b, "Local sidereal", fmtHourAngle(r.LocalSidereal))

	return b.String()
}

func (m Model) renderSunPanel() string {
	r := m.report
	var b strings.Builder

	b.WriteString(titleStyle.Render("Sun"))
	b.WriteString("\n")

	writeRow(&b, "R. ascension", fmtDeg(r.Sun.Eq.Asc))
	writeRow(&b, "Declination", fmtDeg(r.Sun.Eq.Dec))
	writeRow(&b, "Ecl. longitude", fmtDeg(r.Sun.EclLong))
	writeRow(&b, "Azimuth", fmt.Sprintf("%7.2f°", r.SunAzDeg()))
	writeRow(&b, "Altitude", fmt.Sprintf("%7.2f°", r.SunAltDeg()))
	writeRow(&b, "Eq. of time", fmt.Sprintf("%+6.2f min", r.EqOfTimeMinutes()))
	writeRow(&b, "Gal. longitude", fmtDeg(r.SunGal.Long))

	return b.String()
}

func (m Model) renderSitePanel() string {
	r := m.report
	var b strings.Builder

	name := m.site.Name
	if name == "" {
		name = "Site"
	}
	b.WriteString(titleStyle.Render(name))
	b.WriteString("\n")

	writeRow(&b, "Latitude", fmt.Sprintf("%8.4f°", m.site.LatDeg))
	writeRow(&b, "Longitude", fmt.Sprintf("%8.4f°", m.site.LonDeg))
	writeRow(&b, "Height", fmt.Sprintf("%6.0f m", m.site.HeightM))
	writeRow(&b, "To Greenwich", fmt.Sprintf("%7.0f km", r.GeodesicToGreenwich))
	writeRow(&b, "Parallel radius", fmt.Sprintf("%7.1f km", r.ParallelRadius))
	writeRow(&b, "Rotation speed", fmt.Sprintf("%6.4f km/s", r.LinearVelocity))

	return b.String()
}

func (m Model) panelBorder(i int) lipgloss.Style {
	if i == m.focus {
		return focusedPanelStyle
	}
	return panelStyle
}

func (m Model) renderFooter() string {
	help := "←/→: day | ↑/↓: hour | K/J: minute | n: now | tab: panel | q: quit"
	return "  " + dimStyle.Render(help)
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-16s", label)))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}

// fmtHourAngle formats an angle in radians as sidereal hh:mm:ss.
func fmtHourAngle(rad float64) string {
	h := angle.LimitToTwoPi(rad) / angle.TwoPi * 24
	hh := int(h)
	mm := int((h - float64(hh)) * 60)
	ss := int(((h-float64(hh))*60 - float64(mm)) * 60)
	return fmt.Sprintf("%02d:%02d:%02d", hh, mm, ss)
}

// fmtDeg formats an angle in radians as decimal degrees.
func fmtDeg(rad float64) string {
	return fmt.Sprintf("%9.4f°", angle.RadToDeg(rad))
}

// dateFromTime converts a UT instant to a calendar date for the
// computation engine.
func dateFromTime(t time.Time) astrotime.Date {
	t = t.UTC()
	frac := (float64(t.Hour()) +
		float64(t.Minute())/60 +
		(float64(t.Second())+float64(t.Nanosecond())/1e9)/3600) / 24

	return astrotime.Date{
		Year:       t.Year(),
		Month:      astrotime.Month(int(t.Month())),
		DecimalDay: float64(t.Day()) + frac,
		CalType:    astrotime.Gregorian,
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
