// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Binary star orbit geometry, lunar parallax, refraction term
// 0.3.0 - Almanac report, TUI dashboard, watch mode
// 0.2.0 - Horizontal and galactic transforms, geodesy, equation of time
// 0.1.0 - Initial release: calendar and Julian day engine, ΔT, sidereal time
