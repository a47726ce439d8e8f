package config

import (
	"fmt"
	"runtime"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// VersionString renders the --version output.
func VersionString() string {
	return fmt.Sprintf(MsgVersionOutput, AppName, Version, runtime.GOOS, runtime.GOARCH)
}

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "chicago-today"
	AppShort    = "Print today's date in America/Chicago"
	AppLong     = "Print the current calendar date as observed in America/Chicago, formatted as YYYY-MM-DD."
	DiagnosticF = "%s: %s\n" // AppName, message
)

// -----------------------------------------------------------------------------
// Time Zone & Date Formats
// -----------------------------------------------------------------------------

const (
	// ZoneName is the IANA identifier whose civil date is reported.
	ZoneName = "America/Chicago"

	// ZoneLocal is Go's pseudo-zone for the host setting. It is rejected so that a
	// broken lookup never degrades into the machine's own zone.
	ZoneLocal = "Local"

	// DateFormatISO is the ISO 8601 calendar-date layout.
	DateFormatISO = "2006-01-02"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stderr"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Locale Detection
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"
	LocaleDir       = "locales"
	LocalePrefix    = "active."
	LocaleSuffix    = ".json"
	LocaleFormat    = "json"
)

// LocaleEnvVars lists the POSIX locale variables in precedence order.
var LocaleEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// POSIXLocales are locale names that carry no language.
var POSIXLocales = []string{"C", "POSIX"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyErrZone    = "err_zone_resolution" // Requires Zone, Cause
	TKeyErrCommand = "err_command"         // Requires Cause

	TDataZone  = "Zone"
	TDataCause = "Cause"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrZoneResolution = "time zone resolution failed"
	ErrZoneUnnamed    = "time zone name is empty or refers to the host zone"
	ErrClockMissing   = "internal error: clock is not initialized"
	ErrZonesMissing   = "internal error: zone loader is not initialized"
	ErrAppFailed      = "application failed"
	ErrWriteOutput    = "failed to write output"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgZoneResolved  = "Time zone resolved"
	MsgDateComputed  = "Civil date computed"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgLocaleBadEnv  = "Ignoring unparseable locale variable"
	MsgTransMissing  = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyZone      = "zone"
	LogKeyInstant   = "instant"
	LogKeyLocal     = "local"
	LogKeyOffset    = "offset_seconds"
	LogKeyAbbrev    = "abbreviation"
	LogKeyDate      = "date"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyVar       = "variable"
	LogKeyValue     = "value"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompEngine = "engine"
	CompCLI    = "cli"
	CompLocale = "locale"
)
