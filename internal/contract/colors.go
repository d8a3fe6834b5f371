package contract

// ColorScheme holds the ANSI escape codes used for each rendering role.
// It is constructed once at program start from the optional config file and
// passed explicitly to renderers rather than looked up globally.
type ColorScheme struct {
	Title  string
	Date   string
	Number string
	Bar    string
	Alert  string
	Reset  string
}

// ColorSchemeRawInput holds the raw color overrides from the config file.
type ColorSchemeRawInput struct {
	Title  string `mapstructure:"title"`
	Date   string `mapstructure:"date"`
	Number string `mapstructure:"number"`
	Bar    string `mapstructure:"bar"`
	Alert  string `mapstructure:"alert"`
	Reset  string `mapstructure:"reset"`
}

// DefaultColorScheme returns the built-in ANSI codes used when the config
// file is absent or incomplete.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Title:  "\033[1;36m",
		Date:   "\033[0;32m",
		Number: "\033[0;33m",
		Bar:    "\033[0;34m",
		Alert:  "\033[0;31m",
		Reset:  "\033[0m",
	}
}

// DisabledColorScheme returns a scheme with no escape codes, used when
// color output is turned off.
func DisabledColorScheme() ColorScheme {
	return ColorScheme{}
}

// ResolveColorScheme merges user overrides onto the default scheme.
// Empty fields fall back to the built-in codes. When enabled is false the
// overrides are ignored and an empty scheme is returned.
func ResolveColorScheme(raw ColorSchemeRawInput, enabled bool) ColorScheme {
	if !enabled {
		return DisabledColorScheme()
	}
	scheme := DefaultColorScheme()
	if raw.Title != "" {
		scheme.Title = raw.Title
	}
	if raw.Date != "" {
		scheme.Date = raw.Date
	}
	if raw.Number != "" {
		scheme.Number = raw.Number
	}
	if raw.Bar != "" {
		scheme.Bar = raw.Bar
	}
	if raw.Alert != "" {
		scheme.Alert = raw.Alert
	}
	if raw.Reset != "" {
		scheme.Reset = raw.Reset
	}
	return scheme
}
