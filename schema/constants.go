package schema

// Custom string types for type safety.
type (
	// GroupPeriod represents the calendar grouping for commit counts.
	GroupPeriod string

	// OutputMode represents the format of the output.
	OutputMode string

	// CommitType represents a message-prefix classification bucket.
	CommitType string
)

// All grouping periods supported.
const (
	DayPeriod   GroupPeriod = "day" // default
	MonthPeriod GroupPeriod = "month"
	YearPeriod  GroupPeriod = "year"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	SVGOut     OutputMode = "svg"
	ParquetOut OutputMode = "parquet"
)

// All commit type buckets, checked in priority order during classification.
const (
	TypeFixes         CommitType = "fixes"
	TypeFeatures      CommitType = "features"
	TypeDocumentation CommitType = "documentation"
	TypeRefactoring   CommitType = "refactoring"
	TypeTests         CommitType = "tests"
	TypeOther         CommitType = "other"
)

// Period key layouts, derived with the commit's zoned timestamp.
const (
	DayKeyLayout   = "2006-01-02"
	MonthKeyLayout = "2006-01"
	YearKeyLayout  = "2006"
)

// ValidGroupPeriods lists all valid grouping periods.
var ValidGroupPeriods = map[GroupPeriod]struct{}{
	DayPeriod:   {},
	MonthPeriod: {},
	YearPeriod:  {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	SVGOut:     {},
	ParquetOut: {},
}

// WeekdayNames is the fixed Monday-first weekday ordering used for
// histograms and peak reporting.
var WeekdayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// CommitTypeOrder is the display order for the classification histogram.
var CommitTypeOrder = []CommitType{
	TypeFixes,
	TypeFeatures,
	TypeDocumentation,
	TypeRefactoring,
	TypeTests,
	TypeOther,
}

// KeyLayout returns the time layout used to derive grouping keys for the period.
func (p GroupPeriod) KeyLayout() string {
	switch p {
	case MonthPeriod:
		return MonthKeyLayout
	case YearPeriod:
		return YearKeyLayout
	default:
		return DayKeyLayout
	}
}

// WeekdayIndex converts a time.Weekday (Sunday-first) into the
// Monday-first index used throughout gitbars.
func WeekdayIndex(d int) int {
	return (d + 6) % 7
}
