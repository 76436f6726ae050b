package detector

import "regexp"

// DateLayout represents a known leading-date shape for detection.
type DateLayout struct {
	Name       string         // Human-readable name
	Pattern    *regexp.Regexp // Compiled token regex (set during init)
	PatternStr string         // Pattern string, anchored to the whole token
	Layout     string         // Go time layout for parsing the token
	Example    string         // Example date token
	Ambiguous  bool           // True if day/month order is ambiguous (MM/DD vs DD/MM)
}

// DefaultLayouts returns the built-in date layouts to detect. Order matters:
// when two layouts match a sample equally well, the earlier one wins.
func DefaultLayouts() []*DateLayout {
	layouts := []*DateLayout{
		{
			Name:       "ISO date",
			PatternStr: `^\d{4}-\d{2}-\d{2}$`,
			Layout:     "2006-01-02",
			Example:    "2024-10-14",
		},
		{
			Name:       "ISO datetime",
			PatternStr: `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`,
			Layout:     "2006-01-02T15:04:05",
			Example:    "2024-10-14T10:30:00",
		},
		{
			Name:       "Datetime (space-separated)",
			PatternStr: `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`,
			Layout:     "2006-01-02 15:04:05",
			Example:    "2024-10-14 10:30:00",
		},
		{
			Name:       "US date (MM/DD/YYYY)",
			PatternStr: `^\d{2}/\d{2}/\d{4}$`,
			Layout:     "01/02/2006",
			Example:    "10/14/2024",
			Ambiguous:  true,
		},
		{
			Name:       "European date (DD/MM/YYYY)",
			PatternStr: `^\d{2}/\d{2}/\d{4}$`,
			Layout:     "02/01/2006",
			Example:    "14/10/2024",
			Ambiguous:  true,
		},
		{
			Name:       "European date (DD.MM.YYYY)",
			PatternStr: `^\d{2}\.\d{2}\.\d{4}$`,
			Layout:     "02.01.2006",
			Example:    "14.10.2024",
		},
		{
			Name:       "Compact date",
			PatternStr: `^\d{8}$`,
			Layout:     "20060102",
			Example:    "20241014",
		},
		{
			Name:       "Long month date",
			PatternStr: `^[A-Z][a-z]+ \d{1,2}, \d{4}$`,
			Layout:     "January 2, 2006",
			Example:    "October 14, 2024",
		},
		{
			Name:       "Short month date",
			PatternStr: `^[A-Z][a-z]{2} \d{1,2} \d{4}$`,
			Layout:     "Jan 2 2006",
			Example:    "Oct 14 2024",
		},
	}

	// Compile all patterns
	for _, l := range layouts {
		l.Pattern = regexp.MustCompile(l.PatternStr)
	}

	return layouts
}
