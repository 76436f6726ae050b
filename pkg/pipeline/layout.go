package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultSeparator divides the leading date token from the rest of a line.
const DefaultSeparator = ": "

// referenceDate is formatted and re-parsed to verify parse layouts.
var referenceDate = time.Date(2006, time.January, 2, 0, 0, 0, 0, time.UTC)

// checkLayout rejects layouts that cannot render a date at all.
func checkLayout(layout string) error {
	if layout == "" {
		return errors.New("layout is empty")
	}
	if strings.Contains(layout, "%") {
		return fmt.Errorf("layout %q uses strftime verbs; Go layouts spell out a reference date such as %q", layout, "2006-01-02")
	}
	return nil
}

// checkParseLayout additionally requires the layout to express a full
// calendar date: formatting the reference date and parsing the result back
// must preserve year, month, and day. A layout failing this check would
// silently drop every input line, so it is rejected at construction.
func checkParseLayout(layout string) error {
	if err := checkLayout(layout); err != nil {
		return err
	}

	parsed, err := time.Parse(layout, referenceDate.Format(layout))
	if err != nil {
		return fmt.Errorf("layout %q cannot parse a date it formatted: %w", layout, err)
	}

	py, pm, pd := parsed.Date()
	ry, rm, rd := referenceDate.Date()
	if py != ry || pm != rm || pd != rd {
		return fmt.Errorf("layout %q does not express a full calendar date (year, month, and day are required)", layout)
	}

	return nil
}
