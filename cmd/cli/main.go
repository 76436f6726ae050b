// Dateline - Date-Aware Line Processing Tool
//
// Dateline is a batch text processing tool built around dated lines.
// It parses a leading date from each line and keeps only the weekdays
// you care about, reformatting the date on the way out.
package main

import (
	"os"

	"github.com/datelinehq/dateline/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
