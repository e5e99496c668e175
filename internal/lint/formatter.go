package lint

import (
	"fmt"
	"io"
)

// Formatter writes linting results as human-readable text.
type Formatter struct {
	w     io.Writer
	quiet bool // suppress warnings and info
}

// NewFormatter creates a text formatter. With quiet set, only error-level
// issues are printed.
func NewFormatter(w io.Writer, quiet bool) *Formatter {
	return &Formatter{w: w, quiet: quiet}
}

// Format outputs the issues followed by a one-line summary.
func (f *Formatter) Format(result *Result) error {
	for _, issue := range result.Issues {
		if f.quiet && issue.Severity != SeverityError {
			continue
		}
		location := issue.FilePath
		if issue.Line > 0 {
			location = fmt.Sprintf("%s:%d", issue.FilePath, issue.Line)
		}
		if _, err := fmt.Fprintf(f.w, "%s %s [%s] %s\n",
			issue.Severity, location, issue.Rule, issue.Message); err != nil {
			return err
		}
	}

	if f.quiet {
		_, err := fmt.Fprintf(f.w, "%d files scanned: %d errors\n",
			result.FilesTotal, result.ErrorCount())
		return err
	}
	_, err := fmt.Fprintf(f.w, "%d files scanned: %d errors, %d warnings\n",
		result.FilesTotal, result.ErrorCount(), result.WarningCount())
	return err
}
