package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeySource     = "source"
	KeyTarget     = "target"
	KeyStaging    = "staging"
	KeySection    = "section"
	KeyList       = "list"
	KeyEntryCount = "entry_count"
	KeyMode       = "mode"
	KeyHash       = "hash"
	KeyRule       = "rule"
	KeyLine       = "line"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Source(p string) slog.Attr   { return slog.String(KeySource, p) }
func Target(p string) slog.Attr   { return slog.String(KeyTarget, p) }
func Staging(p string) slog.Attr  { return slog.String(KeyStaging, p) }
func Section(s string) slog.Attr  { return slog.String(KeySection, s) }
func List(name string) slog.Attr  { return slog.String(KeyList, name) }
func EntryCount(n int) slog.Attr  { return slog.Int(KeyEntryCount, n) }
func Mode(m string) slog.Attr     { return slog.String(KeyMode, m) }
func Hash(h string) slog.Attr     { return slog.String(KeyHash, h) }
func Rule(r string) slog.Attr     { return slog.String(KeyRule, r) }
func Line(n int) slog.Attr        { return slog.Int(KeyLine, n) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
