package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attr    slog.Attr
	}{
		{"Source", KeySource, Source("CONTRIBUTORS.md")},
		{"Target", KeyTarget, Target("contributors_gen.go")},
		{"Staging", KeyStaging, Staging("contributors_gen.go.new")},
		{"Section", KeySection, Section("Contributors")},
		{"List", KeyList, List("Authors")},
		{"Mode", KeyMode, Mode("check")},
		{"Hash", KeyHash, Hash("sha256:abc")},
		{"Rule", KeyRule, Rule("document-structure")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
	}
}

func TestIntHelpers(t *testing.T) {
	if EntryCount(3).Key != KeyEntryCount || EntryCount(3).Value.Int64() != 3 {
		t.Fatalf("EntryCount attr mismatch")
	}
	if Line(7).Key != KeyLine || Line(7).Value.Int64() != 7 {
		t.Fatalf("Line attr mismatch")
	}
}

func TestError_NilAndNonNil(t *testing.T) {
	if Error(nil).Value.String() != "" {
		t.Fatalf("nil error should produce empty value")
	}
	if Error(errors.New("boom")).Value.String() != "boom" {
		t.Fatalf("error message should be preserved")
	}
	if Error(nil).Key != KeyError {
		t.Fatalf("error attr key drifted")
	}
}
