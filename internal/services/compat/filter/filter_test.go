package filter

import (
	"testing"

	"github.com/sdkgate/sdkgate/internal/services/compat/registry"
)

var sampleChanges = []registry.Change{
	{ID: 12, Name: "LEGACY_BEHAVIOR", EnableAfterTargetSDK: registry.UngatedSDK, Disabled: true},
	{ID: 123, Name: "NEW_RENDERING", EnableAfterTargetSDK: 29},
	{ID: 1234, Name: "STRICT_VALIDATION", EnableAfterTargetSDK: 30},
	{ID: 2345, Name: "DEFAULT_ON", EnableAfterTargetSDK: registry.UngatedSDK},
}

func evaluate(t *testing.T, filterStr string) []registry.ChangeID {
	t.Helper()

	pred, err := ParseListFilter(filterStr)
	if err != nil {
		t.Fatalf("parse filter %q: %v", filterStr, err)
	}

	var ids []registry.ChangeID
	for _, c := range sampleChanges {
		if pred == nil || pred(c) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

func assertIDs(t *testing.T, got, want []registry.ChangeID) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("matched ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("matched ids = %v, want %v", got, want)
		}
	}
}

func TestParseListFilterEmptyMatchesAll(t *testing.T) {
	pred, err := ParseListFilter("   ")
	if err != nil {
		t.Fatalf("parse empty filter: %v", err)
	}
	if pred != nil {
		t.Fatal("expected nil predicate for empty filter")
	}
}

func TestParseListFilterByID(t *testing.T) {
	assertIDs(t, evaluate(t, "id = 1234"), []registry.ChangeID{1234})
	assertIDs(t, evaluate(t, "id != 1234"), []registry.ChangeID{12, 123, 2345})
	assertIDs(t, evaluate(t, "id > 123"), []registry.ChangeID{1234, 2345})
	assertIDs(t, evaluate(t, "id <= 123"), []registry.ChangeID{12, 123})
}

func TestParseListFilterByName(t *testing.T) {
	assertIDs(t, evaluate(t, `name = "NEW_RENDERING"`), []registry.ChangeID{123})
	assertIDs(t, evaluate(t, `name != "NEW_RENDERING"`), []registry.ChangeID{12, 1234, 2345})
}

func TestParseListFilterByDisabled(t *testing.T) {
	assertIDs(t, evaluate(t, "disabled"), []registry.ChangeID{12})
	assertIDs(t, evaluate(t, "disabled = true"), []registry.ChangeID{12})
	assertIDs(t, evaluate(t, "disabled = false"), []registry.ChangeID{123, 1234, 2345})
	assertIDs(t, evaluate(t, "NOT disabled"), []registry.ChangeID{123, 1234, 2345})
}

func TestParseListFilterByGate(t *testing.T) {
	assertIDs(t, evaluate(t, "enable_after_target_sdk >= 0"), []registry.ChangeID{123, 1234})
	assertIDs(t, evaluate(t, "enable_after_target_sdk = -1"), []registry.ChangeID{12, 2345})
	assertIDs(t, evaluate(t, "enable_after_target_sdk > 29"), []registry.ChangeID{1234})
}

func TestParseListFilterCompoundExpressions(t *testing.T) {
	assertIDs(t, evaluate(t, "enable_after_target_sdk >= 0 AND id > 123"), []registry.ChangeID{1234})
	assertIDs(t, evaluate(t, `disabled OR name = "DEFAULT_ON"`), []registry.ChangeID{12, 2345})
}

func TestParseListFilterRejectsUnknownField(t *testing.T) {
	if _, err := ParseListFilter(`package = "com.example"`); err == nil {
		t.Fatal("expected error for undeclared field")
	}
}

func TestParseListFilterRejectsMalformedExpression(t *testing.T) {
	if _, err := ParseListFilter("id = "); err == nil {
		t.Fatal("expected error for malformed filter")
	}
}

func TestParseListFilterRejectsTypeMismatch(t *testing.T) {
	if _, err := ParseListFilter(`id = "not-a-number"`); err == nil {
		t.Fatal("expected error for type mismatch")
	}
}
