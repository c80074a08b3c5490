package ledger

import "testing"

func TestToggleLazyCreation(t *testing.T) {
	h := History{}
	if h.Done("2026-02-09", "habit-1") {
		t.Fatal("absent entry must read as not done")
	}
	if got := h.Toggle("2026-02-09", "habit-1"); !got {
		t.Fatal("first toggle must set true")
	}
	if !h.Done("2026-02-09", "habit-1") {
		t.Fatal("entry not recorded")
	}
}

func TestToggleDoubleFlipRestores(t *testing.T) {
	h := History{"2026-02-09": {"habit-1": true, "habit-2": false}}
	for _, id := range []string{"habit-1", "habit-2", "habit-3"} {
		before := h.Done("2026-02-09", id)
		h.Toggle("2026-02-09", id)
		h.Toggle("2026-02-09", id)
		if h.Done("2026-02-09", id) != before {
			t.Fatalf("double flip changed value for %s", id)
		}
	}
}

func TestTotalsSkipFalseEntries(t *testing.T) {
	h := History{
		"2026-02-09": {"habit-1": true, "habit-2": false},
		"2026-02-10": {"habit-1": true},
		"2026-02-11": {"habit-2": false},
	}
	if got := h.TotalCompletions(); got != 2 {
		t.Fatalf("total completions = %d, want 2", got)
	}
	if got := h.CompletionsFor("habit-1"); got != 2 {
		t.Fatalf("habit-1 completions = %d, want 2", got)
	}
	if got := h.CompletionsFor("habit-2"); got != 0 {
		t.Fatalf("habit-2 completions = %d, want 0", got)
	}
	if got := h.DistinctDates(); got != 3 {
		t.Fatalf("distinct dates = %d, want 3", got)
	}
}

func TestAnyDone(t *testing.T) {
	h := History{
		"2026-02-09": {"habit-1": false},
		"2026-02-10": {"habit-1": false, "habit-2": true},
	}
	if h.AnyDone("2026-02-09") {
		t.Fatal("all-false day must not count")
	}
	if !h.AnyDone("2026-02-10") {
		t.Fatal("day with one true entry must count")
	}
	if h.AnyDone("2026-02-11") {
		t.Fatal("missing day must not count")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	h := History{"2026-02-09": {"habit-1": true}}
	clone := h.Clone()
	clone.Toggle("2026-02-09", "habit-1")
	clone.Toggle("2026-02-10", "habit-2")
	if !h.Done("2026-02-09", "habit-1") {
		t.Fatal("mutating clone leaked into original")
	}
	if len(h) != 1 {
		t.Fatal("clone shares date map with original")
	}
}
