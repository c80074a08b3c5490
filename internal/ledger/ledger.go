package ledger

// History is the completion ledger: date key ("2006-01-02") to habit id to
// done. Absence at any level means "not done"; per-date maps are created
// lazily on first toggle and never required to pre-exist.
type History map[string]map[string]bool

// Done reports whether habitID is recorded done on dateKey.
func (h History) Done(dateKey, habitID string) bool {
	return h[dateKey][habitID]
}

// Toggle flips the done flag for habitID on dateKey, treating an absent entry
// as false. It returns the new value.
func (h History) Toggle(dateKey, habitID string) bool {
	day := h[dateKey]
	if day == nil {
		day = make(map[string]bool)
		h[dateKey] = day
	}
	day[habitID] = !day[habitID]
	return day[habitID]
}

// TotalCompletions counts every true entry across all history, including
// entries orphaned by habit deletion.
func (h History) TotalCompletions() int {
	total := 0
	for _, day := range h {
		for _, done := range day {
			if done {
				total++
			}
		}
	}
	return total
}

// CompletionsFor counts the true entries for one habit across all history.
func (h History) CompletionsFor(habitID string) int {
	total := 0
	for _, day := range h {
		if day[habitID] {
			total++
		}
	}
	return total
}

// AnyDone reports whether any habit is recorded done on dateKey.
func (h History) AnyDone(dateKey string) bool {
	for _, done := range h[dateKey] {
		if done {
			return true
		}
	}
	return false
}

// DistinctDates counts the date entries present in the ledger, regardless of
// whether they still hold any true value.
func (h History) DistinctDates() int {
	return len(h)
}

// Clone deep-copies the ledger so read-only consumers can hold a snapshot.
func (h History) Clone() History {
	out := make(History, len(h))
	for dateKey, day := range h {
		copied := make(map[string]bool, len(day))
		for id, done := range day {
			copied[id] = done
		}
		out[dateKey] = copied
	}
	return out
}
