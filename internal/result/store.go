package result

// Store holds the current analysis and the view state derived from
// it: the selected role and the active plan horizon. Mutation goes
// through SetResult, SelectRole and SelectHorizon only; presentational
// code reads, never writes. All operations are synchronous and meant
// for a single goroutine (the UI loop).
type Store struct {
	result        *AnalysisResult
	selectedRole  string
	activeHorizon string
	// processing is true while an upload round-trip is in flight.
	// Submissions serialize on it: a second submit is refused until the
	// current one completes.
	processing bool
	// scrollToSummary signals the presenter to bring the role-summary
	// section into view after an explicit role selection.
	scrollToSummary bool
}

// NewStore returns a store in the pre-analysis state.
func NewStore() *Store {
	return &Store{
		result:        Empty(),
		activeHorizon: Horizon30,
	}
}

// Result returns the current analysis. Never nil.
func (s *Store) Result() *AnalysisResult {
	return s.result
}

// HasAnalysis reports whether a payload has arrived yet.
func (s *Store) HasAnalysis() bool {
	return s.result != nil && (len(s.result.Skills) > 0 ||
		len(s.result.RoleRecommendations) > 0 ||
		s.result.SummaryText != "" ||
		s.result.ATS.Total > 0)
}

// Processing reports whether an upload round-trip is in flight.
func (s *Store) Processing() bool {
	return s.processing
}

// BeginProcessing marks an upload round-trip as in flight. It returns
// false when one is already running, refusing the new submission.
func (s *Store) BeginProcessing() bool {
	if s.processing {
		return false
	}
	s.processing = true
	return true
}

// EndProcessing clears the in-flight flag. Called on success and
// failure alike; SetResult also clears it, so the success path cannot
// leave the flag stuck.
func (s *Store) EndProcessing() {
	s.processing = false
}

// SetRaw decodes a fresh analysis payload and installs it. Only
// unparseable JSON fails; shape problems default per field.
func (s *Store) SetRaw(data []byte) error {
	res, err := Decode(data)
	if err != nil {
		return err
	}
	s.SetResult(res)
	return nil
}

// SetResult replaces the current analysis wholesale and recomputes
// the selected role to the first recommendation. Prior state never
// merges in; a failed upload leaves the store untouched because this
// is only called on success.
func (s *Store) SetResult(res *AnalysisResult) {
	if res == nil {
		res = Empty()
	}
	s.result = res
	s.processing = false
	s.scrollToSummary = false
	if len(res.RoleRecommendations) > 0 {
		s.selectedRole = res.RoleRecommendations[0].Title
	} else {
		s.selectedRole = ""
	}
}

// SelectedRole is the role whose summary section is rendered.
func (s *Store) SelectedRole() string {
	return s.selectedRole
}

// SelectRole marks a role as selected and signals the presenter to
// scroll the role-summary section into view.
func (s *Store) SelectRole(title string) {
	if title == "" {
		return
	}
	s.selectedRole = title
	s.scrollToSummary = true
}

// ActiveHorizon is the plan horizon currently shown.
func (s *Store) ActiveHorizon() string {
	return s.activeHorizon
}

// SelectHorizon switches the visible plan horizon. Keys outside the
// three known horizons are ignored; role selection is unaffected.
func (s *Store) SelectHorizon(key string) bool {
	for _, h := range Horizons {
		if key == h {
			s.activeHorizon = h
			return true
		}
	}
	return false
}

// ConsumeScrollSignal returns whether the presenter should scroll to
// the role summary, clearing the signal.
func (s *Store) ConsumeScrollSignal() bool {
	v := s.scrollToSummary
	s.scrollToSummary = false
	return v
}
