package settings

// BypassRequirements reports whether hardware requirement checks are
// bypassed. Default is false.
func (s *Store) BypassRequirements() bool {
	b := s.Get().Requirements.BypassRequirements
	return b != nil && *b
}

// SetBypassRequirements persists the bypass flag.
func (s *Store) SetBypassRequirements(bypass bool) error {
	return s.Update(func(st *Settings) error {
		st.Requirements.BypassRequirements = &bypass
		return nil
	})
}

// AVXRequirementMet returns the cached AVX probe result if present.
// When bypass is enabled the check always passes. When no result is
// cached (or force is true) probe is invoked and its result persisted.
func (s *Store) AVXRequirementMet(force bool, probe func() bool) (bool, error) {
	if s.BypassRequirements() {
		s.logger.Warn("bypassing the AVX requirement check")
		return true, nil
	}
	if !force {
		if cached := s.Get().Requirements.AVX; cached != nil {
			return *cached, nil
		}
	}
	met := probe()
	err := s.Update(func(st *Settings) error {
		st.Requirements.AVX = &met
		return nil
	})
	return met, err
}
