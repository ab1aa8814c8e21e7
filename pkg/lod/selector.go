package lod

// Selector maps camera distance to a detail level using the ordered level
// table of a Config. It holds a reference to the live config so runtime
// budget changes by the controller are visible immediately.
type Selector struct {
	cfg *Config
}

// NewSelector creates a selector over the given config.
func NewSelector(cfg *Config) *Selector {
	return &Selector{cfg: cfg}
}

// DetermineLevel scans the ordered level list and returns the first level
// whose [MinDistance, MaxDistance) range contains distance. If no level
// matches (a configuration gap, or a distance beyond all ranges) the last
// configured level is returned as a safe lowest-detail fallback.
//
// O(levels); independent of artifact count.
func (s *Selector) DetermineLevel(distance float32) *Level {
	levels := s.cfg.Levels
	for i := range levels {
		if levels[i].Contains(distance) {
			return &levels[i]
		}
	}
	return &levels[len(levels)-1]
}
