package radarr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hbollon/go-edlib"
)

// ErrProfileNotFound is returned when the configured target profile does not
// exist in Radarr.
var ErrProfileNotFound = errors.New("quality profile not found")

// ResolveProfileID finds the profile with the given name and returns its id.
// Name comparison is exact: updating every matched movie against the wrong
// profile is worse than refusing to start. The error lists the available
// profiles and, when one is close enough, suggests it.
func ResolveProfileID(profiles []QualityProfile, name string) (int, error) {
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		if p.Name == name {
			return p.ID, nil
		}
		names = append(names, p.Name)
	}

	hint := ""
	if suggestion := closestName(names, name); suggestion != "" {
		hint = fmt.Sprintf(", did you mean %q?", suggestion)
	}
	return 0, fmt.Errorf("%w: %q (available: %s%s)", ErrProfileNotFound, name, strings.Join(names, ", "), hint)
}

// closestName returns the most similar profile name, or "" when nothing is
// close enough to be a plausible typo.
func closestName(names []string, target string) string {
	const threshold = 0.8

	best := ""
	bestScore := float32(0)
	for _, n := range names {
		score := edlib.JaroWinklerSimilarity(strings.ToLower(target), strings.ToLower(n))
		if score > bestScore {
			best = n
			bestScore = score
		}
	}
	if bestScore < threshold {
		return ""
	}
	return best
}
