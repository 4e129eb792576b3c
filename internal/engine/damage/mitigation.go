package damage

// MitigationPolicy decides how much damage a clash negates
type MitigationPolicy string

const (
	// MitigationAllOrNothing negates all damage on a full success, none otherwise
	MitigationAllOrNothing MitigationPolicy = "all_or_nothing"

	// MitigationProportional negates damage in proportion to the successes rolled
	MitigationProportional MitigationPolicy = "proportional"
)

// IsValid reports whether the policy is known
func (p MitigationPolicy) IsValid() bool {
	return p == MitigationAllOrNothing || p == MitigationProportional
}

// Mitigate returns the damage that still lands after a clash in which the
// defender rolled successes against expected attacker successes.
func (c *Calculator) Mitigate(incoming, successes, expected int) int {
	return Mitigate(c.mitigation, incoming, successes, expected)
}

// Mitigate applies policy to incoming damage
func Mitigate(policy MitigationPolicy, incoming, successes, expected int) int {
	if incoming <= 0 {
		return 0
	}
	if expected < 1 {
		expected = 1
	}
	if successes >= expected {
		return 0
	}
	if policy != MitigationProportional || successes <= 0 {
		return incoming
	}
	return incoming - incoming*successes/expected
}
