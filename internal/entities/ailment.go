package entities

// AilmentID identifies a status ailment
type AilmentID string

const (
	AilmentBurn          AilmentID = "burn"
	AilmentFrozen        AilmentID = "frozen"
	AilmentParalysis     AilmentID = "paralysis"
	AilmentPoison        AilmentID = "poison"
	AilmentBadlyPoisoned AilmentID = "badlyPoisoned"
	AilmentSleep         AilmentID = "sleep"
	AilmentConfused      AilmentID = "confused"
	AilmentFlinch        AilmentID = "flinch"
	AilmentDisabled      AilmentID = "disabled"
	AilmentInfatuated    AilmentID = "infatuated"
	AilmentFainted       AilmentID = "fainted"
)

var knownAilments = map[AilmentID]bool{
	AilmentBurn:          true,
	AilmentFrozen:        true,
	AilmentParalysis:     true,
	AilmentPoison:        true,
	AilmentBadlyPoisoned: true,
	AilmentSleep:         true,
	AilmentConfused:      true,
	AilmentFlinch:        true,
	AilmentDisabled:      true,
	AilmentInfatuated:    true,
	AilmentFainted:       true,
}

// IsValid reports whether the ailment is one the rules know about
func (a AilmentID) IsValid() bool {
	return knownAilments[a]
}
