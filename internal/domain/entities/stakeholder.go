package entities

// StakeholderKind selects the audience a synthesis report is rendered for.
type StakeholderKind string

const (
	StakeholderResearchScientist StakeholderKind = "research_scientist"
	StakeholderProductTrainer    StakeholderKind = "product_trainer"
	StakeholderDxProfessional    StakeholderKind = "dx_professional"
)

// ValidStakeholderKinds returns all valid stakeholder values.
func ValidStakeholderKinds() []StakeholderKind {
	return []StakeholderKind{
		StakeholderResearchScientist,
		StakeholderProductTrainer,
		StakeholderDxProfessional,
	}
}

// IsValid checks if the stakeholder kind is one of the defined constants.
func (s StakeholderKind) IsValid() bool {
	switch s {
	case StakeholderResearchScientist, StakeholderProductTrainer, StakeholderDxProfessional:
		return true
	}
	return false
}
