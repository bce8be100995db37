package models

import "fmt"

type SkillLevel string

const (
	SkillLevelBasic        SkillLevel = "BASIC"
	SkillLevelIntermediate SkillLevel = "INTERMEDIATE"
	SkillLevelAdvanced     SkillLevel = "ADVANCED"
	SkillLevelExpert       SkillLevel = "EXPERT"
)

// ParseSkillLevel validates a wire value against the closed enumeration.
func ParseSkillLevel(s string) (SkillLevel, error) {
	switch SkillLevel(s) {
	case SkillLevelBasic, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelExpert:
		return SkillLevel(s), nil
	default:
		return "", fmt.Errorf("unknown skill level: %q", s)
	}
}
