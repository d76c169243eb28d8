package rules

import (
	"careassist/internal/config"
)

// FromConfig builds the healthcare and general rule sets from a rules file.
// A nil config, or an empty section, falls back to the built-in rules.
func FromConfig(cfg *config.RulesConfig) (healthcare, general *RuleSet, err error) {
	if cfg == nil {
		return Healthcare(), General(), nil
	}

	healthcare = Healthcare()
	if len(cfg.Healthcare) > 0 {
		if healthcare, err = NewRuleSet(HealthcareSet, convert(cfg.Healthcare)); err != nil {
			return nil, nil, err
		}
	}

	general = General()
	if len(cfg.General) > 0 {
		if general, err = NewRuleSet(GeneralSet, convert(cfg.General)); err != nil {
			return nil, nil, err
		}
	}

	return healthcare, general, nil
}

func convert(in []config.RuleConfig) []Rule {
	out := make([]Rule, len(in))
	for i, r := range in {
		out[i] = Rule{Term: r.Term, Response: r.Response}
	}
	return out
}
