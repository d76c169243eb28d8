package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// RulesConfig represents the structure of the rules YAML file.
// Ordered rule lists are easier to maintain in YAML than env vars.
type RulesConfig struct {
	Healthcare []RuleConfig `yaml:"healthcare"`
	General    []RuleConfig `yaml:"general"`
}

// RuleConfig defines a single term and its canned response.
type RuleConfig struct {
	Term     string `yaml:"term"`
	Response string `yaml:"response"`
}

// LoadRulesConfig loads the rules file at path.
// Returns nil without error if the file doesn't exist.
func LoadRulesConfig(path string) (*RulesConfig, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Rules file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg RulesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// HealthcareTerms returns the configured healthcare terms in file order.
func (c *RulesConfig) HealthcareTerms() []string {
	if c == nil {
		return nil
	}
	return termsOf(c.Healthcare)
}

// GeneralTerms returns the configured general terms in file order.
func (c *RulesConfig) GeneralTerms() []string {
	if c == nil {
		return nil
	}
	return termsOf(c.General)
}

func termsOf(rules []RuleConfig) []string {
	terms := make([]string, len(rules))
	for i, r := range rules {
		terms[i] = r.Term
	}
	return terms
}
