// Package rules matches free text against ordered keyword rules and returns
// the canned responses attached to every term found as a whole word.
package rules

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rule set construction errors.
var (
	ErrEmptyTerm     = errors.New("rule term is empty")
	ErrUppercaseTerm = errors.New("rule term must be lowercase")
	ErrDuplicateTerm = errors.New("rule term is duplicated")
	ErrEmptyResponse = errors.New("rule response is empty")
)

// Rule associates a trigger term with its canned response.
type Rule struct {
	Term     string `json:"term" yaml:"term"`
	Response string `json:"response" yaml:"response"`
}

// RuleSet is a named, ordered and immutable sequence of rules.
type RuleSet struct {
	name  string
	rules []Rule
	index map[string]int
}

// NewRuleSet validates rules and returns them as a RuleSet. The input slice is
// copied, so later changes by the caller do not leak into the set.
func NewRuleSet(name string, rules []Rule) (*RuleSet, error) {
	rs := &RuleSet{
		name:  name,
		rules: make([]Rule, 0, len(rules)),
		index: make(map[string]int, len(rules)),
	}

	for i, r := range rules {
		if strings.TrimSpace(r.Term) == "" {
			return nil, fmt.Errorf("%s rule %d: %w", name, i, ErrEmptyTerm)
		}
		if lower(r.Term) != r.Term {
			return nil, fmt.Errorf("%s rule %q: %w", name, r.Term, ErrUppercaseTerm)
		}
		if _, ok := rs.index[r.Term]; ok {
			return nil, fmt.Errorf("%s rule %q: %w", name, r.Term, ErrDuplicateTerm)
		}
		if strings.TrimSpace(r.Response) == "" {
			return nil, fmt.Errorf("%s rule %q: %w", name, r.Term, ErrEmptyResponse)
		}
		rs.index[r.Term] = len(rs.rules)
		rs.rules = append(rs.rules, r)
	}

	return rs, nil
}

// MustRuleSet is like NewRuleSet but panics on invalid rules. Intended for
// rule sets compiled into the binary.
func MustRuleSet(name string, rules []Rule) *RuleSet {
	rs, err := NewRuleSet(name, rules)
	if err != nil {
		panic(err)
	}
	return rs
}

// Name returns the rule set name used in logs and metrics.
func (rs *RuleSet) Name() string {
	if rs == nil {
		return ""
	}
	return rs.name
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Rules returns a copy of the rules in declared order.
func (rs *RuleSet) Rules() []Rule {
	if rs == nil {
		return nil
	}
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Terms returns the rule terms in declared order.
func (rs *RuleSet) Terms() []string {
	if rs == nil {
		return nil
	}
	terms := make([]string, len(rs.rules))
	for i, r := range rs.rules {
		terms[i] = r.Term
	}
	return terms
}

// Response looks up the canned response for a term.
func (rs *RuleSet) Response(term string) (string, bool) {
	if rs == nil {
		return "", false
	}
	i, ok := rs.index[term]
	if !ok {
		return "", false
	}
	return rs.rules[i].Response, true
}

// Match returns the responses of every rule whose term occurs in input as a
// whole word, case-insensitively, in rule order.
func Match(input string, rs *RuleSet) []string {
	matched := MatchRules(input, rs)
	responses := make([]string, 0, len(matched))
	for _, r := range matched {
		responses = append(responses, r.Response)
	}
	return responses
}

// MatchRules is Match returning the matched rules instead of their responses.
func MatchRules(input string, rs *RuleSet) []Rule {
	if input == "" || rs.Len() == 0 {
		return nil
	}

	text := lower(input)
	var matched []Rule
	for _, r := range rs.rules {
		if containsWord(text, r.Term) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Suggest returns, in input order, every term whose lower-cased form starts
// with the lower-cased prefix. An empty prefix returns all terms.
func Suggest(prefix string, terms []string) []string {
	p := lower(prefix)
	suggestions := make([]string, 0, len(terms))
	for _, t := range terms {
		if strings.HasPrefix(lower(t), p) {
			suggestions = append(suggestions, t)
		}
	}
	return suggestions
}

// lower folds s to lower case. A Caser keeps state, so one is built per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// containsWord reports whether term occurs in text bounded on both sides by a
// non-word rune or the edge of text.
func containsWord(text, term string) bool {
	if term == "" {
		return false
	}

	offset := 0
	for offset <= len(text)-len(term) {
		i := strings.Index(text[offset:], term)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(term)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
