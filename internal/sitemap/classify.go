package sitemap

import (
	"errors"
	"regexp"
	"strings"
)

// DefaultPriority is returned when no rule matches a filename.
const DefaultPriority = "0.5"

var ErrInvalidPriority = errors.New("priority must be a decimal between 0.0 and 1.0")

// PriorityRule maps a filename, or a filename prefix such as "product", to a priority.
type PriorityRule struct {
	Match    string `mapstructure:"match" json:"match"`
	Priority string `mapstructure:"priority" json:"priority"`
}

// PriorityTable resolves the priority of a page from its filename.
//
// An exact match always wins. Otherwise every rule is treated as a prefix and
// the longest matching one is used, so "product-" beats "product" regardless
// of the order the rules were declared in.
type PriorityTable struct {
	rules    []PriorityRule
	exact    map[string]string
	fallback string
}

func NewPriorityTable(rules []PriorityRule, fallback string) *PriorityTable {
	if fallback == "" {
		fallback = DefaultPriority
	}

	exact := make(map[string]string, len(rules))
	kept := make([]PriorityRule, 0, len(rules))
	for _, rule := range rules {
		if rule.Match == "" {
			continue
		}
		// first declaration of a key wins
		if _, seen := exact[rule.Match]; seen {
			continue
		}
		exact[rule.Match] = rule.Priority
		kept = append(kept, rule)
	}

	return &PriorityTable{
		rules:    kept,
		exact:    exact,
		fallback: fallback,
	}
}

// Classify never fails; unknown names get the fallback priority.
func (t *PriorityTable) Classify(filename string) string {
	if priority, ok := t.exact[filename]; ok {
		return priority
	}

	best := ""
	priority := t.fallback
	for _, rule := range t.rules {
		if len(rule.Match) > len(best) && strings.HasPrefix(filename, rule.Match) {
			best = rule.Match
			priority = rule.Priority
		}
	}
	return priority
}

var priorityPattern = regexp.MustCompile(`^(0(\.[0-9]+)?|1(\.0+)?)$`)

// ValidatePriority checks that p is a plain decimal in [0.0, 1.0], written
// exactly as it should appear in <priority>.
func ValidatePriority(p string) error {
	if !priorityPattern.MatchString(p) {
		return ErrInvalidPriority
	}
	return nil
}
