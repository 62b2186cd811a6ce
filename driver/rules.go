package driver

import (
	"fmt"
	"strings"
)

type matchKind int

const (
	kindFlag         matchKind = iota // exact flag, no value
	kindFlagValue                     // exact flag followed by one value token
	kindUnrecognized                  // any remaining dash token: error
	kindPositional                    // anything else
)

// Rule is one typed matcher in an ordered rule list.
type Rule struct {
	Name   string
	kind   matchKind
	action Action
}

// Flag matches exactly name and applies action with an empty value.
func Flag(name string, action Action) Rule {
	return Rule{Name: name, kind: kindFlag, action: action}
}

// FlagValue matches name followed by one value token, which is captured.
func FlagValue(name string, action Action) Rule {
	return Rule{Name: name, kind: kindFlagValue, action: action}
}

// Unrecognized rejects any token starting with a dash that no earlier rule
// matched.
func Unrecognized() Rule {
	return Rule{kind: kindUnrecognized}
}

// Positional captures the whole token.
func Positional(action Action) Rule {
	return Rule{kind: kindPositional, action: action}
}

// match reports how many tokens the rule consumes at args[i] (0 for no
// match) and the captured value.
func (r Rule) match(args []string, i int, known []string) (int, string, error) {
	tok := args[i]
	switch r.kind {
	case kindFlag:
		if tok == r.Name {
			return 1, "", nil
		}
	case kindFlagValue:
		if tok != r.Name {
			return 0, "", nil
		}
		if i+1 >= len(args) {
			return 0, "", NewError(ErrorTypeMissingValue, fmt.Sprintf("Option %s requires a value", tok)).
				WithToken(tok)
		}
		return 2, args[i+1], nil
	case kindUnrecognized:
		if strings.HasPrefix(tok, "-") {
			return 0, "", unknownOption(tok, known)
		}
	case kindPositional:
		return 1, tok, nil
	}
	return 0, "", nil
}

// Rules is an ordered rule list evaluated first-match-wins.
type Rules []Rule

// Names returns the named flags in declaration order.
func (rs Rules) Names() []string {
	names := make([]string, 0, len(rs))
	for _, r := range rs {
		if r.Name != "" {
			names = append(names, r.Name)
		}
	}
	return names
}

// Parse evaluates rules against each token in order, starting from a copy of
// defaults. The first error stops parsing and is returned.
func Parse(args []string, rules Rules, defaults Config) (Config, error) {
	cfg := defaults.clone()
	known := rules.Names()
	for i := 0; i < len(args); {
		n, err := rules.dispatch(&cfg, args, i, known)
		if err != nil {
			return Config{}, err
		}
		i += n
	}
	return cfg, nil
}

func (rs Rules) dispatch(cfg *Config, args []string, i int, known []string) (int, error) {
	for _, r := range rs {
		n, value, err := r.match(args, i, known)
		if err != nil {
			return 0, err
		}
		if n == 0 {
			continue
		}
		if r.action != nil {
			if err := r.action(cfg, value); err != nil {
				return 0, err
			}
		}
		return n, nil
	}
	return 0, NewError(ErrorTypeInternal, fmt.Sprintf("no rule matches %q", args[i])).WithToken(args[i])
}
