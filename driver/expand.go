package driver

import "strings"

// Expand splits template on whitespace and substitutes ${NAME} references
// from vars. A token that is exactly one reference is replaced by all of the
// variable's values as separate arguments; a reference embedded in a longer
// token is replaced by the values joined with a space. Unknown references
// expand to nothing and tokens that end up empty are dropped.
//
// Substitution happens after splitting, so values containing spaces stay a
// single argument.
func Expand(template string, vars map[string][]string) []string {
	fields := strings.Fields(template)
	argv := make([]string, 0, len(fields))
	for _, tok := range fields {
		if name, ok := wholeRef(tok); ok {
			for _, v := range vars[name] {
				if v != "" {
					argv = append(argv, v)
				}
			}
			continue
		}
		if s := substitute(tok, vars); s != "" {
			argv = append(argv, s)
		}
	}
	return argv
}

func wholeRef(tok string) (string, bool) {
	if !strings.HasPrefix(tok, "${") || !strings.HasSuffix(tok, "}") {
		return "", false
	}
	name := tok[2 : len(tok)-1]
	if name == "" || strings.ContainsAny(name, "${}") {
		return "", false
	}
	return name, true
}

func substitute(tok string, vars map[string][]string) string {
	var b strings.Builder
	for {
		start := strings.Index(tok, "${")
		if start < 0 {
			b.WriteString(tok)
			return b.String()
		}
		end := strings.IndexByte(tok[start:], '}')
		if end < 0 {
			b.WriteString(tok)
			return b.String()
		}
		b.WriteString(tok[:start])
		b.WriteString(strings.Join(vars[tok[start+2:start+end]], " "))
		tok = tok[start+end+1:]
	}
}
