// Package template expands {{VAR}} placeholders in user-supplied names, such
// as journal file names.
package template

import (
	"fmt"
	"strings"
	"time"

	"github.com/aalvaropc/solid/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", invalid("unclosed template expression")
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", invalid("empty template expression")
		}

		value, ok := vars[key]
		if !ok {
			return "", invalid(fmt.Sprintf("missing variable %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// TimeVars exposes date and time placeholders for t.
func TimeVars(t time.Time) map[string]string {
	return map[string]string{
		"date": t.Format("2006-01-02"),
		"time": t.Format("150405"),
		"unix": fmt.Sprint(t.Unix()),
	}
}

func invalid(msg string) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidArgument,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidArgument),
	}
}
