// Package internal carries the placeholder grammar consumed by the public
// templstore package: ${name} markers substituted from named string
// arguments. The store and cache layers never look inside template strings;
// this is the only code that does.
package internal

import (
	"fmt"
	"strings"
)

// Placeholder delimiter constants
const (
	PlaceholderOpen  = "${"
	PlaceholderClose = "}"
	EscapedDollar    = "$$"
)

// UnresolvedError reports a placeholder with no matching argument.
type UnresolvedError struct {
	Variable string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("unresolved placeholder %q", e.Variable)
}

// SyntaxError reports a malformed placeholder in the template string.
type SyntaxError struct {
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("unterminated placeholder at offset %d", e.Offset)
}

// Substitute replaces every ${name} marker in tmpl with lookup(name).
// A marker whose lookup reports false fails with an UnresolvedError; an
// unterminated marker fails with a SyntaxError. The sequence $$ escapes a
// literal dollar sign.
func Substitute(tmpl string, lookup func(name string) (string, bool)) (string, error) {
	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		if c != '$' {
			b.WriteByte(c)
			i++
			continue
		}

		if strings.HasPrefix(tmpl[i:], EscapedDollar) {
			b.WriteByte('$')
			i += len(EscapedDollar)
			continue
		}

		if !strings.HasPrefix(tmpl[i:], PlaceholderOpen) {
			b.WriteByte(c)
			i++
			continue
		}

		end := strings.Index(tmpl[i+len(PlaceholderOpen):], PlaceholderClose)
		if end < 0 {
			return "", &SyntaxError{Offset: i}
		}

		name := tmpl[i+len(PlaceholderOpen) : i+len(PlaceholderOpen)+end]
		value, ok := lookup(name)
		if !ok {
			return "", &UnresolvedError{Variable: name}
		}
		b.WriteString(value)
		i += len(PlaceholderOpen) + end + len(PlaceholderClose)
	}

	return b.String(), nil
}

// Variables returns the distinct placeholder names in tmpl, in order of
// first appearance. Malformed markers are skipped.
func Variables(tmpl string) []string {
	var names []string
	seen := make(map[string]bool)

	for i := 0; i < len(tmpl); {
		if strings.HasPrefix(tmpl[i:], EscapedDollar) {
			i += len(EscapedDollar)
			continue
		}
		if !strings.HasPrefix(tmpl[i:], PlaceholderOpen) {
			i++
			continue
		}
		end := strings.Index(tmpl[i+len(PlaceholderOpen):], PlaceholderClose)
		if end < 0 {
			break
		}
		name := tmpl[i+len(PlaceholderOpen) : i+len(PlaceholderOpen)+end]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		i += len(PlaceholderOpen) + end + len(PlaceholderClose)
	}

	return names
}

// SnakeCase converts a CamelCase or mixedCase identifier to snake_case.
// Used to derive stable namespace and variant names from Go type and
// variant identifiers.
func SnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
