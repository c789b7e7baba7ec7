// pkg/search/pattern.go
package search

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrBadPattern is returned when a glob or regular expression cannot be compiled.
var ErrBadPattern = errors.New("bad search pattern")

// Pattern matches a single base name. The match is always anchored to the
// whole name, so "boost-[0-9]_[0-9][0-9]" never matches "boost-1_39-old".
type Pattern struct {
	source string
	re     *regexp.Regexp
}

// Glob compiles a shell-style pattern. '*' matches any run of characters,
// '?' exactly one, and a bracket class such as [a-z0-9] one character from
// the class ([!x] or [^x] negates). Everything else is literal, including
// '.', '+' and braces.
func Glob(pattern string) (*Pattern, error) {
	expr, err := globToRegexp(pattern)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadPattern, pattern, err)
	}
	return &Pattern{source: pattern, re: re}, nil
}

// Regexp compiles a regular expression that must match the entire name.
func Regexp(expr string) (*Pattern, error) {
	re, err := regexp.Compile("^(?:" + expr + ")$")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadPattern, expr, err)
	}
	return &Pattern{source: expr, re: re}, nil
}

// MustGlob is like Glob but panics on error. Intended for package-level tables.
func MustGlob(pattern string) *Pattern {
	p, err := Glob(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether name matches the pattern in full.
func (p *Pattern) Match(name string) bool {
	if p == nil || name == "" {
		return false
	}
	return p.re.MatchString(name)
}

// String returns the pattern as it was written.
func (p *Pattern) String() string {
	if p == nil {
		return ""
	}
	return p.source
}

func globToRegexp(pattern string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("%w: empty pattern", ErrBadPattern)
	}

	var b strings.Builder
	b.WriteString("^")

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			end := strings.IndexByte(pattern[i+1:], ']')
			// "[]" and "[!]" would swallow the closing bracket as a member
			if end == 0 || (end == 1 && (pattern[i+1] == '!' || pattern[i+1] == '^')) {
				next := strings.IndexByte(pattern[i+end+2:], ']')
				if next < 0 {
					return "", fmt.Errorf("%w: unterminated class in %q", ErrBadPattern, pattern)
				}
				end += next + 1
			}
			if end < 0 {
				return "", fmt.Errorf("%w: unterminated class in %q", ErrBadPattern, pattern)
			}
			class := pattern[i+1 : i+1+end]
			b.WriteString(translateClass(class))
			i += end + 1
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	b.WriteString("$")
	return b.String(), nil
}

func translateClass(class string) string {
	var b strings.Builder
	b.WriteByte('[')
	if strings.HasPrefix(class, "!") || strings.HasPrefix(class, "^") {
		b.WriteByte('^')
		class = class[1:]
	}
	for i := 0; i < len(class); i++ {
		c := class[i]
		switch c {
		case '\\', '[', ']', '^':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(']')
	return b.String()
}
