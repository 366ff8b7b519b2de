// Package strings holds small string helpers shared by the transport layers
package strings

import std "strings"

// MustPrefix normalizes a route root like "movies" or "/meta/" to "/movies"
// panics if nothing is left after trimming
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// MustString panics naming what is missing when s is blank
func MustString(s, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// SplitCSV expands repeated and comma-separated values into one list,
// trimming blanks and dropping duplicates while keeping first-seen order
func SplitCSV(vals ...string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, v := range vals {
		for _, p := range std.Split(v, ",") {
			p = std.TrimSpace(p)
			if p == "" {
				continue
			}
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

// Ptr returns a pointer to s, or nil if s is empty
func Ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns "" if ps is nil, else *ps
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}
