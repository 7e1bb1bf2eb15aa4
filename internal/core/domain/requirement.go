package domain

import (
	"regexp"
	"strings"
)

// validDistributionNameRegex is the PEP 508 distribution name grammar.
var validDistributionNameRegex = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)

// EditableSentinel is the manifest line that asks the packaging tool to install
// the current project in editable mode. It is never a dependency.
const EditableSentinel = "-e ."

// Requirement is a single dependency declaration as read from the manifest,
// e.g. "pandas", "numpy>=1.24" or "requests[socks]; python_version>'3.8'".
// The text is kept verbatim, including any newline artefact of the reader.
type Requirement string

// String returns the declaration text.
func (r Requirement) String() string {
	return string(r)
}

// IsBlank reports whether the declaration holds only whitespace.
func (r Requirement) IsBlank() bool {
	return strings.TrimSpace(string(r)) == ""
}

// IsDirective reports whether the line is a comment ("# ...") or a pip option
// such as "-r base.txt" or "--index-url ...". Directives name no distribution.
func (r Requirement) IsDirective() bool {
	s := strings.TrimSpace(string(r))
	return strings.HasPrefix(s, "#") || strings.HasPrefix(s, "-")
}

// Name returns the distribution name of the declaration: the trimmed text up to
// the first version operator, extras bracket, environment marker or whitespace.
// It is empty for blank lines, directives and text that is not a valid
// distribution name, such as a bare URL.
func (r Requirement) Name() string {
	if r.IsDirective() {
		return ""
	}
	s := strings.TrimSpace(string(r))
	if i := strings.IndexAny(s, "<>=!~[;@ \t\r"); i >= 0 {
		s = s[:i]
	}
	if !validDistributionNameRegex.MatchString(s) {
		return ""
	}
	return s
}

// Requirements converts raw declaration strings to requirements.
func Requirements(lines ...string) []Requirement {
	reqs := make([]Requirement, len(lines))
	for i, l := range lines {
		reqs[i] = Requirement(l)
	}
	return reqs
}

// PinnedVersion returns the version of an exact "==" pin, or "" when the
// declaration is not pinned to a single version.
func (r Requirement) PinnedVersion() string {
	s := strings.TrimSpace(string(r))
	if i := strings.Index(s, ";"); i >= 0 {
		s = s[:i]
	}
	name, version, ok := strings.Cut(s, "==")
	if !ok || strings.HasPrefix(version, "=") || strings.ContainsAny(name, "<>=!~,") {
		return ""
	}
	version = strings.TrimSpace(version)
	if strings.ContainsAny(version, ",*<>!~ ") {
		return ""
	}
	return version
}
