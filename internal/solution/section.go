package solution

import (
	"fmt"
	"strings"
)

// SectionKind distinguishes sections owned by a project entry from sections
// owned by the trailing Global block. The kind selects the opening and
// closing marker text.
type SectionKind int

const (
	// ProjectSection is a `ProjectSection(...)` block nested in a project.
	ProjectSection SectionKind = iota
	// GlobalSection is a `GlobalSection(...)` block nested in Global.
	GlobalSection
)

// marker returns the opening marker token for the kind.
func (k SectionKind) marker() string {
	if k == GlobalSection {
		return "GlobalSection"
	}
	return "ProjectSection"
}

// endMarker returns the closing marker token for the kind.
func (k SectionKind) endMarker() string {
	return "End" + k.marker()
}

// SectionType is the lifecycle phase a section is declared for, relative to
// its container: pre/post project for project sections, pre/post solution
// for global sections.
type SectionType int

const (
	PreProject SectionType = iota
	PostProject
	PreSolution
	PostSolution
)

// String returns the type token as it appears after `=` on an opening line.
func (t SectionType) String() string {
	switch t {
	case PreProject:
		return "preProject"
	case PostProject:
		return "postProject"
	case PreSolution:
		return "preSolution"
	case PostSolution:
		return "postSolution"
	default:
		return fmt.Sprintf("SectionType(%d)", int(t))
	}
}

// parseSectionType maps a type token to its SectionType for the given kind.
func parseSectionType(token string, kind SectionKind) (SectionType, error) {
	switch kind {
	case GlobalSection:
		switch token {
		case "preSolution":
			return PreSolution, nil
		case "postSolution":
			return PostSolution, nil
		}
	default:
		switch token {
		case "preProject":
			return PreProject, nil
		case "postProject":
			return PostProject, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown %s type %q", ErrMalformedSection, kind.marker(), token)
}

// SectionBlock is one named, typed section: an ordered list of `key = value`
// properties between an opening marker line and its End marker. A section is
// owned exclusively by the project or Global block that parsed it.
type SectionBlock struct {
	Kind       SectionKind
	Name       string
	Type       SectionType
	Properties []PropertyEntry
}

// NewSectionBlock constructs an empty section for programmatic document
// building.
func NewSectionBlock(kind SectionKind, name string, typ SectionType) *SectionBlock {
	return &SectionBlock{Kind: kind, Name: name, Type: typ}
}

// AddProperty appends a `name = value` entry, preserving insertion order.
func (s *SectionBlock) AddProperty(name, value string) {
	s.Properties = append(s.Properties, PropertyEntry{Name: name, Value: value})
}

// ParseSection reads one section of the given kind from the reader: the
// opening `<Kind>Section(name) = <type>` line, the property lines, and the
// matching End marker. A section left open at end of input, or interrupted
// by a line that is neither a property nor its End marker, is malformed.
func ParseSection(r *LineReader, kind SectionKind) (*SectionBlock, error) {
	line, ok := r.Read()
	if !ok {
		return nil, errAt(r.Line(), fmt.Errorf("%w: expected %s", ErrUnexpectedEOF, kind.marker()))
	}

	sc := NewScanner(strings.TrimSpace(line))
	keyword, err := sc.ReadUpToAndEat("(")
	if err != nil {
		return nil, errAt(r.Line(), fmt.Errorf("%w: %v", ErrMalformedSection, err))
	}
	if keyword != kind.marker() {
		return nil, errAt(r.Line(), fmt.Errorf("%w: expected %q, got %q", ErrMalformedSection, kind.marker(), keyword))
	}
	name, err := sc.ReadUpToAndEat(")")
	if err != nil {
		return nil, errAt(r.Line(), fmt.Errorf("%w: %v", ErrMalformedSection, err))
	}
	rest := strings.TrimSpace(sc.Rest())
	if !strings.HasPrefix(rest, "=") {
		return nil, errAt(r.Line(), fmt.Errorf("%w: expected '=' after %s(%s)", ErrMalformedSection, kind.marker(), name))
	}
	typ, err := parseSectionType(strings.TrimSpace(rest[1:]), kind)
	if err != nil {
		return nil, errAt(r.Line(), err)
	}

	section := NewSectionBlock(kind, name, typ)
	for {
		body, ok := r.Read()
		if !ok {
			return nil, errAt(r.Line(), fmt.Errorf("%w: %s(%s) not closed by %s", ErrMalformedSection, kind.marker(), name, kind.endMarker()))
		}
		trimmed := strings.TrimSpace(body)
		switch {
		case trimmed == "":
			continue
		case trimmed == kind.endMarker():
			return section, nil
		case strings.Contains(trimmed, "="):
			key, value, _ := strings.Cut(trimmed, "=")
			section.AddProperty(strings.TrimSpace(key), strings.TrimSpace(value))
		default:
			// A sibling marker or stray text before the End marker means the
			// section was never properly closed.
			return nil, errAt(r.Line(), fmt.Errorf("%w: unexpected %q inside %s(%s)", ErrMalformedSection, trimmed, kind.marker(), name))
		}
	}
}

// appendText renders the section at the given indent depth, properties one
// level deeper.
func (s *SectionBlock) appendText(sb *strings.Builder, depth int, unit string) {
	prefix := strings.Repeat(unit, depth)
	sb.WriteString(prefix)
	sb.WriteString(s.Kind.marker())
	sb.WriteString("(")
	sb.WriteString(s.Name)
	sb.WriteString(") = ")
	sb.WriteString(s.Type.String())
	sb.WriteString("\n")
	for _, p := range s.Properties {
		sb.WriteString(prefix)
		sb.WriteString(unit)
		sb.WriteString(p.Name)
		sb.WriteString(" = ")
		sb.WriteString(p.Value)
		sb.WriteString("\n")
	}
	sb.WriteString(prefix)
	sb.WriteString(s.Kind.endMarker())
	sb.WriteString("\n")
}

// Text renders the section at the given indent depth using unit as the
// indentation unit.
func (s *SectionBlock) Text(depth int, unit string) string {
	var sb strings.Builder
	s.appendText(&sb, depth, unit)
	return sb.String()
}
