package solution

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ProjectBlock is one project entry: its type identifier, display name,
// relative path, unique identifier, and nested sections in declaration
// order.
//
// GUID is deliberately reassignable so a caller can stamp its own tracking
// identifier on an entry after parsing. Name and path are only settable
// through the validating constructor.
type ProjectBlock struct {
	// TypeGUID identifies the project kind (language/flavor).
	TypeGUID uuid.UUID
	// GUID uniquely identifies the project within the solution.
	GUID uuid.UUID
	// Sections holds the nested ProjectSection blocks in declaration order.
	Sections []*SectionBlock

	name string
	path string
}

// NewProjectBlock validates and constructs a project entry. Name and path
// must be non-empty; the check runs at construction so an invalid entry
// fails fast rather than surfacing at serialization.
func NewProjectBlock(typeGUID, guid uuid.UUID, name, path string) (*ProjectBlock, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: project name", ErrEmptyField)
	}
	if path == "" {
		return nil, fmt.Errorf("%w: project path", ErrEmptyField)
	}
	return &ProjectBlock{
		TypeGUID: typeGUID,
		GUID:     guid,
		name:     name,
		path:     path,
	}, nil
}

// Name returns the project's display name.
func (p *ProjectBlock) Name() string { return p.name }

// Path returns the project's path relative to the solution file.
func (p *ProjectBlock) Path() string { return p.path }

// AddSection appends a nested section, preserving declaration order.
func (p *ProjectBlock) AddSection(s *SectionBlock) {
	p.Sections = append(p.Sections, s)
}

// ParseProject reads one project entry from the reader: the header line, any
// nested sections, and the EndProject marker.
//
// The close is tolerant: if the marker is omitted but the next significant
// line starts another `Project` entry or the `Global` block, the entry is
// accepted as closed. Historic writers produced such files, so this is a
// normalized input variant, not an error. The leniency does not extend to
// end of input, where the marker stays required.
func ParseProject(r *LineReader) (*ProjectBlock, error) {
	line, ok := r.Read()
	if !ok {
		return nil, errAt(r.Line(), fmt.Errorf("%w: expected project header", ErrUnexpectedEOF))
	}

	typeGUID, guid, name, path, err := parseProjectHeader(strings.TrimLeft(line, " \t"))
	if err != nil {
		return nil, errAt(r.Line(), err)
	}

	project, err := NewProjectBlock(typeGUID, guid, name, path)
	if err != nil {
		return nil, errAt(r.Line(), err)
	}

	// An indented line signals a nested section rather than EndProject, the
	// next Project, or Global.
	for {
		next, ok := r.Peek()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(next)
		if trimmed == "" {
			r.Read()
			continue
		}
		if trimmed == "EndProject" || !isIndented(next) {
			break
		}
		section, err := ParseSection(r, ProjectSection)
		if err != nil {
			return nil, err
		}
		project.AddSection(section)
	}

	if err := readProjectClose(r); err != nil {
		return nil, err
	}
	return project, nil
}

// parseProjectHeader extracts the four fields of a
// `Project("{type}") = "name", "path", "{guid}"` line as a fixed sequence
// of named steps, one per field, so every failure maps to exactly one error
// kind.
func parseProjectHeader(line string) (typeGUID, guid uuid.UUID, name, path string, err error) {
	sc := NewScanner(line)

	// Step 1: the Project keyword, terminated by the opening `("`.
	keyword, scanErr := sc.ReadUpToAndEat(`("`)
	if scanErr != nil || strings.TrimSpace(keyword) != "Project" {
		err = fmt.Errorf("%w: expected `Project(\"` at %q", ErrInvalidProjectHeader, line)
		return
	}

	// Step 2: the project-type GUID, terminated by `")`.
	typeText, scanErr := sc.ReadUpToAndEat(`")`)
	if scanErr != nil {
		err = fmt.Errorf("%w: unterminated project type field", ErrInvalidProjectHeader)
		return
	}
	typeGUID, err = ParseGUID(typeText)
	if err != nil {
		return
	}

	// Step 3: the `=` separator between the type tuple and the name field.
	if err = eatSeparator(sc, "="); err != nil {
		return
	}

	// Step 4: the project name, raw and unescaped.
	name, scanErr = sc.ReadUpToAndEat(`"`)
	if scanErr != nil {
		err = fmt.Errorf("%w: unterminated project name field", ErrInvalidProjectHeader)
		return
	}

	// Step 5: the `,` separator before the path field.
	if err = eatSeparator(sc, ","); err != nil {
		return
	}

	// Step 6: the project path, raw.
	path, scanErr = sc.ReadUpToAndEat(`"`)
	if scanErr != nil {
		err = fmt.Errorf("%w: unterminated project path field", ErrInvalidProjectHeader)
		return
	}

	// Step 7: the `,` separator before the GUID field.
	if err = eatSeparator(sc, ","); err != nil {
		return
	}

	// Step 8: the project GUID.
	guidText, scanErr := sc.ReadUpToAndEat(`"`)
	if scanErr != nil {
		err = fmt.Errorf("%w: unterminated project GUID field", ErrInvalidProjectHeader)
		return
	}
	guid, err = ParseGUID(guidText)
	return
}

// eatSeparator consumes the text between two quoted fields and requires it
// to be exactly the given separator once trimmed.
func eatSeparator(sc *Scanner, sep string) error {
	between, err := sc.ReadUpToAndEat(`"`)
	if err != nil || strings.TrimSpace(between) != sep {
		return fmt.Errorf("%w: expected %q between fields", ErrInvalidProjectHeader, sep)
	}
	return nil
}

// readProjectClose consumes the EndProject marker, or accepts its absence
// when the next significant line opens a sibling entry.
func readProjectClose(r *LineReader) error {
	r.SkipBlank()
	next, ok := r.Peek()
	if !ok {
		return errAt(r.Line(), fmt.Errorf("%w: missing EndProject", ErrUnexpectedEOF))
	}
	trimmed := strings.TrimSpace(next)
	switch {
	case trimmed == "EndProject":
		r.Read()
		return nil
	case strings.HasPrefix(trimmed, "Project(") || trimmed == "Global":
		// Omitted EndProject, accepted when a sibling begins immediately.
		return nil
	default:
		return errAt(r.Line()+1, fmt.Errorf("%w: expected EndProject, got %q", ErrInvalidProjectHeader, trimmed))
	}
}

// isIndented reports whether the raw line starts with whitespace.
func isIndented(line string) bool {
	return len(line) > 0 && (line[0] == ' ' || line[0] == '\t')
}

// appendText renders the header line, nested sections one level deep, and
// the EndProject marker. GUIDs are rendered canonically even if the source
// used another casing.
func (p *ProjectBlock) appendText(sb *strings.Builder, unit string) {
	// Fields are written raw between quotes; the format has no escaping, so
	// %q-style quoting would corrupt paths containing backslashes.
	sb.WriteString(`Project("`)
	sb.WriteString(FormatGUID(p.TypeGUID))
	sb.WriteString(`") = "`)
	sb.WriteString(p.name)
	sb.WriteString(`", "`)
	sb.WriteString(p.path)
	sb.WriteString(`", "`)
	sb.WriteString(FormatGUID(p.GUID))
	sb.WriteString("\"\n")
	for _, s := range p.Sections {
		s.appendText(sb, 1, unit)
	}
	sb.WriteString("EndProject\n")
}

// Text renders the whole entry using unit as the indentation unit.
func (p *ProjectBlock) Text(unit string) string {
	var sb strings.Builder
	p.appendText(&sb, unit)
	return sb.String()
}
