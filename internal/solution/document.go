package solution

import (
	"fmt"
	"io"
	"strings"
)

// DefaultIndent is the indentation unit used when no explicit unit is
// configured. The format's historic writers indent with a single tab.
const DefaultIndent = "\t"

// SolutionDocument is the root aggregate: the verbatim header lines, the
// ordered project entries, and the sections of the trailing Global block.
// A parsed document is fully independent of the stream it was read from.
type SolutionDocument struct {
	// HeaderLines holds everything before the first Project or Global line,
	// verbatim. Header metadata is opaque passthrough and never
	// reinterpreted.
	HeaderLines []string
	// Projects holds the project entries in file order.
	Projects []*ProjectBlock
	// GlobalSections holds the GlobalSection blocks of the Global block in
	// file order.
	GlobalSections []*SectionBlock
	// HasGlobal records whether the document carries a Global block, so an
	// empty `Global`/`EndGlobal` pair survives a round trip.
	HasGlobal bool
}

// NewSolutionDocument returns an empty document for programmatic building.
func NewSolutionDocument() *SolutionDocument {
	return &SolutionDocument{}
}

// AddProject appends a project entry, preserving order.
func (d *SolutionDocument) AddProject(p *ProjectBlock) {
	d.Projects = append(d.Projects, p)
}

// AddGlobalSection appends a section to the Global block.
func (d *SolutionDocument) AddGlobalSection(s *SectionBlock) {
	d.HasGlobal = true
	d.GlobalSections = append(d.GlobalSections, s)
}

// Parse reads one complete solution document from r. The stream is read
// strictly forward, one line at a time; after Parse returns the caller may
// release the stream immediately.
//
// Document shape: header lines, zero or more Project entries, then at most
// one Global block, then end of input. The Projects loop and the Global
// block are discriminated by peeking the next significant line, which is
// also what lets ParseProject accept a historically omitted EndProject.
func Parse(r io.Reader) (*SolutionDocument, error) {
	lr := NewLineReader(r)
	doc := NewSolutionDocument()

	// Header: opaque passthrough up to the first Project or Global line.
	for {
		line, ok := lr.Peek()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "Project(") || trimmed == "Global" {
			break
		}
		lr.Read()
		doc.HeaderLines = append(doc.HeaderLines, line)
	}

	// Projects: loop while the next significant line opens a Project entry.
	for {
		line, ok := lr.Peek()
		if !ok {
			if err := lr.Err(); err != nil {
				return nil, fmt.Errorf("read solution: %w", err)
			}
			return doc, nil
		}
		if !strings.HasPrefix(strings.TrimSpace(line), "Project(") {
			break
		}
		project, err := ParseProject(lr)
		if err != nil {
			return nil, err
		}
		doc.AddProject(project)
		lr.SkipBlank()
	}

	if err := parseGlobal(lr, doc); err != nil {
		return nil, err
	}

	lr.SkipBlank()
	if trailing, ok := lr.Peek(); ok {
		return nil, errAt(lr.Line()+1, fmt.Errorf("%w: unexpected content after EndGlobal: %q", ErrMalformedLine, strings.TrimSpace(trailing)))
	}
	if err := lr.Err(); err != nil {
		return nil, fmt.Errorf("read solution: %w", err)
	}
	return doc, nil
}

// parseGlobal reads the `Global` ... `EndGlobal` block and its nested
// GlobalSection blocks.
func parseGlobal(lr *LineReader, doc *SolutionDocument) error {
	line, ok := lr.Read()
	if !ok {
		return errAt(lr.Line(), fmt.Errorf("%w: expected Global", ErrUnexpectedEOF))
	}
	if strings.TrimSpace(line) != "Global" {
		return errAt(lr.Line(), fmt.Errorf("%w: expected Global, got %q", ErrMalformedLine, strings.TrimSpace(line)))
	}
	doc.HasGlobal = true

	for {
		next, ok := lr.Peek()
		if !ok {
			return errAt(lr.Line(), fmt.Errorf("%w: missing EndGlobal", ErrUnexpectedEOF))
		}
		trimmed := strings.TrimSpace(next)
		switch {
		case trimmed == "":
			lr.Read()
		case trimmed == "EndGlobal":
			lr.Read()
			return nil
		default:
			section, err := ParseSection(lr, GlobalSection)
			if err != nil {
				return err
			}
			doc.GlobalSections = append(doc.GlobalSections, section)
		}
	}
}

// Text renders the document with the default indentation unit.
func (d *SolutionDocument) Text() string {
	return d.TextIndent(DefaultIndent)
}

// TextIndent renders the document using unit as the indentation unit.
// Output is normalized: canonical GUID casing, uniform indentation, and an
// EndProject marker on every entry whether or not the input carried one.
func (d *SolutionDocument) TextIndent(unit string) string {
	var sb strings.Builder
	for _, h := range d.HeaderLines {
		sb.WriteString(h)
		sb.WriteString("\n")
	}
	for _, p := range d.Projects {
		p.appendText(&sb, unit)
	}
	if d.HasGlobal || len(d.GlobalSections) > 0 {
		sb.WriteString("Global\n")
		for _, s := range d.GlobalSections {
			s.appendText(&sb, 1, unit)
		}
		sb.WriteString("EndGlobal\n")
	}
	return sb.String()
}

// Write serializes the document to w.
func (d *SolutionDocument) Write(w io.Writer) error {
	_, err := io.WriteString(w, d.Text())
	return err
}
