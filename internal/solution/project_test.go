package solution

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	csharpTypeGUID = "{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}"
	libraryGUID    = "{11111111-1111-1111-1111-111111111111}"
)

func TestParseProject_HeaderFields(t *testing.T) {
	t.Parallel()

	input := `Project("` + csharpTypeGUID + `") = "ClassLibrary1", "ClassLibrary1\ClassLibrary1.csproj", "` + libraryGUID + `"` + "\n" +
		"EndProject\n"
	r := NewLineReader(strings.NewReader(input))

	project, err := ParseProject(r)
	require.NoError(t, err)

	assert.Equal(t, csharpTypeGUID, FormatGUID(project.TypeGUID))
	assert.Equal(t, libraryGUID, FormatGUID(project.GUID))
	assert.Equal(t, "ClassLibrary1", project.Name())
	assert.Equal(t, `ClassLibrary1\ClassLibrary1.csproj`, project.Path())
	assert.Empty(t, project.Sections)

	// The serialized form reproduces an equivalent block.
	expected := `Project("` + csharpTypeGUID + `") = "ClassLibrary1", "ClassLibrary1\ClassLibrary1.csproj", "` + libraryGUID + `"` + "\n" +
		"EndProject\n"
	assert.Equal(t, expected, project.Text("\t"))
}

func TestParseProject_NestedSections(t *testing.T) {
	t.Parallel()

	input := `Project("` + csharpTypeGUID + `") = "App", "App\App.csproj", "` + libraryGUID + `"` + "\n" +
		"\tProjectSection(ProjectDependencies) = postProject\n" +
		"\t\t{A} = {A}\n" +
		"\tEndProjectSection\n" +
		"\tProjectSection(Notes) = preProject\n" +
		"\tEndProjectSection\n" +
		"EndProject\n"
	r := NewLineReader(strings.NewReader(input))

	project, err := ParseProject(r)
	require.NoError(t, err)

	require.Len(t, project.Sections, 2)
	assert.Equal(t, "ProjectDependencies", project.Sections[0].Name)
	assert.Equal(t, PostProject, project.Sections[0].Type)
	assert.Equal(t, "Notes", project.Sections[1].Name)
	assert.Equal(t, PreProject, project.Sections[1].Type)
}

func TestParseProject_GUIDCasingIsNormalized(t *testing.T) {
	t.Parallel()

	input := `Project("{fae04ec0-301f-11d3-bf4b-00c04f79efbc}") = "App", "App.csproj", "{11111111-1111-1111-1111-111111111111}"` + "\n" +
		"EndProject\n"
	r := NewLineReader(strings.NewReader(input))

	project, err := ParseProject(r)
	require.NoError(t, err)

	assert.Contains(t, project.Text("\t"), csharpTypeGUID)
}

func TestParseProject_MissingEndProjectBeforeSibling(t *testing.T) {
	t.Parallel()

	// Historic writers omitted EndProject when the next entry followed
	// immediately. The marker's absence must be accepted, and the sibling's
	// header line left unconsumed.
	input := `Project("` + csharpTypeGUID + `") = "First", "First.csproj", "` + libraryGUID + `"` + "\n" +
		`Project("` + csharpTypeGUID + `") = "Second", "Second.csproj", "{22222222-2222-2222-2222-222222222222}"` + "\n" +
		"EndProject\n"
	r := NewLineReader(strings.NewReader(input))

	first, err := ParseProject(r)
	require.NoError(t, err)
	assert.Equal(t, "First", first.Name())

	second, err := ParseProject(r)
	require.NoError(t, err)
	assert.Equal(t, "Second", second.Name())
}

func TestParseProject_MissingEndProjectBeforeGlobal(t *testing.T) {
	t.Parallel()

	input := `Project("` + csharpTypeGUID + `") = "App", "App.csproj", "` + libraryGUID + `"` + "\n" +
		"Global\n"
	r := NewLineReader(strings.NewReader(input))

	project, err := ParseProject(r)
	require.NoError(t, err)
	assert.Equal(t, "App", project.Name())

	// Global stays for the document parser.
	next, ok := r.Peek()
	require.True(t, ok)
	assert.Equal(t, "Global", next)
}

func TestParseProject_MissingEndProjectAtEOF(t *testing.T) {
	t.Parallel()

	// The leniency covers an immediately following sibling only; at true end
	// of input the marker stays required.
	input := `Project("` + csharpTypeGUID + `") = "App", "App.csproj", "` + libraryGUID + `"` + "\n"
	r := NewLineReader(strings.NewReader(input))

	_, err := ParseProject(r)
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestParseProject_HeaderErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		line      string
		expectErr error
	}{
		{
			name:      "keyword is not Project",
			line:      `Porject("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "A", "B", "{11111111-1111-1111-1111-111111111111}"`,
			expectErr: ErrInvalidProjectHeader,
		},
		{
			name:      "type GUID not hex",
			line:      `Project("{NOT-A-GUID}") = "A", "B", "{11111111-1111-1111-1111-111111111111}"`,
			expectErr: ErrInvalidGUID,
		},
		{
			name:      "project GUID not hex",
			line:      `Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "A", "B", "{bogus}"`,
			expectErr: ErrInvalidGUID,
		},
		{
			name:      "missing equals separator",
			line:      `Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") "A", "B", "{11111111-1111-1111-1111-111111111111}"`,
			expectErr: ErrInvalidProjectHeader,
		},
		{
			name:      "missing comma separator",
			line:      `Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "A" "B", "{11111111-1111-1111-1111-111111111111}"`,
			expectErr: ErrInvalidProjectHeader,
		},
		{
			name:      "unterminated name field",
			line:      `Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "A`,
			expectErr: ErrInvalidProjectHeader,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := NewLineReader(strings.NewReader(tc.line + "\nEndProject\n"))
			_, err := ParseProject(r)

			require.ErrorIs(t, err, tc.expectErr)
		})
	}
}

func TestParseProject_GarbageInsteadOfEndProject(t *testing.T) {
	t.Parallel()

	input := `Project("` + csharpTypeGUID + `") = "App", "App.csproj", "` + libraryGUID + `"` + "\n" +
		"NotAMarker\n"
	r := NewLineReader(strings.NewReader(input))

	_, err := ParseProject(r)
	require.ErrorIs(t, err, ErrInvalidProjectHeader)
}

func TestNewProjectBlock_EmptyFields(t *testing.T) {
	t.Parallel()

	typeGUID := uuid.MustParse("FAE04EC0-301F-11D3-BF4B-00C04F79EFBC")
	guid := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	_, err := NewProjectBlock(typeGUID, guid, "", "some/path.csproj")
	require.ErrorIs(t, err, ErrEmptyField)

	_, err = NewProjectBlock(typeGUID, guid, "Name", "")
	require.ErrorIs(t, err, ErrEmptyField)

	project, err := NewProjectBlock(typeGUID, guid, "Name", "some/path.csproj")
	require.NoError(t, err)
	assert.Equal(t, "Name", project.Name())
}

func TestParseProject_EmptyNameFailsAtConstruction(t *testing.T) {
	t.Parallel()

	// The same validation fires whether the block comes from parsing or from
	// direct construction.
	input := `Project("` + csharpTypeGUID + `") = "", "App.csproj", "` + libraryGUID + `"` + "\n" +
		"EndProject\n"
	r := NewLineReader(strings.NewReader(input))

	_, err := ParseProject(r)
	require.ErrorIs(t, err, ErrEmptyField)
}
