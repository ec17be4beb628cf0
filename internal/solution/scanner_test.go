package solution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_ReadUpToAndEat(t *testing.T) {
	t.Parallel()

	sc := NewScanner(`Project("{AAAA}") = "Name"`)

	token, err := sc.ReadUpToAndEat(`("`)
	require.NoError(t, err)
	assert.Equal(t, "Project", token)

	token, err = sc.ReadUpToAndEat(`")`)
	require.NoError(t, err)
	assert.Equal(t, "{AAAA}", token)

	token, err = sc.ReadUpToAndEat(`"`)
	require.NoError(t, err)
	assert.Equal(t, " = ", token)

	token, err = sc.ReadUpToAndEat(`"`)
	require.NoError(t, err)
	assert.Equal(t, "Name", token)
}

func TestScanner_MissingDelimiter(t *testing.T) {
	t.Parallel()

	sc := NewScanner("no quotes here")

	_, err := sc.ReadUpToAndEat(`"`)
	require.ErrorIs(t, err, ErrMalformedLine)

	// The cursor must not move on failure.
	rest := sc.Rest()
	assert.Equal(t, "no quotes here", rest)
}

func TestScanner_CursorIsMonotonic(t *testing.T) {
	t.Parallel()

	sc := NewScanner("a,b,c")

	first, err := sc.ReadUpToAndEat(",")
	require.NoError(t, err)
	assert.Equal(t, "a", first)

	second, err := sc.ReadUpToAndEat(",")
	require.NoError(t, err)
	assert.Equal(t, "b", second)

	// Only the remainder is visible; earlier text is gone for good.
	assert.Equal(t, "c", sc.Rest())
	assert.Equal(t, "", sc.Rest())
}
