package exclude

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileValidPattern(t *testing.T) {
	result := Compile("a.*b")

	assert.True(t, result.OK)
	require.NotNil(t, result.Pattern)
	assert.Empty(t, result.Err)
	assert.True(t, result.Pattern.MatchString("axxxb"))
}

func TestCompileInvalidPattern(t *testing.T) {
	result := Compile("(")

	assert.False(t, result.OK)
	assert.Nil(t, result.Pattern)
	assert.NotEmpty(t, result.Err)
	assert.Contains(t, result.Err, "Invalid regex")
}

func TestCompileAbsentPattern(t *testing.T) {
	result := Compile("")

	// Отсутствующий шаблон тривиально валиден, оба поля пустые
	assert.True(t, result.OK)
	assert.Nil(t, result.Pattern)
	assert.Empty(t, result.Err)
}

func TestCompileListAlternation(t *testing.T) {
	result := CompileList([]string{"a.*b", "c+"})

	assert.True(t, result.OK)
	require.NotNil(t, result.Pattern)
	assert.Equal(t, "(a.*b)|(c+)", result.Pattern.String())

	// Альтернация срабатывает на любом из шаблонов
	assert.True(t, result.Pattern.MatchString("axb"))
	assert.True(t, result.Pattern.MatchString("ccc"))
	assert.False(t, result.Pattern.MatchString("xyz"))
}

func TestCompileListInvalidEntry(t *testing.T) {
	result := CompileList([]string{"a.*b", "("})

	assert.False(t, result.OK)
	assert.Nil(t, result.Pattern)
	assert.NotEmpty(t, result.Err)
}

func TestCompileListEmpty(t *testing.T) {
	result := CompileList(nil)

	assert.True(t, result.OK)
	assert.Nil(t, result.Pattern)
	assert.Empty(t, result.Err)
}

func TestCompileListSingleEntry(t *testing.T) {
	result := CompileList([]string{`^/var/log/.*`})

	assert.True(t, result.OK)
	require.NotNil(t, result.Pattern)
	assert.True(t, result.Pattern.MatchString("/var/log/messages"))
}
