package parser

import (
	"testing"

	"fjacquet/chart-csv/internal/logging"

	"github.com/stretchr/testify/assert"
)

func TestNewBaseParser(t *testing.T) {
	t.Run("with provided logger", func(t *testing.T) {
		mockLog := logging.NewMockLogger()
		baseParser := NewBaseParser(mockLog)

		assert.Equal(t, mockLog, baseParser.GetLogger())
	})

	t.Run("with nil logger uses default", func(t *testing.T) {
		baseParser := NewBaseParser(nil)

		assert.NotNil(t, baseParser.GetLogger())
	})
}

func TestBaseParser_SetLogger(t *testing.T) {
	t.Run("sets new logger", func(t *testing.T) {
		baseParser := NewBaseParser(nil)
		mockLog := logging.NewMockLogger()

		baseParser.SetLogger(mockLog)

		assert.Equal(t, mockLog, baseParser.logger)
	})

	t.Run("ignores nil logger", func(t *testing.T) {
		mockLog := logging.NewMockLogger()
		baseParser := NewBaseParser(mockLog)

		baseParser.SetLogger(nil)

		assert.Equal(t, mockLog, baseParser.logger)
	})
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "first", snippet("first\nsecond"))
	assert.Equal(t, "a,b", snippet("a,b\r\nc"))
	long := "0123456789012345678901234567890123456789012345678901234567890123456789"
	assert.Equal(t, long[:60]+"...", snippet(long))
}
