package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Warning)
	logger.Infof("hidden %d", 1)
	logger.Warningf("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "[test]")

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("details")
	assert.Contains(t, buf.String(), "details")
}

func TestSetSinkKeepsLevel(t *testing.T) {
	SetLevel(Error)
	defer SetLevel(Notice)

	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	New("test").Warningf("dropped")
	assert.Empty(t, buf.String())
}

func TestVerbosity(t *testing.T) {
	assert.Equal(t, Notice, Verbosity(0))
	assert.Equal(t, Info, Verbosity(1))
	assert.Equal(t, Debug, Verbosity(2))
	assert.Equal(t, Debug, Verbosity(5))
}
