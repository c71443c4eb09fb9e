package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_NoopBeforeInit(t *testing.T) {
	l := NewLogger()
	l.Log("dropped")
	l.Logf("dropped %d", 1)
	l.Close()
	assert.Empty(t, l.Path())
}

func TestLogger_OneFilePerRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	date := time.Now().Format("2006-01-02")

	first := NewLogger()
	require.NoError(t, first.Init(dir))
	first.Logf("rendered %d slides", 8)
	path := first.Path()
	first.Close()
	assert.Equal(t, filepath.Join(dir, "pitchdeck_"+date+"_1.log"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.Contains(content, "Run started"))
	assert.True(t, strings.Contains(content, "rendered 8 slides"))
	assert.True(t, strings.Contains(content, "Run finished"))

	second := NewLogger()
	require.NoError(t, second.Init(dir))
	defer second.Close()
	assert.Equal(t, filepath.Join(dir, "pitchdeck_"+date+"_2.log"), second.Path())
}

func TestLogger_InitFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	l := NewLogger()
	assert.Error(t, l.Init(filepath.Join(file, "logs")))
	assert.Empty(t, l.Path())
}
