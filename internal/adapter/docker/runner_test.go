package docker

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageInputsWithoutStdin(t *testing.T) {
	workDir := t.TempDir()

	cmd, mounts, err := stageInputs(workDir, `print("hi")`, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"python", "/sandbox/code.py"}, cmd)
	require.Len(t, mounts, 1)
	assert.Equal(t, "/sandbox/code.py", mounts[0].Target)
	assert.True(t, mounts[0].ReadOnly)

	content, err := os.ReadFile(filepath.Join(workDir, "code.py"))
	require.NoError(t, err)
	assert.Equal(t, `print("hi")`, string(content))
}

func TestStageInputsWithStdin(t *testing.T) {
	workDir := t.TempDir()

	cmd, mounts, err := stageInputs(workDir, "print(input())", "hello")
	require.NoError(t, err)

	require.Len(t, cmd, 3)
	assert.Equal(t, "sh", cmd[0])
	assert.Contains(t, cmd[2], "< /sandbox/input.txt")
	require.Len(t, mounts, 2)
	assert.Equal(t, "/sandbox/input.txt", mounts[1].Target)

	content, err := os.ReadFile(filepath.Join(workDir, "input.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestDeadlineExceededSeparatesTimeoutFromCancellation(t *testing.T) {
	// An expired deadline counts as a timeout.
	timedOut, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-timedOut.Done()
	assert.True(t, deadlineExceeded(timedOut))

	// Cancellation before the deadline fires does not, even with a
	// deadline attached: a disconnected client is not a timed out run.
	cancelled, cancelEarly := context.WithTimeout(context.Background(), time.Hour)
	cancelEarly()
	assert.False(t, deadlineExceeded(cancelled))

	parent, cancelParent := context.WithCancel(context.Background())
	child, cancelChild := context.WithTimeout(parent, time.Hour)
	defer cancelChild()
	cancelParent()
	<-child.Done()
	assert.False(t, deadlineExceeded(child))
}

func TestLimitedWriterCapsOutput(t *testing.T) {
	var buf bytes.Buffer
	lw := &limitedWriter{w: &buf, limit: 10}

	n, err := lw.Write([]byte(strings.Repeat("a", 8)))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	// Crosses the cap: only 2 more bytes land, but the caller sees the full
	// length so the stream keeps draining.
	n, err = lw.Write([]byte(strings.Repeat("b", 8)))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, 10, buf.Len())

	n, err = lw.Write([]byte("ccc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 10, buf.Len())

	assert.Equal(t, strings.Repeat("a", 8)+"bb", buf.String())
}

func TestLimitedWriterZeroLimitUnbounded(t *testing.T) {
	var buf bytes.Buffer
	lw := &limitedWriter{w: &buf}

	_, err := lw.Write([]byte(strings.Repeat("x", 1024)))
	require.NoError(t, err)
	assert.Equal(t, 1024, buf.Len())
}
