package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Lock(t *testing.T) {
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, nil)

	unlock, err := client.Lock()
	require.NoError(t, err)

	lockPath := filepath.Join(tmpDir, DefaultLockName)
	_, err = os.Stat(lockPath)
	assert.NoError(t, err, "lock file not created")

	unlock()

	_, err = os.Stat(lockPath)
	assert.True(t, os.IsNotExist(err), "lock file not removed after unlock")
}

func TestClient_LockTimeout(t *testing.T) {
	client := NewClient(t.TempDir(), nil)
	client.LockTimeout = 30 * time.Millisecond

	unlock, err := client.Lock()
	require.NoError(t, err)
	defer unlock()

	_, err = client.Lock()
	assert.ErrorIs(t, err, ErrLockTimeout)
}

func TestClient_Init(t *testing.T) {
	if !IsInstalled() {
		t.Skip("git not installed")
	}
	tmpDir := t.TempDir()
	client := NewClient(tmpDir, nil)

	require.NoError(t, client.Init())

	_, err := os.Stat(filepath.Join(tmpDir, ".git"))
	assert.NoError(t, err, ".git directory not created")
	assert.True(t, client.IsRepo())
}

func TestFormatCommitMessage(t *testing.T) {
	msg := FormatCommitMessage(CommitTypeDocs, "outline", "update report", "")
	assert.Equal(t, "docs(outline): update report\n\n"+Footer, msg)

	msg = FormatCommitMessage("", "", "tidy", "  details  ")
	assert.Equal(t, "chore: tidy\n\ndetails\n\n"+Footer, msg)
}

func TestAppendFooter(t *testing.T) {
	assert.Equal(t, "fix typo\n\n"+Footer, AppendFooter("fix typo"))
	once := AppendFooter("fix typo")
	assert.Equal(t, once, AppendFooter(once))
}
