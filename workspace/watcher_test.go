package workspace

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcherScan(t *testing.T) {
	w, afs := newTestWorkspace(t, map[string]string{"ws/a.bal": "int a = 1;"})
	path := filepath.Join("ws", "a.bal")

	var changed []string
	fw := NewFileWatcher(w, time.Hour)
	fw.OnChange(func(p string) { changed = append(changed, p) })

	fw.Scan()
	assert.Equal(t, []string{path}, changed)
	require.NotNil(t, w.GetFile(path))

	changed = nil
	fw.Scan()
	assert.Empty(t, changed, "unchanged files are not rescanned")

	require.NoError(t, afero.WriteFile(afs, path, []byte("int a = 2;"), 0o644))
	later := time.Now().Add(time.Minute)
	require.NoError(t, afs.Chtimes(path, later, later))
	fw.Scan()
	assert.Equal(t, []string{path}, changed)
	assert.Equal(t, "int a = 2;", w.GetFile(path).Tree.ToSourceText())

	changed = nil
	require.NoError(t, afs.Remove(path))
	fw.Scan()
	assert.Equal(t, []string{path}, changed)
	assert.Nil(t, w.GetFile(path))
}

func TestWatcherStartStop(t *testing.T) {
	// The commonlog backend keeps a buffered writer goroutine for the life
	// of the process.
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("github.com/tliron/kutil/util.(*BufferedWriter).run"))

	w, _ := newTestWorkspace(t, map[string]string{"ws/a.bal": "int a = 1;"})

	seen := make(chan struct{}, 1)
	fw := NewFileWatcher(w, 10*time.Millisecond)
	fw.OnChange(func(string) {
		select {
		case seen <- struct{}{}:
		default:
		}
	})
	fw.Start()

	select {
	case <-seen:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not scan")
	}
	fw.Stop()

	assert.NotNil(t, w.GetFile(filepath.Join("ws", "a.bal")))
}
