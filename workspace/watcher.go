package workspace

import (
	"time"

	"github.com/dhamidi/syntree/project"
)

// FileWatcher polls the workspace root and rescans source files whose
// modification time moved forward. Files that disappear are removed.
type FileWatcher struct {
	workspace    *Workspace
	stopCh       chan struct{}
	doneCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time
	onChange     func(path string)
}

func NewFileWatcher(w *Workspace, pollInterval time.Duration) *FileWatcher {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &FileWatcher{
		workspace:    w,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
		pollInterval: pollInterval,
		modTimes:     make(map[string]time.Time),
	}
}

// OnChange registers a callback run after a file is rescanned or removed.
// It must be set before Start.
func (fw *FileWatcher) OnChange(fn func(path string)) {
	fw.onChange = fn
}

func (fw *FileWatcher) Start() {
	go fw.run()
}

// Stop ends polling and waits for the poll goroutine to exit.
func (fw *FileWatcher) Stop() {
	close(fw.stopCh)
	<-fw.doneCh
}

func (fw *FileWatcher) run() {
	defer close(fw.doneCh)
	ticker := time.NewTicker(fw.pollInterval)
	defer ticker.Stop()

	fw.Scan()

	for {
		select {
		case <-fw.stopCh:
			return
		case <-ticker.C:
			fw.Scan()
		}
	}
}

// Scan runs one poll. It is exported so callers can drive the watcher
// without a ticker.
func (fw *FileWatcher) Scan() {
	ws := fw.workspace
	files, err := project.SourceFiles(ws.fs, ws.rootDir, ws.exclude...)
	if err != nil {
		ws.log.Warningf("watch %s: %s", ws.rootDir, err)
		return
	}

	current := make(map[string]bool, len(files))
	for _, path := range files {
		current[path] = true
		info, err := ws.fs.Stat(path)
		if err != nil {
			continue
		}
		lastMod, known := fw.modTimes[path]
		if known && !info.ModTime().After(lastMod) {
			continue
		}
		fw.modTimes[path] = info.ModTime()
		if err := ws.ScanFile(path); err != nil {
			ws.log.Warningf("rescan %s: %s", path, err)
			continue
		}
		fw.changed(path)
	}

	for path := range fw.modTimes {
		if !current[path] {
			delete(fw.modTimes, path)
			ws.RemoveFile(path)
			fw.changed(path)
		}
	}
}

func (fw *FileWatcher) changed(path string) {
	if fw.onChange != nil {
		fw.onChange(path)
	}
}
