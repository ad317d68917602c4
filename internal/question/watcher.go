package question

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"interviewsim/internal/errors"

	"github.com/fsnotify/fsnotify"
)

// BankWatcher watches a question bank file and reloads it when it changes.
// Editors often replace files instead of writing in place, so the watch is
// on the parent directory and events are filtered by name.
type BankWatcher struct {
	mu sync.Mutex

	path          string
	debounceDelay time.Duration
	debounceTimer *time.Timer

	fsWatcher *fsnotify.Watcher
	stopChan  chan struct{}

	onReload func(*Banks)
	logger   *errors.Logger

	running bool
}

// NewBankWatcher creates a watcher for the given bank file. onReload is
// called with the freshly loaded banks after each successful reload.
func NewBankWatcher(path string, debounceDelay time.Duration, onReload func(*Banks), logger *errors.Logger) *BankWatcher {
	if debounceDelay == 0 {
		debounceDelay = time.Second
	}
	return &BankWatcher{
		path:          path,
		debounceDelay: debounceDelay,
		stopChan:      make(chan struct{}),
		onReload:      onReload,
		logger:        logger,
	}
}

// Start begins watching the bank file for changes
func (bw *BankWatcher) Start() error {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.running {
		return fmt.Errorf("bank watcher is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(bw.path)); err != nil {
		if closeErr := watcher.Close(); closeErr != nil && bw.logger != nil {
			bw.logger.LogError(closeErr, "Failed to close file watcher during cleanup")
		}
		return fmt.Errorf("failed to watch %s: %w", bw.path, err)
	}

	bw.fsWatcher = watcher
	bw.running = true
	go bw.watchLoop()

	if bw.logger != nil {
		bw.logger.Info("Question bank watcher started",
			"file", bw.path,
			"debounce_delay", bw.debounceDelay.String())
	}
	return nil
}

// Stop stops the watcher
func (bw *BankWatcher) Stop() error {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if !bw.running {
		return nil
	}

	close(bw.stopChan)
	if bw.debounceTimer != nil {
		bw.debounceTimer.Stop()
	}
	bw.running = false

	return bw.fsWatcher.Close()
}

// IsRunning reports whether the watcher is active
func (bw *BankWatcher) IsRunning() bool {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	return bw.running
}

func (bw *BankWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-bw.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(bw.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				bw.scheduleReload()
			}
		case err, ok := <-bw.fsWatcher.Errors:
			if !ok {
				return
			}
			if bw.logger != nil {
				bw.logger.LogError(err, "Question bank watcher error", "file", bw.path)
			}
		case <-bw.stopChan:
			return
		}
	}
}

// scheduleReload debounces bursts of file events into a single reload
func (bw *BankWatcher) scheduleReload() {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.debounceTimer != nil {
		bw.debounceTimer.Stop()
	}
	bw.debounceTimer = time.AfterFunc(bw.debounceDelay, bw.reload)
}

func (bw *BankWatcher) reload() {
	banks, err := LoadBanksFile(bw.path)
	if err != nil {
		if bw.logger != nil {
			bw.logger.LogError(err, "Failed to reload question banks", "file", bw.path)
		}
		return
	}

	if bw.logger != nil {
		bw.logger.Info("Question banks reloaded", "file", bw.path)
	}
	if bw.onReload != nil {
		bw.onReload(banks)
	}
}
