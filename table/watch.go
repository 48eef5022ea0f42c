package table

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/firetune/AtomicWeights/log"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads the provider whenever its CSV file changes on disk, so a
// rebuilt isotopes.csv takes effect without a service restart. Events are
// debounced because editors and the CSV builder write in bursts.
// The returned func stops the watcher.
func (p *Provider) Watch() (func(), error) {
	if p.csvPath == "" {
		return nil, errors.New("no csv path configured to watch")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory; the file itself may be replaced by rename.
	if err := fw.Add(filepath.Dir(p.csvPath)); err != nil {
		fw.Close()
		return nil, err
	}

	done := make(chan struct{})
	go p.watchLoop(fw, done)

	return func() {
		fw.Close()
		<-done
	}, nil
}

func (p *Provider) watchLoop(fw *fsnotify.Watcher, done chan struct{}) {
	defer close(done)

	const debounce = 100 * time.Millisecond
	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	target := filepath.Clean(p.csvPath)

	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < debounce {
				continue
			}
			pending = time.Time{}

			if err := p.Reload(); err != nil {
				log.Println("Error reloading isotope table from", p.csvPath, ":", err)
				continue
			}
			log.Println("isotope table reloaded from", p.csvPath)

		case _, ok := <-fw.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the old snapshot stays active.
		}
	}
}
