package table

import (
	"fmt"
	"os"
	"sync"

	"github.com/firetune/AtomicWeights/csv_isotopes"
	"github.com/firetune/AtomicWeights/isotope"
	"github.com/firetune/AtomicWeights/mdb_isotopes"
)

// Source identifies where the active isotope table was loaded from.
type Source string

const (
	SourceCSV  Source = "csv"
	SourceMDB  Source = "mdb"
	SourceSeed Source = "seed"
)

// Provider resolves an isotope table once at startup and hands out immutable
// snapshots of it. Reload swaps in a new snapshot; readers keep whatever
// snapshot they already hold.
type Provider struct {
	csvPath string
	mdbDSN  string

	mu      sync.RWMutex
	current isotope.Table
	source  Source
}

func NewProvider(csvPath, mdbDSN string) *Provider {
	return &Provider{csvPath: csvPath, mdbDSN: mdbDSN}
}

// Load resolves the table: configured CSV file first, then the lab's Access
// database, then the built-in seed. A configured CSV that exists but fails to
// parse is an error, not a fallback; bad data must be fixed, not masked.
func (p *Provider) Load() error {
	tbl, src, err := p.build()
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.current = tbl
	p.source = src
	p.mu.Unlock()
	return nil
}

// Reload rebuilds the table from the same sources. On failure the previous
// snapshot stays active.
func (p *Provider) Reload() error {
	return p.Load()
}

func (p *Provider) build() (isotope.Table, Source, error) {
	if p.csvPath != "" {
		if _, err := os.Stat(p.csvPath); err == nil {
			tbl, err := csv_isotopes.Load(p.csvPath)
			if err != nil {
				return nil, "", err
			}
			if len(tbl) > 0 {
				return tbl, SourceCSV, nil
			}
		}
	}

	if p.mdbDSN != "" {
		tbl, err := mdb_isotopes.Load(p.mdbDSN)
		if err != nil {
			return nil, "", fmt.Errorf("error loading isotope table from %s: %v", p.mdbDSN, err)
		}
		if len(tbl) > 0 {
			return tbl, SourceMDB, nil
		}
	}

	return isotope.Seed(), SourceSeed, nil
}

// Get returns the current table snapshot. The snapshot is never mutated and
// may be shared freely.
func (p *Provider) Get() isotope.Table {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Source reports where the current snapshot came from.
func (p *Provider) Source() Source {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.source
}
