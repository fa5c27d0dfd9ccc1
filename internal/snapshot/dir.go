package snapshot

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"time"

	"coinvalue/internal/coin"
	"coinvalue/internal/logger"
)

// DirStore reads price tables laid out as <root>/<YYYY-MM-DD>/<Series>.csv.
type DirStore struct {
	fsys fs.FS
	log  *logger.Log
}

// DirStoreOption is a configuration option for DirStore.
type DirStoreOption func(*DirStore)

// WithDirLogger sets the logger.
func WithDirLogger(log *logger.Log) DirStoreOption {
	return func(d *DirStore) {
		d.log = log
	}
}

// NewDirStore returns a store rooted at dir.
func NewDirStore(dir string, options ...DirStoreOption) *DirStore {
	return NewFSStore(os.DirFS(dir), options...)
}

// NewFSStore returns a store over fsys.
func NewFSStore(fsys fs.FS, options ...DirStoreOption) *DirStore {
	d := &DirStore{fsys: fsys, log: logger.GetLogger()}
	for _, option := range options {
		option(d)
	}
	return d
}

// Dates implements Source.
func (d *DirStore) Dates(ctx context.Context) ([]time.Time, error) {
	keys, err := d.keys()
	if err != nil {
		return nil, err
	}
	return Dates(keys), nil
}

// Load implements Source.
func (d *DirStore) Load(ctx context.Context, asOf time.Time) ([]coin.SeriesSnapshot, error) {
	keys, err := d.keys()
	if err != nil {
		return nil, err
	}
	picked := Select(keys, asOf)
	out := make([]coin.SeriesSnapshot, 0, len(picked))
	for _, k := range picked {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		snap, err := d.read(k)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

func (d *DirStore) keys() ([]Key, error) {
	dirs, err := fs.ReadDir(d.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("list price tables: %w", err)
	}
	var keys []Key
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		files, err := fs.ReadDir(d.fsys, dir.Name())
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", dir.Name(), err)
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			if k, ok := ParseKey(path.Join(dir.Name(), f.Name())); ok {
				keys = append(keys, k)
			}
		}
	}
	return keys, nil
}

func (d *DirStore) read(k Key) (coin.SeriesSnapshot, error) {
	f, err := d.fsys.Open(k.Raw)
	if err != nil {
		return coin.SeriesSnapshot{}, fmt.Errorf("open %s: %w", k.Raw, err)
	}
	defer f.Close()
	return decodeCSV(f, k.Series, k.Date, d.log)
}
