package pdb

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/rclausecker/npuzzle/index"
	"github.com/rclausecker/npuzzle/internal/platform"
	"github.com/rclausecker/npuzzle/pdberr"
)

// zeroPad is long enough to cover the largest possible gap between a
// table's logical size and its 4-byte-aligned padded size (at most 3
// bytes).
var zeroPad [4]byte

// Store writes pdb to path as a raw byte sequence: every maprank table in
// ascending order, back to back, each table zero-padded up to a multiple
// of 4 bytes so Open can carve the file into 4-byte-aligned regions. The
// resulting file size always equals Size(pdb.Aux).
func Store(path string, pdb *PDB) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pdb: create %s: %w", path, err)
	}

	total := Size(pdb.Aux)
	if err := platform.Fallocate(file, int64(total)); err != nil {
		return errors.Join(fmt.Errorf("pdb: preallocate %s: %w", path, err), file.Close())
	}

	for m, t := range pdb.Tables {
		if _, err := file.Write(t.Bytes()); err != nil {
			return errors.Join(fmt.Errorf("pdb: write %s: %w", path, err), file.Close())
		}
		if pad := paddedTableSize(pdb.Aux, uint64(m)) - tableSize(pdb.Aux, uint64(m)); pad > 0 {
			if _, err := file.Write(zeroPad[:pad]); err != nil {
				return errors.Join(fmt.Errorf("pdb: write %s: %w", path, err), file.Close())
			}
		}
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("pdb: close %s: %w", path, err)
	}
	return nil
}

// MapMode selects how Open maps a PDB file into memory.
type MapMode int

const (
	// ReadOnly maps the file read-only; writes are impossible. Used by
	// search and verification.
	ReadOnly MapMode = iota
	// ReadWritePrivate maps the file copy-on-write: writes are visible
	// to the calling process only and never reach disk.
	ReadWritePrivate
	// Shared maps the file read-write, shared with the filesystem, so
	// atomic writes through the PDB's cells land directly on the backing
	// file. Generate does not use it: it always builds an owned PDB.
	Shared
)

// Open memory-maps the PDB file at path for aux, in the requested mode.
// The file must be exactly Size(aux) bytes; any other length is reported
// as pdberr.ErrMalformed. The returned PDB's Close unmaps and closes the
// file.
func Open(path string, aux *index.Aux, mode MapMode) (*PDB, error) {
	flag := os.O_RDONLY
	mmapFlag := mmap.RDONLY
	switch mode {
	case ReadWritePrivate:
		flag = os.O_RDONLY
		mmapFlag = mmap.COPY
	case Shared:
		flag = os.O_RDWR
		mmapFlag = mmap.RDWR
	}

	file, err := os.OpenFile(path, flag, 0)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pdberr.ErrNotFound
		}
		return nil, fmt.Errorf("pdb: open %s: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		return nil, errors.Join(fmt.Errorf("pdb: stat %s: %w", path, err), file.Close())
	}

	want := Size(aux)
	if uint64(info.Size()) != want {
		return nil, errors.Join(
			fmt.Errorf("%w: %s is %d bytes, want %d for this tile set", pdberr.ErrMalformed, path, info.Size(), want),
			file.Close(),
		)
	}

	region, err := mmap.Map(file, mmapFlag, 0)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("pdb: mmap %s: %w", path, err), file.Close())
	}
	if mode == ReadWritePrivate {
		platform.PrefaultRegion(region)
	}

	tables := make([]*cells, aux.NMapRank)
	var off uint64
	for m := uint64(0); m < aux.NMapRank; m++ {
		logical := tableSize(aux, m)
		padded := paddedTableSize(aux, m)
		tables[m] = wrapMappedCells(region[off:off+padded], int(logical))
		off += padded
	}

	pdb := &PDB{
		Aux:     aux,
		Tables:  tables,
		Backing: Mapped,
		file:    file,
		closer: func() error {
			return errors.Join(region.Unmap(), file.Close())
		},
	}
	return pdb, nil
}

var _ io.Closer = (*PDB)(nil)
