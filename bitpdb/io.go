package bitpdb

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/rclausecker/npuzzle/index"
	"github.com/rclausecker/npuzzle/pdberr"
)

// Store writes t through codec to path: a little-endian uint64 table
// count, then for each table a little-endian uint64 byte length followed
// by its (possibly compressed) bytes.
func Store(path string, t *Table, codec Codec) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bitpdb: create %s: %w", path, err)
	}
	defer file.Close()

	if err := binary.Write(file, binary.LittleEndian, uint64(len(t.Tables))); err != nil {
		return fmt.Errorf("bitpdb: write %s: %w", path, err)
	}

	for _, table := range t.Tables {
		var buf []byte
		w := &byteSliceWriter{buf: &buf}
		if err := codec.Encode(w, table); err != nil {
			return fmt.Errorf("bitpdb: encode %s: %w", path, err)
		}
		if err := binary.Write(file, binary.LittleEndian, uint64(len(buf))); err != nil {
			return fmt.Errorf("bitpdb: write %s: %w", path, err)
		}
		if _, err := file.Write(buf); err != nil {
			return fmt.Errorf("bitpdb: write %s: %w", path, err)
		}
	}
	return nil
}

// Load reads a Table previously written by Store, through codec, for the
// given aux.
func Load(path string, aux *index.Aux, codec Codec) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pdberr.ErrNotFound
		}
		return nil, fmt.Errorf("bitpdb: open %s: %w", path, err)
	}
	defer file.Close()

	var count uint64
	if err := binary.Read(file, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", pdberr.ErrMalformed, path, err)
	}
	if count != aux.NMapRank {
		return nil, fmt.Errorf("%w: %s has %d tables, want %d", pdberr.ErrMalformed, path, count, aux.NMapRank)
	}

	t := &Table{Aux: aux, Tables: make([][]byte, count)}
	for i := uint64(0); i < count; i++ {
		var size uint64
		if err := binary.Read(file, binary.LittleEndian, &size); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", pdberr.ErrMalformed, path, err)
		}
		data, err := codec.Decode(io.LimitReader(file, int64(size)))
		if err != nil {
			return nil, fmt.Errorf("bitpdb: decode %s: %w", path, err)
		}
		t.Tables[i] = data
	}
	return t, nil
}

// byteSliceWriter is an io.Writer that appends to a *[]byte, used so
// Codec.Encode can be driven without allocating a bytes.Buffer for the
// raw (identity) codec's common case.
type byteSliceWriter struct {
	buf *[]byte
}

func (w *byteSliceWriter) Write(p []byte) (int, error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}
