package fsm

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/rclausecker/npuzzle/pdberr"
	"github.com/rclausecker/npuzzle/puzzle"
)

// header is one (length, offset) pair, both counted in rows rather than
// bytes, for one zero position's slice into the flattened row table.
type header struct {
	Length uint32
	Offset uint32
}

// Store writes f in the on-disk format: a fixed 25-entry (length,
// offset) header, followed by every position's rows back to back in
// header order.
func (f *FSM) Store(w io.Writer) error {
	var hdr [puzzle.Size]header
	var rows []Row

	for pos := 0; pos < puzzle.Size; pos++ {
		hdr[pos] = header{
			Length: uint32(len(f.Tables[pos])),
			Offset: uint32(len(rows)),
		}
		rows = append(rows, f.Tables[pos]...)
	}

	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("fsm: write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, rows); err != nil {
		return fmt.Errorf("fsm: write tables: %w", err)
	}
	return nil
}

// Load reads an FSM previously written by Store.
func Load(r io.Reader) (*FSM, error) {
	var hdr [puzzle.Size]header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: fsm header: %v", pdberr.ErrMalformed, err)
	}

	var total uint32
	for _, h := range hdr {
		if end := h.Offset + h.Length; end > total {
			total = end
		}
	}

	rows := make([]Row, total)
	if err := binary.Read(r, binary.LittleEndian, rows); err != nil {
		return nil, fmt.Errorf("%w: fsm tables: %v", pdberr.ErrMalformed, err)
	}

	f := &FSM{}
	for pos, h := range hdr {
		f.Tables[pos] = rows[h.Offset : h.Offset+h.Length]
	}
	return f, nil
}
