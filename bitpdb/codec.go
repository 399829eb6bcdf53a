package bitpdb

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Codec encodes and decodes a bit-packed PDB's raw byte stream for
// storage, pluggable so a compressed on-disk variant can be swapped in
// without touching the bit-packing logic above.
type Codec interface {
	Encode(w io.Writer, data []byte) error
	Decode(r io.Reader) ([]byte, error)
}

// Raw is the identity codec, used for uncompressed ".bpdb" files.
var Raw Codec = rawCodec{}

// Zstd is the zstd-compressed codec, used for ".bpdb.zst" files.
var Zstd Codec = zstdCodec{}

type rawCodec struct{}

func (rawCodec) Encode(w io.Writer, data []byte) error {
	_, err := w.Write(data)
	return err
}

func (rawCodec) Decode(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}

type zstdCodec struct{}

func (zstdCodec) Encode(w io.Writer, data []byte) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func (zstdCodec) Decode(r io.Reader) ([]byte, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(dec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
