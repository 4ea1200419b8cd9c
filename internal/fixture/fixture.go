// Package fixture reads and writes the binary data/truth file pair used by
// the dataset generator and the validator tool. Both formats are header
// -less and fixed-width, matching the reference tooling's fixture layout:
// a data file is contiguous (y uint32, x uint32) pairs; a truth file is
// contiguous int32 labels.
package fixture

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/klauspost/compress/zstd"

	"github.com/gridcluster/dbscan"
)

// zstdMagic prefixes a compressed fixture so LoadData/LoadTruth can tell a
// plain file from a zstd-wrapped one without a separate flag.
var zstdMagic = [4]byte{'z', 's', 'd', '1'}

// LoadData reads a data fixture: n points, each a (y, x) uint32 pair.
func LoadData(path string) ([]dbscan.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: open data file: %w", err)
	}
	defer f.Close()

	r, cleanup, err := openEnvelope(f)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return readPoints(r)
}

// LoadDataMMap behaves like LoadData but memory-maps the file instead of
// streaming it, for fixtures too large to comfortably read through a
// buffered reader in one pass. It does not support the zstd envelope: a
// compressed fixture has no fixed record layout to map directly.
func LoadDataMMap(path string) ([]dbscan.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: open data file: %w", err)
	}
	defer f.Close()

	region, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("fixture: mmap data file: %w", err)
	}
	defer region.Unmap()

	if len(region)%8 != 0 {
		return nil, fmt.Errorf("fixture: data file length %d is not a multiple of 8", len(region))
	}

	n := len(region) / 8
	points := make([]dbscan.Point, n)
	for i := 0; i < n; i++ {
		off := i * 8
		y := binary.LittleEndian.Uint32(region[off : off+4])
		x := binary.LittleEndian.Uint32(region[off+4 : off+8])
		points[i] = dbscan.Point{X: x, Y: y}
	}
	return points, nil
}

// SaveData writes points as a plain (uncompressed) data fixture.
func SaveData(path string, points []dbscan.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fixture: create data file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, 1<<20)
	if err := writePoints(w, points); err != nil {
		return err
	}
	return w.Flush()
}

// SaveDataCompressed writes points behind a zstd envelope, grounded on the
// same compressed-container pattern used for large point-cloud fixtures
// elsewhere in this lineage.
func SaveDataCompressed(path string, points []dbscan.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fixture: create data file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(zstdMagic[:]); err != nil {
		return fmt.Errorf("fixture: write envelope magic: %w", err)
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("fixture: create zstd writer: %w", err)
	}
	defer enc.Close()

	if err := writePoints(enc, points); err != nil {
		return err
	}
	return enc.Close()
}

// LoadTruth reads a truth fixture: n int32 labels.
func LoadTruth(path string) ([]int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: open truth file: %w", err)
	}
	defer f.Close()

	r, cleanup, err := openEnvelope(f)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return readLabels(r)
}

// SaveTruth writes labels as a plain (uncompressed) truth fixture.
func SaveTruth(path string, labels []int32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fixture: create truth file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, 1<<20)
	if err := writeLabels(w, labels); err != nil {
		return err
	}
	return w.Flush()
}

// openEnvelope peeks at the first four bytes of f to decide whether it
// holds a zstd-wrapped fixture or a plain one, returning a reader
// positioned right after any envelope header.
func openEnvelope(f *os.File) (io.Reader, func(), error) {
	br := bufio.NewReaderSize(f, 1<<20)
	peek, err := br.Peek(4)
	if err == nil && [4]byte{peek[0], peek[1], peek[2], peek[3]} == zstdMagic {
		if _, err := br.Discard(4); err != nil {
			return nil, func() {}, fmt.Errorf("fixture: discard envelope magic: %w", err)
		}
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, func() {}, fmt.Errorf("fixture: create zstd reader: %w", err)
		}
		return dec, dec.Close, nil
	}
	return br, func() {}, nil
}

func readPoints(r io.Reader) ([]dbscan.Point, error) {
	var points []dbscan.Point
	var buf [8]byte
	for {
		_, err := io.ReadFull(r, buf[:])
		if err == io.EOF {
			return points, nil
		}
		if err != nil {
			return nil, fmt.Errorf("fixture: read point record: %w", err)
		}
		y := binary.LittleEndian.Uint32(buf[0:4])
		x := binary.LittleEndian.Uint32(buf[4:8])
		points = append(points, dbscan.Point{X: x, Y: y})
	}
}

func writePoints(w io.Writer, points []dbscan.Point) error {
	var buf [8]byte
	for _, p := range points {
		binary.LittleEndian.PutUint32(buf[0:4], p.Y)
		binary.LittleEndian.PutUint32(buf[4:8], p.X)
		if _, err := w.Write(buf[:]); err != nil {
			return fmt.Errorf("fixture: write point record: %w", err)
		}
	}
	return nil
}

func readLabels(r io.Reader) ([]int32, error) {
	var labels []int32
	var buf [4]byte
	for {
		_, err := io.ReadFull(r, buf[:])
		if err == io.EOF {
			return labels, nil
		}
		if err != nil {
			return nil, fmt.Errorf("fixture: read label: %w", err)
		}
		labels = append(labels, int32(binary.LittleEndian.Uint32(buf[:])))
	}
}

func writeLabels(w io.Writer, labels []int32) error {
	var buf [4]byte
	for _, label := range labels {
		binary.LittleEndian.PutUint32(buf[:], uint32(label))
		if _, err := w.Write(buf[:]); err != nil {
			return fmt.Errorf("fixture: write label: %w", err)
		}
	}
	return nil
}
