// Package cartridge loads a program image for execution: either a flat
// binary with no header, or an iNES ROM image. Only the PRG-ROM bank this
// core can execute is exposed as a first-class field; CHR-ROM is carried
// through for completeness but has no consumer here.
package cartridge

import (
	"bytes"
	"encoding/binary"
	"os"

	"github.com/pkg/errors"
)

const inesMagic = "NES\x1a"
const prgBankSize = 16384
const chrBankSize = 8192
const trainerSize = 512

// Header is the 16-byte iNES header, decoded field-for-field.
type Header struct {
	Name         [4]byte
	PRGROMChunks uint8
	CHRROMChunks uint8
	Mapper1      uint8
	Mapper2      uint8
	PRGRAMSize   uint8
	TVSystem1    uint8
	TVSystem2    uint8
	Unused       [5]byte
}

// Cartridge holds a loaded program image ready to be copied onto a bus.
type Cartridge struct {
	Header Header
	Mapper uint8
	PRGROM []byte
	CHRROM []byte
}

// LoadRaw wraps a headerless binary image as a Cartridge whose entire
// content is PRG-ROM, for hand-assembled test programs and cmd/asmgen
// output.
func LoadRaw(data []byte) *Cartridge {
	return &Cartridge{PRGROM: data}
}

// LoadINES reads path and parses it as an iNES ROM image.
func LoadINES(path string) (*Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cartridge: read %s", path)
	}
	return ParseINES(data)
}

// ParseINES decodes an in-memory iNES image.
func ParseINES(data []byte) (*Cartridge, error) {
	if len(data) < 16 {
		return nil, errors.New("cartridge: file too small to contain an iNES header")
	}

	var header Header
	if err := binary.Read(bytes.NewReader(data[:16]), binary.BigEndian, &header); err != nil {
		return nil, errors.Wrap(err, "cartridge: decode iNES header")
	}
	if string(header.Name[:]) != inesMagic {
		return nil, errors.Errorf("cartridge: bad magic %q, not an iNES image", header.Name[:])
	}

	offset := 16
	if header.Mapper1&0x04 != 0 {
		offset += trainerSize
	}
	mapper := (header.Mapper2 & 0xF0) | (header.Mapper1 >> 4)

	prgSize := int(header.PRGROMChunks) * prgBankSize
	if offset+prgSize > len(data) {
		return nil, errors.New("cartridge: PRG-ROM size exceeds file length")
	}
	prg := data[offset : offset+prgSize]
	offset += prgSize

	var chr []byte
	if chrSize := int(header.CHRROMChunks) * chrBankSize; chrSize > 0 {
		if offset+chrSize > len(data) {
			return nil, errors.New("cartridge: CHR-ROM size exceeds file length")
		}
		chr = data[offset : offset+chrSize]
	}

	return &Cartridge{Header: header, Mapper: mapper, PRGROM: prg, CHRROM: chr}, nil
}
