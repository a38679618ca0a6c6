package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWriteByte(t *testing.T) {
	r := NewRAM()
	r.Write(0x1234, 0x42)
	assert.Equal(t, uint8(0x42), r.Read(0x1234))
}

func TestWriteWordLittleEndian(t *testing.T) {
	r := NewRAM()
	r.WriteWord(0x0000, 0x04D2)
	assert.Equal(t, uint8(0xD2), r.Read(0x0000), "low byte at lower address")
	assert.Equal(t, uint8(0x04), r.Read(0x0001), "high byte at higher address")
}

func TestReadWriteWordRoundTrip(t *testing.T) {
	r := NewRAM()
	r.WriteWord(0x2000, 0xBEEF)
	assert.Equal(t, uint16(0xBEEF), r.ReadWord(0x2000))
}

func TestLoadCopiesAtBase(t *testing.T) {
	r := NewRAM()
	prog := []byte{0xA9, 0x05, 0x00}
	r.Load(prog, 0x8000)
	assert.Equal(t, prog, []byte{r.Read(0x8000), r.Read(0x8001), r.Read(0x8002)})
}

func TestPowerOnZeroesMemory(t *testing.T) {
	r := NewRAM()
	r.Write(0x0042, 0xFF)
	r.PowerOn()
	assert.Equal(t, uint8(0x00), r.Read(0x0042))
}
