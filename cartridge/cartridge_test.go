package cartridge

import "testing"

func buildINES(prgChunks, chrChunks, mapper1, mapper2 uint8, prg, chr []byte) []byte {
	header := []byte{'N', 'E', 'S', 0x1A, prgChunks, chrChunks, mapper1, mapper2, 0, 0, 0, 0, 0, 0, 0, 0}
	out := append([]byte{}, header...)
	out = append(out, prg...)
	out = append(out, chr...)
	return out
}

func TestLoadRawWrapsAsPRGROM(t *testing.T) {
	c := LoadRaw([]byte{0xA9, 0x00, 0x00})
	if len(c.PRGROM) != 3 {
		t.Fatalf("PRGROM length = %d, want 3", len(c.PRGROM))
	}
}

func TestParseINESDecodesHeaderAndBanks(t *testing.T) {
	prg := make([]byte, prgBankSize)
	prg[0] = 0xA9
	chr := make([]byte, chrBankSize)
	data := buildINES(1, 1, 0x10, 0x00, prg, chr)

	c, err := ParseINES(data)
	if err != nil {
		t.Fatalf("ParseINES: %v", err)
	}
	if len(c.PRGROM) != prgBankSize {
		t.Errorf("PRGROM length = %d, want %d", len(c.PRGROM), prgBankSize)
	}
	if len(c.CHRROM) != chrBankSize {
		t.Errorf("CHRROM length = %d, want %d", len(c.CHRROM), chrBankSize)
	}
	if c.Mapper != 1 {
		t.Errorf("Mapper = %d, want 1", c.Mapper)
	}
}

func TestParseINESSkipsTrainer(t *testing.T) {
	prg := make([]byte, prgBankSize)
	prg[0] = 0x42
	trainer := make([]byte, trainerSize)
	data := buildINES(1, 0, 0x04, 0x00, append(trainer, prg...), nil)

	c, err := ParseINES(data)
	if err != nil {
		t.Fatalf("ParseINES: %v", err)
	}
	if c.PRGROM[0] != 0x42 {
		t.Errorf("PRGROM[0] = 0x%02X, want 0x42 (trainer should have been skipped)", c.PRGROM[0])
	}
}

func TestParseINESRejectsBadMagic(t *testing.T) {
	data := make([]byte, 32)
	copy(data, []byte{'N', 'O', 'P', 'E'})
	if _, err := ParseINES(data); err == nil {
		t.Fatal("expected an error for bad magic")
	}
}

func TestParseINESRejectsTruncatedFile(t *testing.T) {
	if _, err := ParseINES([]byte{0x4E}); err == nil {
		t.Fatal("expected an error for a file too small to hold a header")
	}
}

func TestParseINESRejectsUndersizedPRGROM(t *testing.T) {
	data := buildINES(2, 0, 0, 0, make([]byte, prgBankSize), nil) // claims 2 banks, has 1
	if _, err := ParseINES(data); err == nil {
		t.Fatal("expected an error when PRG-ROM data is shorter than the header claims")
	}
}
