package loader_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gkorepanov/riscv-in-nutshell/pkg/loader"
)

const (
	elfEntryVaddr = 0x1000
	elfMachine    = 243 // EM_RISCV
)

// buildMinimalELF32 hand-assembles the smallest ELF32 executable the loader
// accepts: one PT_LOAD segment carrying a single 4-byte word, no sections.
func buildMinimalELF32(t *testing.T, payload []byte) string {
	t.Helper()

	const (
		ehsize = 52
		phsize = 32
	)

	var buf bytes.Buffer

	ident := make([]byte, 16)
	copy(ident, []byte{0x7f, 'E', 'L', 'F', 1, 1, 1, 0})
	buf.Write(ident)

	write16 := func(v uint16) { binary.Write(&buf, binary.LittleEndian, v) }
	write32 := func(v uint32) { binary.Write(&buf, binary.LittleEndian, v) }

	write16(2)             // e_type = ET_EXEC
	write16(elfMachine)     // e_machine
	write32(1)              // e_version
	write32(elfEntryVaddr)  // e_entry
	write32(ehsize)         // e_phoff
	write32(0)              // e_shoff
	write32(0)              // e_flags
	write16(ehsize)         // e_ehsize
	write16(phsize)         // e_phentsize
	write16(1)              // e_phnum
	write16(0)              // e_shentsize
	write16(0)              // e_shnum
	write16(0)              // e_shstrndx

	offset := uint32(ehsize + phsize)
	write32(1)                 // p_type = PT_LOAD
	write32(offset)            // p_offset
	write32(elfEntryVaddr)     // p_vaddr
	write32(elfEntryVaddr)     // p_paddr
	write32(uint32(len(payload))) // p_filesz
	write32(uint32(len(payload))) // p_memsz
	write32(5)                 // p_flags = R+X
	write32(4096)               // p_align

	buf.Write(payload)

	path := filepath.Join(t.TempDir(), "image.elf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestLoadPlacesSegmentAndReportsEntry(t *testing.T) {
	payload := []byte{0x13, 0x00, 0x00, 0x00} // addi x0, x0, 0
	path := buildMinimalELF32(t, payload)

	const memorySize = 1 << 16
	img, err := loader.Load(path, memorySize)
	require.NoError(t, err)

	require.EqualValues(t, elfEntryVaddr, img.EntryPC)
	require.EqualValues(t, memorySize-loader.DefaultStackSize, img.StackPtr)
	require.Equal(t, payload, img.Data[elfEntryVaddr:elfEntryVaddr+4])
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.elf"), 1<<16)
	require.ErrorIs(t, err, loader.ErrLoaderFailure)
}

func TestLoadRejectsSegmentBeyondMemory(t *testing.T) {
	payload := []byte{0x13, 0x00, 0x00, 0x00}
	path := buildMinimalELF32(t, payload)

	_, err := loader.Load(path, elfEntryVaddr) // too small to hold the segment
	require.ErrorIs(t, err, loader.ErrLoaderFailure)
}
