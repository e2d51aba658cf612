// Package loader implements the ELF loader: given an executable path, it
// produces a byte image suitable to initialize memory.Memory, the entry
// PC, and an initial stack pointer value, via the standard library's
// debug/elf.
package loader

import (
	"debug/elf"
	"errors"
	"fmt"
)

// ErrLoaderFailure wraps any failure to open or parse the ELF file. It is
// fatal at construction.
var ErrLoaderFailure = errors.New("loader: failed to load ELF executable")

// DefaultStackSize sets the initial stack pointer: it is always
// memorySize - DefaultStackSize, so the stack grows down from near the top
// of the image. The ELF is not consulted for a stack top.
const DefaultStackSize = 4096

// Image is the loaded program: a flat, memory-sized byte image starting at
// address 0 into which the file bytes of every PT_LOAD segment are copied
// at the segment's virtual address, plus entry PC and initial stack
// pointer.
type Image struct {
	Data     []byte
	EntryPC  uint32
	StackPtr uint32
}

// Load reads the ELF executable at path and returns its Image. Any error
// is a LoaderFailure: fatal, surfaced before the first simulator step.
func Load(path string, memorySize int) (*Image, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLoaderFailure, err)
	}
	defer f.Close()

	if f.Class != elf.ELFCLASS32 {
		return nil, fmt.Errorf("%w: expected a 32-bit ELF", ErrLoaderFailure)
	}

	data := make([]byte, memorySize)
	loaded := false
	for _, prog := range f.Progs {
		if prog.Type != elf.PT_LOAD {
			continue
		}
		loaded = true
		end := int(prog.Vaddr) + int(prog.Filesz)
		if end > memorySize {
			return nil, fmt.Errorf("%w: segment at %#x..%#x exceeds memory size %d",
				ErrLoaderFailure, prog.Vaddr, end, memorySize)
		}
		section := make([]byte, prog.Filesz)
		if _, err := prog.ReadAt(section, 0); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrLoaderFailure, err)
		}
		copy(data[prog.Vaddr:], section)
	}
	if !loaded {
		return nil, fmt.Errorf("%w: no PT_LOAD segment found", ErrLoaderFailure)
	}

	stackPtr := uint32(memorySize - DefaultStackSize)
	return &Image{
		Data:     data,
		EntryPC:  uint32(f.Entry),
		StackPtr: stackPtr,
	}, nil
}
