// Package cache implements the optional set-associative LRU cache
// collaborator sitting behind the memory interface. It is not wired into
// the default pipeline, which talks to memory.Memory directly, but Cache
// satisfies the same surface so it is a valid drop-in when that changes.
package cache

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/gkorepanov/riscv-in-nutshell/pkg/memory"
)

// ErrBusy is returned when a request is started while a prior one is still
// pending, i.e. not yet collected by GetRequestStatus (Read and Write
// always collect their own request before returning).
var ErrBusy = errors.New("cache: request already in flight")

// Cache is a set-associative, write-through, LRU-replaced cache sitting in
// front of a memory.Memory backing store (see DESIGN.md for how its
// per-set eviction bookkeeping is built on hashicorp/golang-lru).
type Cache struct {
	mem      *memory.Memory
	numWays  int
	numSets  int
	lineSize uint32

	sets []*lru.Cache // one per set; key=tag, value=cached line bytes

	hitLatency  int
	missLatency int

	pending *request
}

type request struct {
	remaining int
	result    uint32
	isRead    bool
}

// New returns a Cache of numWays x numSets lines of lineSizeBytes each,
// backed by mem. hitLatency/missLatency are the number of Clock() ticks a
// request takes to complete.
func New(mem *memory.Memory, numWays, numSets int, lineSizeBytes uint32, hitLatency, missLatency int) (*Cache, error) {
	if numWays <= 0 || numSets <= 0 || lineSizeBytes == 0 {
		return nil, fmt.Errorf("cache: invalid geometry %dx%d lines of %d bytes", numWays, numSets, lineSizeBytes)
	}
	sets := make([]*lru.Cache, numSets)
	for i := range sets {
		c, err := lru.New(numWays)
		if err != nil {
			return nil, err
		}
		sets[i] = c
	}
	return &Cache{
		mem:         mem,
		numWays:     numWays,
		numSets:     numSets,
		lineSize:    lineSizeBytes,
		sets:        sets,
		hitLatency:  hitLatency,
		missLatency: missLatency,
	}, nil
}

func (c *Cache) setAndTag(addr uint32) (set int, tag uint32) {
	line := addr / c.lineSize
	return int(line) % c.numSets, line / uint32(c.numSets)
}

func (c *Cache) lineBase(set int, tag uint32) uint32 {
	line := tag*uint32(c.numSets) + uint32(set)
	return line * c.lineSize
}

// lookup returns the cached line bytes for addr and whether it was a hit.
func (c *Cache) lookup(addr uint32) ([]byte, bool) {
	set, tag := c.setAndTag(addr)
	v, ok := c.sets[set].Get(tag)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// fill reads a whole line from the backing store into the cache on a miss.
func (c *Cache) fill(addr uint32) ([]byte, error) {
	set, tag := c.setAndTag(addr)
	base := c.lineBase(set, tag)
	line := make([]byte, c.lineSize)
	for i := uint32(0); i < c.lineSize; i += 4 {
		n := 4
		if i+4 > c.lineSize {
			n = int(c.lineSize - i)
		}
		v, err := c.mem.Read(base+i, n)
		if err != nil {
			return nil, err
		}
		for b := 0; b < n; b++ {
			line[i+uint32(b)] = byte(v >> (8 * uint(b)))
		}
	}
	c.sets[set].Add(tag, line)
	return line, nil
}

// SendReadRequest begins a read of n bytes at addr, to complete after
// Clock() has been called hitLatency or missLatency times depending on
// whether addr's line is resident.
func (c *Cache) SendReadRequest(addr uint32, n int) error {
	if c.pending != nil {
		return ErrBusy
	}
	line, hit := c.lookup(addr)
	if !hit {
		var err error
		line, err = c.fill(addr)
		if err != nil {
			return err
		}
	}
	off := addr % c.lineSize
	var value uint32
	for i := 0; i < n; i++ {
		value |= uint32(line[off+uint32(i)]) << (8 * uint(i))
	}
	latency := c.hitLatency
	if !hit {
		latency = c.missLatency
	}
	c.pending = &request{remaining: latency, result: value, isRead: true}
	return nil
}

// SendWriteRequest begins a write-through write of the low n bytes of
// value to addr: the backing store is updated immediately, and the cached
// line (if resident) is updated to match.
func (c *Cache) SendWriteRequest(value, addr uint32, n int) error {
	if c.pending != nil {
		return ErrBusy
	}
	if err := c.mem.Write(value, addr, n); err != nil {
		return err
	}
	set, tag := c.setAndTag(addr)
	if v, ok := c.sets[set].Get(tag); ok {
		line := v.([]byte)
		off := addr % c.lineSize
		for i := 0; i < n; i++ {
			line[off+uint32(i)] = byte(value >> (8 * uint(i)))
		}
	}
	latency := c.hitLatency
	c.pending = &request{remaining: latency, isRead: false}
	return nil
}

// Clock advances any in-flight request by one cycle.
func (c *Cache) Clock() {
	if c.pending == nil {
		return
	}
	if c.pending.remaining > 0 {
		c.pending.remaining--
	}
}

// Busy reports whether a request is still in flight.
func (c *Cache) Busy() bool {
	return c.pending != nil && c.pending.remaining > 0
}

// RequestResult reports whether the in-flight request has completed and,
// for reads, its data. Calling it clears the completed request.
type RequestResult struct {
	IsReady bool
	Data    uint32
}

// GetRequestStatus returns the status of the in-flight request, clearing
// it once it is ready.
func (c *Cache) GetRequestStatus() RequestResult {
	if c.pending == nil || c.pending.remaining > 0 {
		return RequestResult{}
	}
	result := RequestResult{IsReady: true, Data: c.pending.result}
	c.pending = nil
	return result
}
