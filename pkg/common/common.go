// Package common defines the fixed-width numeric types shared by every
// other package in the simulator: memory words, bytes, and byte addresses.
package common

// Word is a 32-bit memory/register value.
type Word = uint32

// Byte is a single memory byte.
type Byte = uint8

// Addr is a 32-bit byte address.
type Addr = uint32

// NoVal32 is the sentinel "no value" constant used for fields that are
// absent or not-yet-computed, e.g. a flush target before MEM asserts one.
const NoVal32 Word = 0xffffffff
