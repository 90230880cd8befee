// Package proto implements packed Int32 encoding: little-endian signed
// 32-bit values without header or length prefix.
//
// On little-endian hosts this is exactly the memory layout of IntArray
// members, so packed data can back a descriptor as is.
package proto

import "encoding/binary"

// Packed values are Little Endian.
var bin = binary.LittleEndian
