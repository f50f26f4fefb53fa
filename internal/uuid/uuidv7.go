// Package uuid generates time-ordered identifiers for ledger records.
package uuid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	googleuuid "github.com/google/uuid"
)

// New generates a new UUIDv7 based on the current timestamp. UUIDv7 is
// time-ordered, which keeps index pages warm when used as a record key,
// and is never reused even after the record is deleted.
func New() string {
	var uuid [16]byte

	timestamp := uint64(time.Now().UnixMilli())

	// 48-bit millisecond timestamp
	binary.BigEndian.PutUint64(uuid[0:8], timestamp<<16)

	if _, err := rand.Read(uuid[6:]); err != nil {
		// Fall back to a random UUIDv4 if the entropy source fails.
		return googleuuid.New().String()
	}

	// version 7, variant 10
	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		binary.BigEndian.Uint32(uuid[0:4]),
		binary.BigEndian.Uint16(uuid[4:6]),
		binary.BigEndian.Uint16(uuid[6:8]),
		binary.BigEndian.Uint16(uuid[8:10]),
		uuid[10:16],
	)
}
