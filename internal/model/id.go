package model

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// ActorSystem is the actor id recorded for kernel-originated audit entries,
// such as TTL expiry sweeps.
const ActorSystem = "SYSTEM"

// NewPdoID generates a PDO identifier.
func NewPdoID() string {
	return prefixedID("pdo", 12)
}

func prefixedID(prefix string, hexLen int) string {
	b := make([]byte, (hexLen+1)/2)
	if _, err := rand.Read(b); err != nil {
		// Fallback to timestamp-based ID if crypto/rand fails
		return fmt.Sprintf("%s-%x", prefix, time.Now().UnixNano())
	}
	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(b)[:hexLen])
}
