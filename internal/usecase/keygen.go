package usecase

import (
	"crypto/rand"
	"fmt"
)

// Human-readable key prefixes
const (
	patientKeyPrefix      = "PAT"
	prescriptionKeyPrefix = "RX"
	certificateKeyPrefix  = "CERT"
)

// generateRecordKey builds a human-readable record key: prefix followed by
// 8 uppercase hex characters from a CSPRNG. A random suffix keeps concurrent
// requests from colliding the way clock-derived suffixes can.
func generateRecordKey(prefix string) string {
	randomBytes := make([]byte, 4)
	rand.Read(randomBytes)
	return fmt.Sprintf("%s%X", prefix, randomBytes)
}
