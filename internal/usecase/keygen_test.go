package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRecordKeyFormat(t *testing.T) {
	require.Regexp(t, `^PAT[0-9A-F]{8}$`, generateRecordKey(patientKeyPrefix))
	require.Regexp(t, `^RX[0-9A-F]{8}$`, generateRecordKey(prescriptionKeyPrefix))
	require.Regexp(t, `^CERT[0-9A-F]{8}$`, generateRecordKey(certificateKeyPrefix))
}

func TestGenerateRecordKeyUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		key := generateRecordKey(prescriptionKeyPrefix)
		require.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}
