package service

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestTempLinkService(t *testing.T, ttl time.Duration) *TempLinkService {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	svc, err := NewTempLinkService(t.TempDir(), ttl, "/temp", log)
	require.NoError(t, err)
	t.Cleanup(svc.Stop)

	return svc
}

func TestTempLinkPut(t *testing.T) {
	svc := newTestTempLinkService(t, 24*time.Hour)

	url, expiresAt, err := svc.Put("RX1A2B3C4D", []byte("%PDF-1.4 test"))
	require.NoError(t, err)
	require.Regexp(t, `^/temp/prescription-RX1A2B3C4D-[0-9a-f-]+\.pdf$`, url)
	require.True(t, expiresAt.After(time.Now()))

	data, err := os.ReadFile(filepath.Join(svc.Dir(), filepath.Base(url)))
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF-1.4 test"), data)
}

func TestTempLinkCleanupRemovesExpiredFiles(t *testing.T) {
	svc := newTestTempLinkService(t, time.Hour)

	url, _, err := svc.Put("RX1A2B3C4D", []byte("old"))
	require.NoError(t, err)

	stale := filepath.Join(svc.Dir(), filepath.Base(url))
	past := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, past, past))

	freshURL, _, err := svc.Put("RX9E8D7C6B", []byte("fresh"))
	require.NoError(t, err)

	svc.removeExpired()

	_, err = os.Stat(stale)
	require.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(svc.Dir(), filepath.Base(freshURL)))
	require.NoError(t, err)
}
