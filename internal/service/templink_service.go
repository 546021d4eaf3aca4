package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const cleanupInterval = time.Hour

// TempLinkService stores rendered documents on disk under random names so
// they can be fetched once through a short-lived public URL. A background
// janitor removes files older than the configured TTL.
//
// Call Stop() during graceful shutdown.
type TempLinkService struct {
	dir      string
	ttl      time.Duration
	basePath string
	log      *logrus.Logger

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

func NewTempLinkService(dir string, ttl time.Duration, basePath string, log *logrus.Logger) (*TempLinkService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	svc := &TempLinkService{
		dir:      dir,
		ttl:      ttl,
		basePath: basePath,
		log:      log,
		stopChan: make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.cleanupLoop()

	return svc, nil
}

// Stop shuts the janitor down. Safe to call multiple times.
func (s *TempLinkService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
	}
}

// Put stores data under a random file name and returns the public URL path
// together with its expiry time.
func (s *TempLinkService) Put(prescriptionID string, data []byte) (string, time.Time, error) {
	tempID := uuid.New().String()
	fileName := fmt.Sprintf("prescription-%s-%s.pdf", prescriptionID, tempID)

	if err := os.WriteFile(filepath.Join(s.dir, fileName), data, 0o644); err != nil {
		return "", time.Time{}, fmt.Errorf("write temp file: %w", err)
	}

	return s.basePath + "/" + fileName, time.Now().Add(s.ttl), nil
}

// Dir returns the directory served for downloads
func (s *TempLinkService) Dir() string {
	return s.dir
}

func (s *TempLinkService) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.removeExpired()
		case <-s.stopChan:
			return
		}
	}
}

func (s *TempLinkService) removeExpired() {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.log.Warnf("Failed to read temp dir %s: %+v", s.dir, err)
		return
	}

	cutoff := time.Now().Add(-s.ttl)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
				s.log.Warnf("Failed to remove expired temp file %s: %+v", entry.Name(), err)
				continue
			}
			removed++
		}
	}

	if removed > 0 {
		s.log.Infof("Temp link cleanup removed %d expired files", removed)
	}
}
