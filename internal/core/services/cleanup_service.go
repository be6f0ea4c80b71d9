package services

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"pickmymenu-api/internal/config"

	"github.com/robfig/cron/v3"
)

// staleAfter is how long a staging file may sit before it is considered
// abandoned. Normal uploads remove their staging copy within the request.
const staleAfter = 24 * time.Hour

// CleanupService sweeps image staging files left behind when the process
// died between staging and upload cleanup.
type CleanupService struct {
	cron *cron.Cron
	cfg  *config.Config
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(cfg *config.Config) *CleanupService {
	return &CleanupService{
		cron: cron.New(),
		cfg:  cfg,
	}
}

// Start schedules the daily sweep (03:00)
func (s *CleanupService) Start() {
	_, err := s.cron.AddFunc("0 3 * * *", s.sweepStagingDir)
	if err != nil {
		log.Printf("⚠️ Failed to schedule staging sweep: %v", err)
		return
	}
	s.cron.Start()
	log.Println("✅ Staging cleanup cron started (daily 03:00)")
}

// Stop stops the cron scheduler
func (s *CleanupService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Staging cleanup cron stopped")
}

// sweepStagingDir removes stale files from the upload staging directory
func (s *CleanupService) sweepStagingDir() {
	entries, err := os.ReadDir(s.cfg.Upload.StagingDir)
	if err != nil {
		log.Printf("⚠️ Staging sweep failed to read dir: %v", err)
		return
	}

	removed := 0
	cutoff := time.Now().Add(-staleAfter)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(s.cfg.Upload.StagingDir, entry.Name())
		if err := os.Remove(path); err == nil {
			removed++
		}
	}

	if removed > 0 {
		log.Printf("🧹 Staging sweep removed %d stale files", removed)
	}
}
