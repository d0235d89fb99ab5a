package jobs

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// maxUploadAge is how long an unreferenced upload may linger before the
// sweeper deletes it. Fresh files are kept so an in-flight delivery is
// never raced.
const maxUploadAge = 24 * time.Hour

// UploadSweeperJob periodically deletes proof-of-delivery files that no
// order references anymore, for example after a rejected transition or a
// deleted order.
type UploadSweeperJob struct {
	db     *gorm.DB
	dir    string
	cron   *cron.Cron
	logger *slog.Logger
}

// NewUploadSweeperJob creates a job sweeping the upload directory.
func NewUploadSweeperJob(db *gorm.DB, dir string, logger *slog.Logger) *UploadSweeperJob {
	return &UploadSweeperJob{
		db:     db,
		dir:    dir,
		cron:   cron.New(),
		logger: logger.With("component", "upload_sweeper_job"),
	}
}

// Start begins the hourly sweep.
func (j *UploadSweeperJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		removed, sweepErr := j.sweep(ctx)
		if sweepErr != nil {
			j.logger.ErrorContext(ctx, "Upload sweep failed", "error", sweepErr)
			return
		}
		if removed > 0 {
			j.logger.InfoContext(ctx, "Upload sweep removed stale files", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Upload sweeper job started (running hourly)")
	return nil
}

// Stop stops the sweeper.
func (j *UploadSweeperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Upload sweeper job stopped")
}

func (j *UploadSweeperJob) sweep(ctx context.Context) (int, error) {
	rows, err := j.db.WithContext(ctx).Raw(`
		SELECT delivery_photo FROM orders WHERE delivery_photo <> ''
	`).Rows()
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	referenced := make(map[string]struct{})
	for rows.Next() {
		var photo string
		if scanErr := rows.Scan(&photo); scanErr != nil {
			return 0, scanErr
		}
		referenced[photo] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return 0, err
	}

	return pruneStaleUploads(j.dir, referenced, maxUploadAge)
}

// pruneStaleUploads deletes regular files in dir that are older than maxAge
// and absent from the referenced set. Returns the number of removed files.
func pruneStaleUploads(dir string, referenced map[string]struct{}, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := referenced[entry.Name()]; ok {
			continue
		}

		info, infoErr := entry.Info()
		if infoErr != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		if rmErr := os.Remove(filepath.Join(dir, entry.Name())); rmErr == nil {
			removed++
		}
	}

	return removed, nil
}
