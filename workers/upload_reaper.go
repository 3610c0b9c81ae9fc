package workers

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/ramzanpremierleague18-max/rpl-tournament/store"
)

// StartUploadReaper runs a periodic sweep of the upload directory, deleting
// files that no registration references once they are older than the
// retention window. These are partial uploads from aborted submissions and
// orphans left by inserts that failed after binding.
func StartUploadReaper(st store.RegistrationStore, dir string, retention, interval time.Duration) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			removed, err := PruneOrphans(st, dir, time.Now().Add(-retention))
			if err != nil {
				log.Printf("[REAPER] sweep failed: %v", err)
				return
			}
			if removed > 0 {
				log.Printf("[REAPER] removed %d orphaned upload(s)", removed)
			}
		}),
	)
	if err != nil {
		return err
	}

	sched.Start()
	return nil
}

// PruneOrphans deletes unreferenced files in dir last modified before
// cutoff. Individual delete failures are logged and skipped.
func PruneOrphans(st store.RegistrationStore, dir string, cutoff time.Time) (int, error) {
	regs, err := st.ListAll()
	if err != nil {
		return 0, err
	}

	referenced := make(map[string]bool)
	for i := range regs {
		for _, p := range regs[i].AssetPaths() {
			referenced[filepath.Base(p)] = true
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			log.Printf("[REAPER] remove %s failed: %v", entry.Name(), err)
			continue
		}
		removed++
	}
	return removed, nil
}
