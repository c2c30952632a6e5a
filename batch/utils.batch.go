package batch

import (
	"fmt"
	"path/filepath"
	"strings"

	"fretdiagram/fretboard"
	"fretdiagram/theory"
)

func getFileNameWithoutExtension(filePath string) string {
	fileName := filepath.Base(filePath)
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}

// newJob names the job after its output file, so logs and errors point at
// the file being written.
func newJob(cfg fretboard.Config, path string) Job {
	return Job{Name: getFileNameWithoutExtension(path), Config: cfg, Path: path}
}

func fileSafeName(note string) string {
	return strings.ToLower(strings.ReplaceAll(note, "#", "sharp"))
}

// ChordJobs builds one job per chord root, each highlighting only that
// chord on top of base.
func ChordJobs(base fretboard.Config, roots []string, dir string) []Job {
	jobs := make([]Job, 0, len(roots))
	for _, root := range roots {
		cfg := base
		cfg.HighlightedChords = theory.NewSet(root)
		jobs = append(jobs, newJob(cfg, filepath.Join(dir, fmt.Sprintf("chord-%s.png", fileSafeName(root)))))
	}
	return jobs
}

// PresetJobs builds one job per named tuning preset.
func PresetJobs(base fretboard.Config, presets []string, dir string) ([]Job, error) {
	jobs := make([]Job, 0, len(presets))
	for _, name := range presets {
		tuning, err := theory.LookupTuning(name)
		if err != nil {
			return nil, err
		}
		cfg := base
		cfg.Tuning = tuning
		jobs = append(jobs, newJob(cfg, filepath.Join(dir, fmt.Sprintf("tuning-%s.png", fileSafeName(name)))))
	}
	return jobs, nil
}
