package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"fretdiagram/fretboard"
	"fretdiagram/surface"
)

func renderJob(img *surface.Image, job Job) error {
	img.Clear()
	if err := fretboard.Render(img, job.Config); err != nil {
		return fmt.Errorf("job %s: %w", job.Name, err)
	}
	if err := img.SavePNG(job.Path); err != nil {
		return fmt.Errorf("job %s: %w", job.Name, err)
	}
	return nil
}

// RenderAll renders every job to its PNG path using a bounded pool of
// workers, each reusing its own image. It returns the paths written, in job
// order, and the first error encountered. Jobs not yet started when ctx is
// cancelled are skipped.
func RenderAll(ctx context.Context, jobs []Job, opts Options) ([]string, error) {
	maxWorkers := opts.Workers
	if maxWorkers <= 0 {
		maxWorkers = defaultWorkers
	}
	if maxWorkers > len(jobs) {
		maxWorkers = len(jobs)
	}
	if maxWorkers == 0 {
		return nil, nil
	}
	if err := surface.CheckSize(opts.Width, opts.Height, opts.Margin); err != nil {
		return nil, err
	}

	sem := make(chan struct{}, maxWorkers)
	images := make(chan *surface.Image, maxWorkers)
	for i := 0; i < maxWorkers; i++ {
		img := surface.NewImage(opts.Width, opts.Height, opts.Margin)
		if opts.Background != nil {
			img.SetBackground(*opts.Background)
		}
		images <- img
	}

	var wg sync.WaitGroup
	var finished atomic.Uint64
	var startTime = time.Now()

	var errMu sync.Mutex
	var firstErr error
	done := make([]bool, len(jobs))

	for i, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		img := <-images
		go func(img *surface.Image, i int, job Job) {
			defer wg.Done()
			defer func() {
				<-sem
				images <- img
			}()
			if err := renderJob(img, job); err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
				return
			}
			done[i] = true
			f := finished.Add(1)
			slog.Debug("diagram rendered",
				slog.String("name", job.Name),
				slog.String("path", job.Path),
				slog.Uint64("finished", f),
				slog.Int("total", len(jobs)),
				slog.Float64("avg_seconds", time.Since(startTime).Seconds()/float64(f)),
			)
		}(img, i, job)
	}

	wg.Wait()

	var paths []string
	for i, ok := range done {
		if ok {
			paths = append(paths, jobs[i].Path)
		}
	}
	if firstErr != nil {
		return paths, firstErr
	}
	if err := ctx.Err(); err != nil {
		return paths, fmt.Errorf("batch cancelled: %w", err)
	}
	return paths, nil
}
