package texture

import (
	"errors"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// LoadFiles decodes several image files in parallel on a dynamic worker pool.
// Decoding is CPU-bound and independent per file; GPU upload still happens later on the
// render thread when each texture is first bound. Results keep the order of paths.
//
// Parameters:
//   - paths: the image files to load
//   - workers: the maximum number of concurrent decoders (values <= 0 use 4)
//
// Returns:
//   - []Texture: the decoded textures, nil entries for files that failed
//   - error: every decode error joined together, or nil
func LoadFiles(paths []string, workers int) ([]Texture, error) {
	if workers <= 0 {
		workers = 4
	}
	textures := make([]Texture, len(paths))
	errs := make([]error, len(paths))
	if len(paths) == 0 {
		return textures, nil
	}

	pool := worker.NewDynamicWorkerPool(workers, len(paths), 1*time.Second)

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		idx, p := i, path
		pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				textures[idx], errs[idx] = NewTextureFromFile(p)
				return nil, errs[idx]
			},
		})
	}
	wg.Wait()

	return textures, errors.Join(errs...)
}
