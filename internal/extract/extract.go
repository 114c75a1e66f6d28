package extract

import (
	"runtime"
	"sync"

	"github.com/tailcheck/tailcheck/internal/scan"
)

// ScanSource extracts all class regions from one source file. Malformed
// input degrades to a shorter or empty region list, never an error.
func ScanSource(source string, containers map[string]string, defaultBG string) []Region {
	orch := NewOrchestrator(containers, defaultBG)
	scan.Scan(source, orch)
	return orch.Regions()
}

// ExtractFiles processes a batch of files across a fixed worker pool. Each
// file owns one Orchestrator, so no tracker state is shared between files.
// Workers <= 0 selects runtime.NumCPU(). Results preserve input order even
// though completion order is arbitrary; every input yields exactly one
// output entry.
func ExtractFiles(files []FileInput, containers map[string]string, defaultBG string, workers int) []FileRegions {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(files) {
		workers = len(files)
	}

	results := make([]FileRegions, len(files))
	if len(files) == 0 {
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				file := files[idx]
				results[idx] = FileRegions{
					Path:    file.Path,
					Regions: ScanSource(file.Content, containers, defaultBG),
				}
			}
		}()
	}
	for idx := range files {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return results
}
