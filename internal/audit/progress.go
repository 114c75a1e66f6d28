package audit

// ProgressReporter receives audit lifecycle events. Implementations must
// tolerate being called from the runner goroutine only; no callback is
// invoked concurrently.
type ProgressReporter interface {
	OnDiscoveryStart()
	OnDiscoveryComplete(fileCount int)
	OnExtractionStart(totalFiles int)
	OnFileExtracted(path string, regionCount int)
	OnCheckStart(pairCount int)
	OnComplete(report *Report)
}

// NoOpProgressReporter discards all progress events.
type NoOpProgressReporter struct{}

func (NoOpProgressReporter) OnDiscoveryStart()           {}
func (NoOpProgressReporter) OnDiscoveryComplete(int)     {}
func (NoOpProgressReporter) OnExtractionStart(int)       {}
func (NoOpProgressReporter) OnFileExtracted(string, int) {}
func (NoOpProgressReporter) OnCheckStart(int)            {}
func (NoOpProgressReporter) OnComplete(*Report)          {}
