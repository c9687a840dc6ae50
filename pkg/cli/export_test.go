package cli

var (
	ParseRemoteURLForTest  = parseRemoteURL
	RunWorkerForTest       = runWorker
	DrainQueueForTest      = drainQueue
	NewWakeupForTest       = newWakeup
	PrintScanResultForTest = printScanResult
	PrintHistoryForTest    = printHistory
)
