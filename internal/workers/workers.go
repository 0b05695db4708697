package workers

type Workers struct {
	workers []Worker
}

// NewWorkers groups workers for a single Run call. Order is preserved.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
