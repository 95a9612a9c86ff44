package launcher

import "sync"

// Launch is one call observed by a Recorder
type Launch struct {
	Terminal    bool
	CommandLine string
}

// Recorder is a Launcher that records calls instead of running them
type Recorder struct {
	mu       sync.Mutex
	launches []Launch
	Err      error
}

// RunTerminal records a terminal launch
func (r *Recorder) RunTerminal(commandLine string) error {
	return r.record(Launch{Terminal: true, CommandLine: commandLine})
}

// RunDetached records a detached launch
func (r *Recorder) RunDetached(commandLine string) error {
	return r.record(Launch{CommandLine: commandLine})
}

func (r *Recorder) record(l Launch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.launches = append(r.launches, l)
	return r.Err
}

// Launches returns the recorded calls in order
func (r *Recorder) Launches() []Launch {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Launch(nil), r.launches...)
}
