package snake

// Ticker is the cancellable repeating task behind Loop.Tick. The loop starts
// it when play begins and stops it on pause, game over and fatal errors.
// Start and Stop must be idempotent.
type Ticker interface {
	Start()
	Stop()
}

// ManualTicker is a Ticker whose ticks are issued by the caller.
// It only records whether ticking is currently enabled.
type ManualTicker struct {
	running bool
}

// Start enables ticking.
func (t *ManualTicker) Start() {
	t.running = true
}

// Stop disables ticking.
func (t *ManualTicker) Stop() {
	t.running = false
}

// Running reports whether the loop wants ticks.
func (t *ManualTicker) Running() bool {
	return t.running
}
