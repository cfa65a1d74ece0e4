package scan

// Observer receives the full report once a scan run completes. Observers are
// notified synchronously, in registration order; if an observer returns an
// error, notification stops there and the error is returned from Execute.
type Observer interface {
	Update(report Report) error
}
