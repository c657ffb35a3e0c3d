package views

// SwitchToHelpMsg asks the app to show the help view
type SwitchToHelpMsg struct{}

// SwitchToLinkerMsg asks the app to return to the linker view
type SwitchToLinkerMsg struct{}

// ApplySuccessMsg reports a completed rewrite
type ApplySuccessMsg struct {
	Count int
}

// ErrMsg carries a failure into a view
type ErrMsg struct {
	Err error
}
