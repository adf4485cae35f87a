package model

// LaunchPreference records a "remember my choice" decision for launching an
// app-type shortcut without the confirmation dialog.
type LaunchPreference struct {
	// AutoLaunch means the app protocol is invoked immediately.
	AutoLaunch bool `json:"autoLaunch"`

	// Timestamp is when the preference was recorded, in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}
