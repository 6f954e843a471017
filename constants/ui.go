package constants

// Status line and border
const (
	BorderChar     = '*'
	StatusTemplate = "tick %d  tps %d  %dx%d  pos %.0f,%.0f  q quit"
)

// Launcher output
const (
	LauncherTitle    = "termunator"
	LauncherExitItem = 0
	ANSIBold         = "\033[1m"
	ANSICyan         = "\033[36m"
	ANSIReset        = "\033[0m"
)
