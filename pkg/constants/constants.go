// Package constants centralizes defaults shared by the flowlint CLI and
// validation packages.
package constants

import "time"

const (
	// ConfigFileName is the optional per-project configuration file,
	// looked up in the directory flowlint runs in.
	ConfigFileName = ".flowlint.yml"

	// OutputFormatText and OutputFormatJSON are the accepted values of
	// the lint --format flag.
	OutputFormatText = "text"
	OutputFormatJSON = "json"

	// WatchDebounce is how long watch mode waits after the last file
	// event before re-validating, so editors that write in bursts only
	// trigger one run.
	WatchDebounce = 300 * time.Millisecond
)

// WorkflowFileExtensions lists the file extensions recognized as
// workflow documents during directory discovery.
var WorkflowFileExtensions = []string{".json", ".yaml", ".yml"}
