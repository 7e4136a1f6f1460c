// Package exitcode provides the process exit codes for docsweep.
//
// CI pipelines only distinguish zero from non-zero, so every failure mode
// (findings present, missing navigation config, unreadable tree) shares code 1.
package exitcode

const (
	Success = 0
	Failure = 1
)

// String returns a human-readable description of the exit code
func String(code int) string {
	switch code {
	case Success:
		return "Success"
	case Failure:
		return "Issues found or run failed"
	default:
		return "Unknown exit code"
	}
}

// ForFindings maps a finding count to the exit status of a completed run.
func ForFindings(total int) int {
	if total > 0 {
		return Failure
	}
	return Success
}
