package contract

// SessionStore holds the per-session financial-context summary.
// Put is a total replace-or-create; Get reports found=false for unknown
// ids so callers can substitute the sentinel. Implementations must be
// safe for concurrent use; racing writes to one key are last-write-wins.
type SessionStore interface {
	Put(sessionID, summary string)
	Get(sessionID string) (summary string, found bool)
}
