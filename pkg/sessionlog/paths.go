package sessionlog

import (
	"fmt"
	"path/filepath"
)

// LogsDir returns the artifact directory inside a project workspace.
func LogsDir(workspace string) string {
	return filepath.Join(workspace, "logs")
}

// JSONLName returns the structured-stream file name for a session.
// Numbers are dense from zero and zero-padded to at least three digits.
func JSONLName(number int, kind string) string {
	return fmt.Sprintf("session_%03d_%s.jsonl", number, kind)
}

// TextName returns the narrative file name for a session.
func TextName(number int, kind string) string {
	return fmt.Sprintf("session_%03d_%s.txt", number, kind)
}

// ReviewName returns the deep-review report file name for a session.
func ReviewName(number int) string {
	return fmt.Sprintf("session_%03d_review.md", number)
}
