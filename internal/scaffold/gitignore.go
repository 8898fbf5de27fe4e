package scaffold

import (
	"os"
	"strings"

	"advent/internal/fs"
)

// GitignoreResult indicates what happened to .gitignore.
type GitignoreResult string

const (
	GitignoreUpdated   GitignoreResult = "updated"
	GitignoreUnchanged GitignoreResult = "unchanged"
	GitignoreSkipped   GitignoreResult = "skipped"
)

// EnsureGitignore ensures entry (normally the input directory, which
// holds personal puzzle data) is in .gitignore.
// Creates the file if missing. Does not add duplicate entries.
// Ensures file ends with newline.
//
// Returns the result indicating what action was taken.
func EnsureGitignore(fsys fs.FS, gitignorePath, entry string) (GitignoreResult, error) {
	content, err := fsys.ReadFile(gitignorePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		// File doesn't exist, create it with the entry
		newContent := entry + "\n"
		if err := fsys.WriteFile(gitignorePath, []byte(newContent), 0644); err != nil {
			return "", err
		}
		return GitignoreUpdated, nil
	}

	// File exists, check if entry is already present
	if hasEntry(string(content), entry) {
		// Entry exists, ensure trailing newline
		if len(content) > 0 && content[len(content)-1] != '\n' {
			newContent := string(content) + "\n"
			if err := fsys.WriteFile(gitignorePath, []byte(newContent), 0644); err != nil {
				return "", err
			}
			return GitignoreUpdated, nil
		}
		return GitignoreUnchanged, nil
	}

	// Entry not present, append it
	newContent := string(content)
	// Ensure content ends with newline before appending
	if len(newContent) > 0 && !strings.HasSuffix(newContent, "\n") {
		newContent += "\n"
	}
	newContent += entry + "\n"

	if err := fsys.WriteFile(gitignorePath, []byte(newContent), 0644); err != nil {
		return "", err
	}
	return GitignoreUpdated, nil
}

// hasEntry checks if entry exists in content, treating the slashed and
// bare spellings as equivalent.
func hasEntry(content, entry string) bool {
	bare := strings.TrimSuffix(entry, "/")
	lines := strings.Split(content, "\n")
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == entry || trimmed == bare {
			return true
		}
	}
	return false
}
