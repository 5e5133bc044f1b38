package godocai

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// ManifestName is the file name of the incremental-run manifest, written
// inside the target subtree.
const ManifestName = ".godocai-manifest.json"

// manifestFormat is the JSON structure persisted between runs.
type manifestFormat struct {
	Version   string            `json:"version"`
	UpdatedAt string            `json:"updated_at"`
	Files     map[string]string `json:"files"` // rel path -> source content hash
}

// Manifest records source content hashes from completed translations so an
// incremental run can skip files that have not changed since. Only files
// whose translation fully succeeded (or were empty) are recorded; failed
// files are retried on the next run.
type Manifest struct {
	path  string
	files map[string]string
}

// manifestPath returns the manifest location for a source root and target
// subtree name.
func manifestPath(root, targetName string) string {
	return filepath.Join(root, targetName, ManifestName)
}

// LoadManifest reads a manifest from path. A missing or unreadable manifest
// yields an empty one, so a first run and a full re-run behave identically.
func LoadManifest(path string) *Manifest {
	m := &Manifest{path: path, files: make(map[string]string)}

	data, err := os.ReadFile(path) // #nosec G304 - manifest lives in the user-chosen target tree
	if err != nil {
		return m
	}

	var format manifestFormat
	if err := json.Unmarshal(data, &format); err != nil {
		return m
	}
	if format.Files != nil {
		m.files = format.Files
	}
	return m
}

// Unchanged reports whether rel was recorded with the same content hash.
func (m *Manifest) Unchanged(rel, hash string) bool {
	recorded, ok := m.files[rel]
	return ok && recorded == hash
}

// Record stores the content hash for rel.
func (m *Manifest) Record(rel, hash string) {
	m.files[rel] = hash
}

// Len returns the number of recorded files.
func (m *Manifest) Len() int {
	return len(m.files)
}

// Save writes the manifest back to its path, creating the target directory
// if the run produced no other files there yet.
func (m *Manifest) Save() error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return &WalkError{Path: m.path, Message: "creating manifest directory", Cause: err}
	}

	format := manifestFormat{
		Version:   "1.0",
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Files:     m.files,
	}
	data, err := json.MarshalIndent(format, "", "  ")
	if err != nil {
		return &WalkError{Path: m.path, Message: "encoding manifest", Cause: err}
	}

	if err := os.WriteFile(m.path, append(data, '\n'), 0o644); err != nil {
		return &WalkError{Path: m.path, Message: "writing manifest", Cause: err}
	}
	return nil
}
