package godocai

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// sniffLen bounds how much of an extensionless file is read for content
// sniffing during the walk.
const sniffLen = 8192

// FilePair couples a source document with its mirrored target path.
type FilePair struct {
	Source  string  // Path of the source document
	Target  string  // Mirrored path under the target subtree
	Rel     string  // Path relative to the source root
	DocType DocType // Document type from the extension or content sniffing
}

// WalkTree walks the documentation tree under root and calls fn once per
// document file, in lexical order. The target subtree (targetName directly
// under root) and hidden directories are excluded. Files with an extension
// outside DocTypeExtensions are ignored; extensionless files are typed by
// content sniffing and included unless they contain a NUL byte, the binary
// marker. An error from fn aborts the walk.
//
// The source root is validated up front: a missing or non-directory root is
// fatal before any file is visited.
func WalkTree(root, targetName string, fn func(FilePair) error) error {
	info, err := os.Stat(root)
	if err != nil {
		return &WalkError{Path: root, Message: "source root not found", Cause: err}
	}
	if !info.IsDir() {
		return &WalkError{Path: root, Message: "source root is not a directory"}
	}

	targetRoot := filepath.Join(root, targetName)

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &WalkError{Path: path, Message: "walking source tree", Cause: err}
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if path == targetRoot || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		docType, ok := DocTypeExtensions[ext]
		if !ok {
			if ext != "" {
				return nil
			}
			head, err := readHead(path, sniffLen)
			if err != nil {
				// Leave unreadable files to the per-file handling downstream.
				docType = DocPlaintext
			} else {
				if bytes.IndexByte(head, 0) >= 0 {
					return nil
				}
				docType = DetectDocType(path, string(head))
			}
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return &WalkError{Path: path, Message: "computing relative path", Cause: err}
		}

		return fn(FilePair{
			Source:  path,
			Target:  filepath.Join(targetRoot, rel),
			Rel:     rel,
			DocType: docType,
		})
	})
}

// readHead reads up to n bytes from the start of a file.
func readHead(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	m, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return buf[:m], nil
}

// WriteTarget writes content to the target path, creating parent directories
// as needed. The write is a single complete replacement of the file.
func WriteTarget(target, content string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return &WalkError{Path: target, Message: "creating target directory", Cause: err}
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return &WalkError{Path: target, Message: "writing target file", Cause: err}
	}
	return nil
}
