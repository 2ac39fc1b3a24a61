package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File interface for in-memory files
type memoryFile struct {
	absPath string
	relPath string
	content []byte
	info    *memoryFileInfo
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	return f.content, nil
}

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

// Walk visits entries in sorted path order, honoring SkipDir the way
// filepath.Walk does: returned for a directory it prunes that subtree,
// returned for a file it skips the rest of the containing directory.
func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.getEntriesUnder(d.absPath)

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})

	var skipPrefixes []string

	for _, entry := range entries {
		skipped := false
		for _, prefix := range skipPrefixes {
			if entry.absPath == prefix || strings.HasPrefix(entry.absPath, prefix+"/") {
				skipped = true
				break
			}
		}
		if skipped {
			continue
		}

		// Recover from panics in callback to prevent crashing the entire walk
		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()

			callbackErr = fn(entry, nil)
		}()

		if errors.Is(callbackErr, SkipDir) {
			if entry.info.IsDir() {
				skipPrefixes = append(skipPrefixes, entry.absPath)
			} else {
				skipPrefixes = append(skipPrefixes, path.Dir(entry.absPath))
			}
			continue
		}

		if callbackErr != nil {
			return callbackErr
		}
	}

	return nil
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing
type MemoryFileSystem struct {
	files map[string]*memoryFile // map of absolute path -> file
	root  string                 // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = filepath.ToSlash(root)
	root = path.Clean(root)

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}

	// Create the root directory entry
	mfs.files[root] = &memoryFile{
		absPath: root,
		relPath: ".",
		content: nil,
		info: &memoryFileInfo{
			name:    path.Base(root),
			size:    0,
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}

	return mfs
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(path string, content string) {
	mfs.AddFileWithTime(path, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.abs(filePath)

	// Calculate relative path from root
	relPath, err := filepath.Rel(mfs.root, absPath)
	if err != nil {
		relPath = filePath
	}
	relPath = filepath.ToSlash(relPath)

	contentBytes := []byte(content)

	file := &memoryFile{
		absPath: absPath,
		relPath: relPath,
		content: contentBytes,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(contentBytes)),
			mode:    0644,
			modTime: modTime,
			isDir:   false,
		},
	}

	mfs.files[absPath] = file

	// Also add parent directories
	mfs.ensureDirectoriesExist(absPath)
}

// abs normalizes a path into the virtual filesystem's absolute form.
func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	var absPath string
	if p == "." || p == "" {
		absPath = mfs.root
	} else if strings.HasPrefix(p, "/") || path.IsAbs(p) {
		absPath = p
	} else {
		absPath = path.Join(mfs.root, p)
	}
	return path.Clean(absPath)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}

	if _, exists := mfs.files[dir]; exists {
		return
	}

	mfs.files[dir] = &memoryFile{
		absPath: dir,
		relPath: strings.TrimPrefix(dir, mfs.root+"/"),
		content: nil,
		info: &memoryFileInfo{
			name:    path.Base(dir),
			size:    0,
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}

	// Recursively create parent directories
	mfs.ensureDirectoriesExist(dir)
}

// getEntriesUnder returns all files and directories under the given path
func (mfs *MemoryFileSystem) getEntriesUnder(basePath string) []*memoryFile {
	basePath = filepath.ToSlash(basePath)
	var entries []*memoryFile

	for path, file := range mfs.files {
		var matched bool
		if basePath == "/" {
			matched = strings.HasPrefix(path, "/")
		} else {
			matched = path == basePath || strings.HasPrefix(path, basePath+"/")
		}

		if matched {
			entries = append(entries, file)
		}
	}

	return entries
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.abs(openPath)

	file, exists := mfs.files[absPath]
	if exists {
		if !file.info.IsDir() {
			return nil, fmt.Errorf("path is not a directory: %s", openPath)
		}
		return &memoryDirectory{
			absPath: absPath,
			fs:      mfs,
		}, nil
	}

	// Even if directory doesn't have an explicit entry, allow it if there
	// are files under it
	hasEntries := false
	for filePath := range mfs.files {
		if strings.HasPrefix(filePath, absPath+"/") || filePath == absPath {
			hasEntries = true
			break
		}
	}

	if !hasEntries {
		return nil, fmt.Errorf("directory not found: %s", openPath)
	}

	return &memoryDirectory{
		absPath: absPath,
		fs:      mfs,
	}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	absPath := mfs.abs(filePath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}

	if file.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	return file.content, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	absPath := mfs.abs(dirPath)

	if file, exists := mfs.files[absPath]; !exists || !file.info.IsDir() {
		return nil, fmt.Errorf("directory not found: %s", dirPath)
	}

	var result []FileInfo
	for p, file := range mfs.files {
		if path.Dir(p) == absPath && p != absPath {
			result = append(result, file.info)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.abs(statPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("path not found: %s", statPath)
	}

	return file.info, nil
}

// WriteFile implements FileSystemProvider.WriteFile
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte, perm fs.FileMode) error {
	absPath := mfs.abs(filePath)

	// Parent directory must exist, matching os.WriteFile behavior
	dir := path.Dir(absPath)
	if parent, exists := mfs.files[dir]; !exists || !parent.info.IsDir() {
		return fmt.Errorf("directory not found: %s", dir)
	}

	relPath, err := filepath.Rel(mfs.root, absPath)
	if err != nil {
		relPath = filePath
	}

	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: filepath.ToSlash(relPath),
		content: append([]byte(nil), data...),
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(data)),
			mode:    perm,
			modTime: time.Now(),
			isDir:   false,
		},
	}
	return nil
}

// MkdirAll implements FileSystemProvider.MkdirAll
func (mfs *MemoryFileSystem) MkdirAll(dirPath string, perm fs.FileMode) error {
	absPath := mfs.abs(dirPath)

	if file, exists := mfs.files[absPath]; exists {
		if !file.info.IsDir() {
			return fmt.Errorf("path exists and is not a directory: %s", dirPath)
		}
		return nil
	}

	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: strings.TrimPrefix(absPath, mfs.root+"/"),
		content: nil,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    0,
			mode:    perm | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
	mfs.ensureDirectoriesExist(absPath)
	return nil
}

// RemoveAll implements FileSystemProvider.RemoveAll
func (mfs *MemoryFileSystem) RemoveAll(target string) error {
	absPath := mfs.abs(target)

	for p := range mfs.files {
		if p == absPath || strings.HasPrefix(p, absPath+"/") {
			delete(mfs.files, p)
		}
	}
	return nil
}
