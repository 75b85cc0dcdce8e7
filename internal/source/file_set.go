package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"fortio.org/safecast"
)

// FileSet manages a collection of buffers. It is safe for concurrent use.
type FileSet struct {
	mu      sync.RWMutex
	files   []*File
	index   map[string]FileID // path -> id
	baseDir string            // базовая директория для относительных путей
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return NewFileSetWithBase("")
}

// NewFileSetWithBase создаёт FileSet с заданной базовой директорией.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{
		files:   make([]*File, 0),
		index:   make(map[string]FileID),
		baseDir: baseDir,
	}
}

// SetBaseDir устанавливает базовую директорию для относительных путей.
func (fileSet *FileSet) SetBaseDir(dir string) {
	fileSet.mu.Lock()
	defer fileSet.mu.Unlock()
	fileSet.baseDir = dir
}

// BaseDir возвращает текущую базовую директорию.
func (fileSet *FileSet) BaseDir() string {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	if fileSet.baseDir == "" {
		// Если не установлена, используем текущую рабочую директорию
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

// Add stores a file from normalized bytes, computes LineIdx and Hash, and returns a new FileID.
// It always creates a new FileID even if a file with the same path already exists.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	hash := sha256.Sum256(content)
	lineIdx := buildLineIndex(content)
	normalizedPath := normalizePath(path)

	fileSet.mu.Lock()
	defer fileSet.mu.Unlock()
	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fileSet.files = append(fileSet.files, &File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		LineIdx: lineIdx,
		Hash:    hash,
		Flags:   flags,
	})
	// Всегда обновляем индекс на последнюю версию файла
	fileSet.index[normalizedPath] = id
	return id
}

// Load reads a file from disk and adds it through AddNormalized.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return fileSet.AddNormalized(path, content, 0), nil
}

// AddNormalized strips a UTF-8 BOM and rewrites line breaks to '\n'
// before adding.
func (fileSet *FileSet) AddNormalized(path string, content []byte, flags FileFlags) FileID {
	content, hadBOM := removeBOM(content)
	content, rewrote := normalizeNewlines(content)
	if hadBOM {
		flags |= FileHadBOM
	}
	if rewrote {
		flags |= FileNormalizedNewlines
	}
	return fileSet.Add(path, content, flags)
}

// AddVirtual adds a virtual file (stdin, test, or editor tab) with the FileVirtual flag.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.AddNormalized(name, content, FileVirtual)
}

// Get returns the file metadata for the given ID, or nil when unknown.
func (fileSet *FileSet) Get(id FileID) *File {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	if int(id) >= len(fileSet.files) {
		return nil
	}
	return fileSet.files[id]
}

// Len returns the number of stored file versions.
func (fileSet *FileSet) Len() int {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	return len(fileSet.files)
}

// GetLatest returns the latest file ID for the given path, if it exists.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// GetByPath возвращает *File по пути, если был загружен в этот FileSet.
func (fileSet *FileSet) GetByPath(path string) (*File, bool) {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	if id, ok := fileSet.index[normalizePath(path)]; ok {
		return fileSet.files[id], true
	}
	return nil, false
}

// Text returns the content as a string.
func (f *File) Text() string {
	return string(f.Content)
}

// LineCount returns the number of '\n'-separated lines (at least 1).
func (f *File) LineCount() int {
	return len(f.LineIdx) + 1
}

// GetLine возвращает строку с заданным номером (1-based) из файла.
// Если строка не существует, возвращает пустую строку.
func (f *File) GetLine(lineNum int) string {
	if lineNum <= 0 || lineNum > f.LineCount() {
		return ""
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	var start, end uint32
	if lineNum > 1 {
		start = f.LineIdx[lineNum-2] + 1
	}
	if lineNum-1 < len(f.LineIdx) {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}
	if start > end {
		return ""
	}
	return string(f.Content[start:end])
}

// FormatPath форматирует путь к файлу в зависимости от режима.
// mode: "absolute", "relative", "basename", "auto"
// baseDir: базовая директория для относительных путей (игнорируется для других режимов)
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
		return f.Path

	case "relative":
		if baseDir == "" {
			// Если базовая директория не указана, используем текущую
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		return RelativePath(f.Path, baseDir)

	case "basename":
		return filepath.Base(f.Path)

	case "auto":
		// Auto: если путь короткий или относительный - как есть, иначе basename
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return filepath.Base(f.Path)

	default:
		return f.Path
	}
}

// RelativePath returns path relative to base, or the cleaned absolute path
// when path lies outside base.
func RelativePath(path, base string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return normalizePath(path)
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return normalizePath(abs)
	}
	rel, err := filepath.Rel(absBase, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return normalizePath(abs)
	}
	return normalizePath(rel)
}
