package source

type (
	// FileID identifies one stored version of a buffer within a FileSet.
	FileID uint32
	// FileFlags record where a buffer came from and what normalization did.
	FileFlags uint8
)

const (
	// FileVirtual marks buffers that never lived on disk (stdin, editor tab).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM is set when a leading UTF-8 BOM was stripped.
	FileHadBOM
	// FileNormalizedNewlines is set when CRLF or CR line breaks were rewritten.
	FileNormalizedNewlines
)

// Has reports whether every bit of flag is set.
func (f FileFlags) Has(flag FileFlags) bool { return f&flag == flag }

// File is one normalized buffer. Content only ever holds '\n' line breaks.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// LineIdx holds the byte offset of every '\n'.
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}
