package script

const (
	// CommentPrefix starts a comment; the rest of the line is ignored.
	CommentPrefix = '#'

	// AltCommentPrefix starts a whole-line comment.
	AltCommentPrefix = ";"

	// ScannerInitialBufferSize is the initial line buffer for scripts.
	ScannerInitialBufferSize = 4 * 1024

	// ScannerMaxLineSize bounds a single script line.
	ScannerMaxLineSize = 64 * 1024
)

// Encoding names accepted by Options.Encoding.
const (
	EncodingUTF8        = "utf-8"
	EncodingLatin1      = "latin1"
	EncodingWindows1252 = "windows-1252"
)
