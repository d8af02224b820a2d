package filereader

// std reads the host filesystem as UTF-8 and logs through slog.Default.
var std = New()

// Default returns the Reader behind the package-level functions.
func Default() *Reader { return std }

// ReadBytes reads a file into a buffer, or returns nil if it cannot be read.
func ReadBytes(path string) []byte { return std.ReadBytes(path) }

// ReadText reads a file as UTF-8 text, or returns "" if it cannot be read.
func ReadText(path string) string { return std.ReadText(path) }

// ReadLines reads a file's lines, or returns an empty slice if it cannot be read.
func ReadLines(path string) []string { return std.ReadLines(path) }

// ReadLinesInFile reads all lines from a file and returns them as a slice of strings.
func ReadLinesInFile(path string) ([]string, error) { return std.Lines(path) }

// CountLinesInFile counts the number of physical lines in a file.
func CountLinesInFile(path string) (int, error) { return std.CountLines(path) }

// Put writes data to path, replacing any previous contents.
func Put(path string, data []byte) error { return std.Put(path, data) }
