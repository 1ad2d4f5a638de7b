package main

const usage = "Usage: rowgroup <file> <matching_type>"

// UsageError reports missing positional arguments.
type UsageError struct{}

func (UsageError) Error() string { return usage }

// FileNotFoundError reports an input path that does not exist.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string { return "File not found: " + e.Path }
