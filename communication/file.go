package communication

import (
	"fmt"
	"io"
	"os"
)

// File replays commands, and any human orders between them, from a text
// file. Each line read is echoed after its prompt to keep a readable
// transcript.
type File struct {
	*Console
	f *os.File
}

func OpenFile(path string, out io.Writer) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open command file: %w", err)
	}
	console := NewConsole(f, out)
	console.echo = true
	return &File{Console: console, f: f}, nil
}

func (f *File) Close() error {
	return f.f.Close()
}
