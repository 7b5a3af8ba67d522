package renderer

import (
	"fmt"
	"io"
	"os"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to an io.Writer
type DefaultLogger struct {
	out io.Writer
}

// Printf formats a message to the logger's writer
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(dl.out, format, args...)
}

// NewDefaultLogger creates a logger writing to stderr, leaving stdout free for image data
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{out: os.Stderr}
}

// NewWriterLogger creates a logger writing to w
func NewWriterLogger(w io.Writer) core.Logger {
	return &DefaultLogger{out: w}
}
