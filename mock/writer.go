package mock

import "github.com/fwojciec/alaskavn"

var _ alaskavn.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of alaskavn.RecordWriter.
type RecordWriter struct {
	WriteFn func(v any, path string) error
}

func (w *RecordWriter) Write(v any, path string) error {
	return w.WriteFn(v, path)
}
