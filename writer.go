package alaskavn

// RecordWriter serializes an output record (or collection of records) to a
// file. Implementations must write UTF-8 JSON with non-ASCII characters
// preserved unescaped and two-space indentation.
type RecordWriter interface {
	Write(v any, path string) error
}
