package mock

import "github.com/fwojciec/alaskavn"

var _ alaskavn.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of alaskavn.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*alaskavn.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*alaskavn.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ alaskavn.Converter = (*Converter)(nil)

// Converter is a mock implementation of alaskavn.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
