package mock

import "github.com/fwojciec/quotefinder"

var _ quotefinder.Converter = (*Converter)(nil)

// Converter stubs HTML conversion for the HTML extractor tests.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
