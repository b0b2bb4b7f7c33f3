package mock

import "github.com/fwojciec/spotlight"

var _ spotlight.Converter = (*Converter)(nil)

// Converter stubs description conversion.
type Converter struct {
	ConvertFn func(src string) (string, error)
}

func (c *Converter) Convert(src string) (string, error) {
	return c.ConvertFn(src)
}
