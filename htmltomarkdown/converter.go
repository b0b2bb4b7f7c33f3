// Package htmltomarkdown renders resource description HTML as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/spotlight"
)

// DefaultDomain resolves relative links in CurseForge descriptions.
const DefaultDomain = "https://www.curseforge.com"

// Ensure Converter implements spotlight.Converter at compile time.
var _ spotlight.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert description HTML to Markdown.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// Option configures a Converter.
type Option func(*Converter)

// WithDomain sets the base URL used to absolutize relative links and images.
// An empty domain leaves them relative.
func WithDomain(domain string) Option {
	return func(c *Converter) {
		c.domain = domain
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				strikethrough.NewStrikethroughPlugin(),
				table.NewTablePlugin(),
			),
		),
		domain: DefaultDomain,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms description HTML into trimmed Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", spotlight.Errorf(spotlight.EINVALID, "empty HTML input")
	}

	var opts []converter.ConvertOptionFunc
	if c.domain != "" {
		opts = append(opts, converter.WithDomain(c.domain))
	}
	result, err := c.conv.ConvertString(html, opts...)
	if err != nil {
		return "", spotlight.Errorf(spotlight.EINTERNAL, "convert description: %v", err)
	}

	return strings.TrimSpace(result), nil
}
