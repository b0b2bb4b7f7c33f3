// Package goquery cleans resource description HTML before it is converted
// to Markdown.
package goquery

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/spotlight"
)

var _ spotlight.Converter = (*DescriptionConverter)(nil)

// DescriptionConverter runs CleanDescription and hands the result to Next.
type DescriptionConverter struct {
	Next spotlight.Converter
}

// NewDescriptionConverter wraps next with description cleanup.
func NewDescriptionConverter(next spotlight.Converter) *DescriptionConverter {
	return &DescriptionConverter{Next: next}
}

// Convert cleans src and converts it with Next. Blank input is passed
// through so Next reports it.
func (c *DescriptionConverter) Convert(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return c.Next.Convert(src)
	}
	cleaned, err := CleanDescription(src)
	if err != nil {
		return "", err
	}
	return c.Next.Convert(cleaned)
}

// CleanDescription removes markup that has no Markdown equivalent and
// rewrites links:
//   - script, style, noscript and form elements are dropped
//   - embedded videos become plain links, YouTube embeds become watch URLs
//   - CurseForge linkout redirects are replaced by their target
//   - javascript: links lose their href
func CleanDescription(src string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return "", spotlight.Errorf(spotlight.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style, noscript, form").Remove()

	doc.Find("iframe").Each(func(_ int, sel *goquery.Selection) {
		link := embedLink(sel.AttrOr("src", ""))
		if link == "" {
			sel.Remove()
			return
		}
		escaped := html.EscapeString(link)
		sel.ReplaceWithHtml(fmt.Sprintf(`<p><a href="%s">%s</a></p>`, escaped, escaped))
	})

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if strings.HasPrefix(strings.ToLower(href), "javascript:") {
			sel.RemoveAttr("href")
			return
		}
		if target := unwrapLinkout(href); target != "" {
			sel.SetAttr("href", target)
		}
	})

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", spotlight.Errorf(spotlight.EINTERNAL, "failed to render HTML: %v", err)
	}
	return strings.TrimSpace(out), nil
}

// embedLink turns an iframe src into a link a reader can follow.
func embedLink(src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	u, err := url.Parse(src)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme == "" {
		u.Scheme = "https"
	}

	host := strings.TrimPrefix(u.Host, "www.")
	if host == "youtube.com" || host == "youtube-nocookie.com" {
		if id, ok := strings.CutPrefix(u.Path, "/embed/"); ok && id != "" {
			return "https://www.youtube.com/watch?v=" + url.QueryEscape(id)
		}
	}
	return u.String()
}

// unwrapLinkout returns the target of a CurseForge /linkout redirect, or ""
// when href is not one. Targets are URL-encoded twice.
func unwrapLinkout(href string) string {
	u, err := url.Parse(href)
	if err != nil || !strings.HasSuffix(u.Path, "/linkout") {
		return ""
	}
	target := u.Query().Get("remoteUrl")
	if decoded, err := url.QueryUnescape(target); err == nil {
		target = decoded
	}
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		return ""
	}
	return target
}
