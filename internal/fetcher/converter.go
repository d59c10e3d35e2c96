package fetcher

import (
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"golang.org/x/net/html"
)

// Pre-compiled regexes; runtime compilation of attacker-influenced patterns is
// a ReDoS risk.
var (
	scriptRe         = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe          = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	excessiveLinesRe = regexp.MustCompile(`\n{4,}`)
)

// ConvertResult contains the result of HTML to markdown conversion.
// Title carries the page <title>, used as a bar-name hint for extraction.
type ConvertResult struct {
	Title    string
	Markdown string
}

// Converter converts raw menu-page HTML into markdown the extraction
// capability can work with. Chrome elements (nav, forms, scripts) are dropped;
// the menu content itself, typically tables and lists, survives conversion.
type Converter struct {
	converter *md.Converter
}

// NewConverter creates a new HTML to markdown converter.
func NewConverter() *Converter {
	converter := md.NewConverter("", true, nil)

	// Table support matters for menu pages.
	converter.Use(plugin.GitHubFlavored())

	return &Converter{
		converter: converter,
	}
}

// Convert transforms HTML content to markdown.
func (c *Converter) Convert(htmlContent []byte) (*ConvertResult, error) {
	title := extractHTMLTitle(htmlContent)

	cleaned := stripChrome(htmlContent)

	markdown, err := c.converter.ConvertString(cleaned)
	if err != nil {
		return nil, err
	}

	markdown = excessiveLinesRe.ReplaceAllString(strings.TrimSpace(markdown), "\n\n\n")

	return &ConvertResult{
		Title:    title,
		Markdown: markdown,
	}, nil
}

// extractHTMLTitle extracts the title from HTML.
func extractHTMLTitle(content []byte) string {
	doc, err := html.Parse(strings.NewReader(string(content)))
	if err != nil {
		return ""
	}

	var title string
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			title = strings.TrimSpace(n.FirstChild.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if title != "" {
				return
			}
			extract(c)
		}
	}
	extract(doc)

	return title
}

// stripChrome removes non-content elements. Unlike documentation scrapers we
// do NOT drop elements by "menu"-like class names here, since on a bar site
// that class usually IS the content.
func stripChrome(content []byte) string {
	doc, err := html.Parse(strings.NewReader(string(content)))
	if err != nil {
		// Fall back to regex cleanup if parsing fails.
		s := scriptRe.ReplaceAllString(string(content), "")
		return styleRe.ReplaceAllString(s, "")
	}

	removeElements(doc, []string{
		"script", "style", "noscript", "iframe", "object", "embed",
		"form", "input", "button", "svg",
	})

	if body := findElement(doc, "body"); body != nil {
		return renderNode(body)
	}
	return string(content)
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tag string) *html.Node {
	var result *html.Node
	var find func(*html.Node)
	find = func(node *html.Node) {
		if result != nil {
			return
		}
		if node.Type == html.ElementNode && node.Data == tag {
			result = node
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(n)
	return result
}

// removeElements removes all elements with the given tag names.
func removeElements(n *html.Node, tags []string) {
	tagSet := make(map[string]bool)
	for _, tag := range tags {
		tagSet[tag] = true
	}

	var toRemove []*html.Node
	var collect func(*html.Node)
	collect = func(node *html.Node) {
		if node.Type == html.ElementNode && tagSet[node.Data] {
			toRemove = append(toRemove, node)
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)

	for _, node := range toRemove {
		if node.Parent != nil {
			node.Parent.RemoveChild(node)
		}
	}
}

// renderNode renders a node back to HTML.
func renderNode(n *html.Node) string {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return ""
	}
	return b.String()
}
