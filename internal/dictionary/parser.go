package dictionary

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// DefaultSelector matches the homophone links in a Wiktionary
// pronunciation section.
const DefaultSelector = "span.homophones span a"

// Parser extracts homophones from a dictionary page.
//
// Design decision: The selector is compiled once with cascadia and reused
// for every page, so an invalid selector is reported before the first
// network request instead of once per word.
type Parser struct {
	// selector is the source text, kept for logging.
	selector string

	// matcher is the compiled selector.
	matcher cascadia.Selector
}

// NewParser compiles selector and returns a Parser that uses it.
func NewParser(selector string) (*Parser, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSelector, selector, err)
	}

	return &Parser{
		selector: selector,
		matcher:  matcher,
	}, nil
}

// Selector returns the selector the parser was built from.
func (p *Parser) Selector() string {
	return p.selector
}

// Extract parses an HTML document and returns the trimmed text of every
// element matching the selector, in document order. Matches whose text is
// empty after trimming are skipped. A page without matches yields an empty
// result and no error.
func (p *Parser) Extract(r io.Reader) ([]string, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var words []string
	goquery.NewDocumentFromNode(root).FindMatcher(p.matcher).Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			words = append(words, text)
		}
	})

	return words, nil
}
