package bouncer

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// ParseHTML parses an HTML document such as a bouncer index page.
func ParseHTML(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse html")
	}

	return doc, nil
}

// Links returns the href of every anchor in doc, in document order.
func Links(doc *html.Node) []string {
	var links []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					links = append(links, attr.Val)
					break
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if doc != nil {
		walk(doc)
	}

	return links
}
