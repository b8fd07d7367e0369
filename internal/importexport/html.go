// Package importexport converts the bookmark set to and from the two
// supported interchange formats: anchor-tag HTML and the persisted
// JSON layout.
package importexport

import (
	"fmt"
	"html"
	"io"
	"strings"

	xhtml "golang.org/x/net/html"

	"github.com/jdelcourt/marque/internal/domain"
)

// ImportHTML parses anchor-tag markup and returns one new bookmark per
// link. Imported bookmarks start with empty favicon, tags and
// collection; the caller resolves a preview image afterwards. Anchors
// without an href, or with an href that does not validate as a URL,
// are skipped rather than failing the whole import.
func ImportHTML(r io.Reader) ([]domain.Bookmark, error) {
	doc, err := xhtml.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	var bookmarks []domain.Bookmark

	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.ElementNode && strings.EqualFold(n.Data, "a") {
			href := attr(n, "href")
			if href == "" {
				return
			}
			normalized, err := domain.Normalize(href)
			if err != nil {
				return
			}

			title := textContent(n)
			if title == "" {
				title = normalized
			}
			bookmarks = append(bookmarks, domain.NewBookmark(title, normalized))
			return // anchors do not nest
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return bookmarks, nil
}

// ExportHTML renders the bookmark set as an HTML document with one
// list item holding an anchor per bookmark.
func ExportHTML(bookmarks []domain.Bookmark) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html>\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<title>Bookmarks</title>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString("<h1>Bookmarks</h1>\n")
	b.WriteString("<ul>\n")

	for _, bm := range bookmarks {
		fmt.Fprintf(&b, "    <li><a href=\"%s\">%s</a></li>\n",
			html.EscapeString(bm.URL),
			html.EscapeString(bm.Title),
		)
	}

	b.WriteString("</ul>\n</body>\n</html>\n")
	return b.String()
}

// textContent returns the trimmed text under a node.
func textContent(n *xhtml.Node) string {
	var text strings.Builder
	var extract func(*xhtml.Node)
	extract = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// attr returns the value of an attribute, case-insensitive.
func attr(n *xhtml.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}
