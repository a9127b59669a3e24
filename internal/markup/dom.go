package markup

import (
	"strings"

	"golang.org/x/net/html"
)

func hasAttr(n *html.Node, name string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

func attr(n *html.Node, name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, name, value string) {
	for i, a := range n.Attr {
		if a.Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// toggleClass adds or removes class and reports whether the attribute changed.
func toggleClass(n *html.Node, class string, on bool) bool {
	if n == nil || class == "" {
		return false
	}
	fields := strings.Fields(attr(n, "class"))
	kept := fields[:0]
	present := false
	for _, c := range fields {
		if c == class {
			present = true
			if !on {
				continue
			}
		}
		kept = append(kept, c)
	}
	if on == present {
		return false
	}
	if on {
		kept = append(kept, class)
	}
	setAttr(n, "class", strings.Join(kept, " "))
	return true
}

// find returns the descendants of n (excluding n) carrying attribute name, in
// document order. Descent stops at matches when shallow is set.
func find(n *html.Node, name string, shallow bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if hasAttr(c, name) {
				out = append(out, c)
				if shallow {
					continue
				}
			}
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return out
}

func findFirst(n *html.Node, name string) *html.Node {
	if found := find(n, name, true); len(found) > 0 {
		return found[0]
	}
	return nil
}

// findOutside behaves like find but skips subtrees rooted at elements carrying
// the fence attribute.
func findOutside(n *html.Node, name, fence string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if hasAttr(c, fence) {
				continue
			}
			if hasAttr(c, name) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return out
}

func textContent(n *html.Node) string {
	return textOutside(n, "")
}

// textOutside collects the text of n, skipping subtrees carrying fence.
func textOutside(n *html.Node, fence string) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
			b.WriteByte(' ')
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if fence != "" && hasAttr(c, fence) {
				continue
			}
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func isAncestor(ancestor, n *html.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}
