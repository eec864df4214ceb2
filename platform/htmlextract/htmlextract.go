// Package htmlextract pulls form state and tables out of server-rendered
// HTML. Every function is total: malformed or truncated markup yields empty
// results, never an error.
package htmlextract

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Table is a parsed <table>: the first row is the header row.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Radio is the checked input of a radio group and the companion value
// carried by its onclick handler.
type Radio struct {
	RadioValue  *string
	HiddenValue *string
}

func parse(doc string) *html.Node {
	n, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return nil
	}
	return n
}

func walk(n *html.Node, fn func(*html.Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

// Inputs returns name -> value for every named <input>. On duplicate names
// the first occurrence wins.
func Inputs(doc string) map[string]string {
	out := make(map[string]string)
	walk(parse(doc), func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Input {
			name, ok := attr(n, "name")
			if !ok || name == "" {
				return true
			}
			if _, seen := out[name]; seen {
				return true
			}
			v, _ := attr(n, "value")
			out[name] = v
		}
		return true
	})
	return out
}

// HiddenInputs is Inputs restricted to type=hidden.
func HiddenInputs(doc string) map[string]string {
	out := make(map[string]string)
	walk(parse(doc), func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Input {
			t, _ := attr(n, "type")
			if !strings.EqualFold(t, "hidden") {
				return true
			}
			name, ok := attr(n, "name")
			if !ok || name == "" {
				return true
			}
			if _, seen := out[name]; seen {
				return true
			}
			v, _ := attr(n, "value")
			out[name] = v
		}
		return true
	})
	return out
}

// SelectedOption returns the value of the selected <option> of the named
// <select>, else the first option's value, else nil.
func SelectedOption(doc, name string) *string {
	var sel *html.Node
	walk(parse(doc), func(n *html.Node) bool {
		if sel != nil {
			return false
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Select {
			if v, _ := attr(n, "name"); v == name {
				sel = n
				return false
			}
		}
		return true
	})
	if sel == nil {
		return nil
	}

	var first, selected *html.Node
	walk(sel, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Option {
			if first == nil {
				first = n
			}
			if _, ok := attr(n, "selected"); ok && selected == nil {
				selected = n
			}
		}
		return true
	})

	pick := selected
	if pick == nil {
		pick = first
	}
	if pick == nil {
		return nil
	}
	v := optionValue(pick)
	return &v
}

func optionValue(n *html.Node) string {
	if v, ok := attr(n, "value"); ok {
		return v
	}
	return collapse(text(n))
}

// RadioSelection finds the checked radio input named group. HiddenValue is
// the first quoted argument of its onclick attribute, if any.
func RadioSelection(doc, group string) Radio {
	var res Radio
	walk(parse(doc), func(n *html.Node) bool {
		if res.RadioValue != nil {
			return false
		}
		if n.Type != html.ElementNode || n.DataAtom != atom.Input {
			return true
		}
		t, _ := attr(n, "type")
		name, _ := attr(n, "name")
		if !strings.EqualFold(t, "radio") || name != group {
			return true
		}
		if _, checked := attr(n, "checked"); !checked {
			return true
		}
		v, _ := attr(n, "value")
		res.RadioValue = &v
		if onclick, ok := attr(n, "onclick"); ok {
			if hv, ok := firstQuoted(onclick); ok {
				res.HiddenValue = &hv
			}
		}
		return false
	})
	return res
}

func firstQuoted(s string) (string, bool) {
	for i := 0; i < len(s); i++ {
		q := s[i]
		if q != '\'' && q != '"' {
			continue
		}
		end := strings.IndexByte(s[i+1:], q)
		if end < 0 {
			return "", false
		}
		return s[i+1 : i+1+end], true
	}
	return "", false
}

// ParseTable returns the table with the given id. The first row (th or td)
// becomes the header; data rows are padded or truncated to header width.
func ParseTable(doc, id string) Table {
	var tbl *html.Node
	walk(parse(doc), func(n *html.Node) bool {
		if tbl != nil {
			return false
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Table {
			if v, _ := attr(n, "id"); v == id {
				tbl = n
				return false
			}
		}
		return true
	})

	out := Table{Headers: []string{}, Rows: [][]string{}}
	if tbl == nil {
		return out
	}

	for i, tr := range rows(tbl) {
		cells := cellTexts(tr)
		if i == 0 {
			out.Headers = cells
			continue
		}
		out.Rows = append(out.Rows, fit(cells, len(out.Headers)))
	}
	return out
}

// rows collects <tr> elements belonging to tbl, not to nested tables.
func rows(tbl *html.Node) []*html.Node {
	var out []*html.Node
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Tr:
				out = append(out, c)
			case atom.Table:
			default:
				visit(c)
			}
		}
	}
	visit(tbl)
	return out
}

func cellTexts(tr *html.Node) []string {
	cells := []string{}
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Td || c.DataAtom == atom.Th) {
			cells = append(cells, collapse(text(c)))
		}
	}
	return cells
}

func fit(cells []string, n int) []string {
	if n == 0 {
		return cells
	}
	out := make([]string, n)
	copy(out, cells)
	return out
}

// text concatenates descendant text nodes; entities are already decoded by
// the parser. Scripts and styles are skipped.
func text(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Script || c.DataAtom == atom.Style) {
			return false
		}
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			b.WriteByte(' ')
		}
		return true
	})
	return b.String()
}

func collapse(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// Text returns the whitespace-collapsed text of the whole document.
func Text(doc string) string {
	return collapse(text(parse(doc)))
}

// Index returns the position of the first header equal to one of names,
// comparing letters and digits only and ignoring case. It returns -1 when
// no header matches.
func (t Table) Index(names ...string) int {
	for _, n := range names {
		want := headerKey(n)
		for i, h := range t.Headers {
			if headerKey(h) == want {
				return i
			}
		}
	}
	return -1
}

// Cell returns row's value under the first matching header, or "".
func (t Table) Cell(row []string, names ...string) string {
	i := t.Index(names...)
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func headerKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
