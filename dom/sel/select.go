package sel

import (
	"fmt"
	"github.com/psilva261/minimal/logger"
	"golang.org/x/net/html"
	"strconv"
	"strings"
)

// Select returns the element nodes below (or at) el matching the comma
// separated selector group sel. Each node appears once.
func Select(sel string, el *html.Node, ignoreRoot, rootMustMatchFirst bool) (es []*html.Node, err error) {
	if err := Validate(sel); err != nil {
		return nil, err
	}
	return selectGroup(sel, func(string) (*html.Node, bool) {
		return el, ignoreRoot
	}, rootMustMatchFirst)
}

// SelectScoped evaluates sel over the whole tree containing scope, so
// compound selectors may match ancestors of scope. Group members led by
// :scope or a child combinator are relative to scope. The result still
// contains nodes outside of scope; callers keep the descendants they want.
func SelectScoped(sel string, scope *html.Node) (es []*html.Node, err error) {
	if err := Validate(sel); err != nil {
		return nil, err
	}
	top := scope
	for top.Parent != nil {
		top = top.Parent
	}
	return selectGroup(sel, func(s string) (*html.Node, bool) {
		if f := fields(s); len(f) > 0 && (f[0] == ":scope" || f[0] == ">") {
			return scope, true
		}
		return top, false
	}, false)
}

func selectGroup(sel string, from func(s string) (*html.Node, bool), rootMustMatchFirst bool) (es []*html.Node, err error) {
	seen := make(map[*html.Node]bool)
	for _, s := range splitGroup(spaceCombinators(sel)) {
		el, ignoreRoot := from(s)
		res, err := SelectSingle(s, el, ignoreRoot, rootMustMatchFirst)
		if err != nil {
			return nil, fmt.Errorf("select single %v: %w", s, err)
		}
		for _, e := range res {
			if e.Type == html.ElementNode && !seen[e] {
				seen[e] = true
				es = append(es, e)
			}
		}
	}
	return
}

// Validate reports selectors the engine cannot evaluate.
func Validate(sel string) error {
	sel = spaceCombinators(sel)
	if strings.TrimSpace(sel) == "" {
		return fmt.Errorf("empty selector")
	}
	for _, g := range splitGroup(sel) {
		g = trimSpaces(g)
		if g == "" {
			return fmt.Errorf("empty selector in group %q", sel)
		}
		parts := fields(g)
		if parts[len(parts)-1] == ">" {
			return fmt.Errorf("dangling combinator in %q", g)
		}
		for i, p := range parts {
			if p == ">" {
				if i > 0 && parts[i-1] == ">" {
					return fmt.Errorf("double combinator in %q", g)
				}
				continue
			}
			if err := validateCompound(p); err != nil {
				return fmt.Errorf("%q: %w", p, err)
			}
		}
	}
	return nil
}

func validateCompound(s string) error {
	if strings.Count(s, "[") != strings.Count(s, "]") {
		return fmt.Errorf("unbalanced brackets")
	}
	if strings.Count(s, "(") != strings.Count(s, ")") {
		return fmt.Errorf("unbalanced parentheses")
	}
	l, err := splitBlock(s)
	if err != nil {
		return err
	}
	for i, b := range l {
		switch {
		case strings.HasPrefix(b, "#"), strings.HasPrefix(b, "."):
			if len(b) < 2 {
				return fmt.Errorf("missing name after %v", b)
			}
		case strings.HasPrefix(b, "["):
			if !strings.HasSuffix(b, "]") || len(b) < 3 {
				return fmt.Errorf("malformed attribute selector %v", b)
			}
		case strings.HasPrefix(b, ":"):
			if !knownPseudo(b) {
				return fmt.Errorf("unknown pseudo selector %v", b)
			}
		default:
			if i > 0 || !isTag(b) {
				return fmt.Errorf("invalid type selector %v", b)
			}
		}
	}
	return nil
}

func knownPseudo(q string) bool {
	for _, p := range []string{":has(", ":not(", ":nth-child("} {
		if strings.HasPrefix(q, p) && strings.HasSuffix(q, ")") {
			return true
		}
	}
	return q == ":first-child" || q == ":scope"
}

func isTag(s string) bool {
	if s == "*" {
		return true
	}
	for i, ch := range s {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		case i > 0 && (ch >= '0' && ch <= '9' || ch == '-' || ch == '_'):
		default:
			return false
		}
	}
	return s != ""
}

// splitGroup splits at commas outside of brackets and parentheses
func splitGroup(sel string) (l []string) {
	depth := 0
	start := 0
	for i, ch := range sel {
		switch ch {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		case ',':
			if depth == 0 {
				l = append(l, sel[start:i])
				start = i + 1
			}
		}
	}
	return append(l, sel[start:])
}

// spaceCombinators surrounds child combinators outside of brackets
// and parentheses with spaces: "ul>li" becomes "ul > li".
func spaceCombinators(sel string) string {
	var b strings.Builder
	depth := 0
	for _, ch := range sel {
		switch ch {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		case '>':
			if depth == 0 {
				b.WriteString(" > ")
				continue
			}
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func explode(sel string) (rest string, nthChild int, err error) {
	nthChild = -1
	l, err := splitBlock(sel)
	if err != nil {
		return
	}
	tmp := make([]string, 0, len(l))
	for _, s := range l {
		if strings.HasPrefix(s, ":nth-child(") {
			s = s[11 : len(s)-1]
			nthChild, err = strconv.Atoi(s)
			if err != nil {
				return "", 0, fmt.Errorf("atoi %v: %v", s, err)
			}
		} else if s == ":first-child" {
			nthChild = 1
		} else {
			tmp = append(tmp, s)
		}
	}
	rest = strings.Join(tmp, "")
	return
}

// trimSpaces collapses whitespace between compounds to single spaces.
// Whitespace inside brackets, parentheses or quotes is kept.
func trimSpaces(sel string) string {
	return strings.Join(fields(sel), " ")
}

// fields splits at whitespace outside of brackets, parentheses and quotes
func fields(sel string) (l []string) {
	depth := 0
	var quote rune
	start := -1
	for i, ch := range sel {
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == '[' || ch == '(':
			depth++
		case ch == ']' || ch == ')':
			depth--
		case depth <= 0 && strings.ContainsRune(" \t\n\r\f", ch):
			if start >= 0 {
				l = append(l, sel[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		l = append(l, sel[start:])
	}
	return
}

// SelectSingle selects by one item from a comma separated selector group
func SelectSingle(sel string, el *html.Node, ignoreRoot, rootMustMatchFirst bool) (es []*html.Node, err error) {
	if el.Type == html.TextNode || el.Type == html.CommentNode {
		return
	}
	sels := fields(sel)
	if len(sels) == 0 {
		return
	}
	sel = strings.Join(sels, " ")

	s, nthChild, err := explode(sels[0])
	if err != nil {
		return nil, fmt.Errorf("explode %v: %w", sels[0], err)
	}
	switch {
	case sels[0] == ">":
		sel = strings.Join(sels[1:], " ")
		es, err = SelectSingle(sel, el, ignoreRoot, true)
	case ignoreRoot && s != ":scope":
		for c := el.FirstChild; c != nil; c = c.NextSibling {
			res, err := SelectSingle(sel, c, false, rootMustMatchFirst)
			if err != nil {
				return nil, fmt.Errorf("select single %v: %w", s, err)
			}
			es = append(es, res...)
		}
	default:
		if s == ":scope" || ElementMatchesSingle(s, el, rootMustMatchFirst, nthChild) {
			if len(sels) > 1 {
				rest := strings.Join(sels[1:], " ")
				for c := el.FirstChild; c != nil; c = c.NextSibling {
					res, err := SelectSingle(rest, c, false, false)
					if err != nil {
						return nil, fmt.Errorf("select single %v: %w", s, err)
					}
					es = append(es, res...)
				}
			} else {
				es = append(es, el)
			}
		}
		if !rootMustMatchFirst && s != ":scope" {
			for c := el.FirstChild; c != nil; c = c.NextSibling {
				res, err := SelectSingle(sel, c, false, false)
				if err != nil {
					return nil, fmt.Errorf("select single %v: %w", s, err)
				}
				es = append(es, res...)
			}
		}
	}
	return
}

// ElementMatchesSingle selects 1 cascade at a specific element
func ElementMatchesSingle(sel string, el *html.Node, rootMustMatchFirst bool, nthChild int) bool {
	if el.Type != html.ElementNode {
		return false
	}
	if nthChild >= 0 {
		kth := 1
		for sib := el.PrevSibling; sib != nil; sib = sib.PrevSibling {
			if sib.Type == html.ElementNode {
				kth++
			}
		}
		if kth != nthChild {
			return false
		}
	}
	if sel == "*" || sel == "" {
		return true
	}

	matchesAll := true
	l, err := splitBlock(sel)
	if err != nil {
		log.Errorf("split block %v: %v", sel, err)
		return false
	}
	for _, sel := range l {
		found := false
		if strings.HasPrefix(sel, "#") || strings.HasPrefix(sel, ".") || strings.HasPrefix(sel, "[") || strings.HasPrefix(sel, ":") {
			q := sel
			if strings.HasPrefix(sel, "#") && attr(*el, "id") == strings.ReplaceAll(q[1:], `\\`, ``) {
				found = true
			} else if strings.HasPrefix(sel, ".") && matchesClasses(el, []string{q[1:]}) {
				found = true
			} else if strings.HasPrefix(sel, "[") {
				sel = strings.TrimPrefix(sel, "[")
				sel = strings.TrimSuffix(sel, "]")
				i := strings.Index(sel, "=")
				if i < 0 {
					if hasAttr(*el, sel) {
						found = true
					}
				} else {
					k := sel[:i]
					v := sel[i+1:]
					v = strings.ReplaceAll(v, `"`, ``)
					v = strings.ReplaceAll(v, `'`, ``)
					if hasAttr(*el, k) && attr(*el, k) == v {
						found = true
					}
				}
			} else if strings.HasPrefix(sel, ":") && matchesPseudo(el, q, rootMustMatchFirst) {
				found = true
			}
		} else {
			if strings.ToLower(el.Data) == strings.ToLower(sel) {
				found = true
			}
		}
		if !found {
			matchesAll = false
		}
	}
	return matchesAll
}

func splitBlock(sb string) (l []string, err error) {
	if len(fields(sb)) > 1 {
		return nil, fmt.Errorf("no spaces")
	}
	paranth := false
	bracket := false
	tmp := ""
	flush := func() {
		if tmp != "" && !paranth && !bracket {
			l = append(l, tmp)
			tmp = ""
		}
	}
	for i, ch := range sb {
		switch ch {
		case ']':
			bracket = false
			tmp += string(ch)
			flush()
		case '(':
			if !bracket {
				paranth = true
			}
			tmp += string(ch)
		case ')':
			if !bracket {
				paranth = false
			}
			tmp += string(ch)
		case '.', '#', '[', ':':
			if i < 2 || sb[i-1] != '\\' || sb[i-2] != '\\' {
				flush()
			}
			if ch == '[' && !paranth {
				bracket = true
			}
			tmp += string(ch)
		default:
			tmp += string(ch)
		}
	}
	flush()
	return
}

func matchesPseudo(n *html.Node, q string, rootMustMatchFirst bool) (matches bool) {
	if strings.HasPrefix(q, ":has") {
		q = q[5 : len(q)-1]
		es, err := SelectSingle(q, n, true, false)
		if err != nil {
			log.Errorf("match pseudo %v: %v", q, err)
			return false
		}
		matches = len(es) > 0
	} else if strings.HasPrefix(q, ":not") {
		q = q[5 : len(q)-1]
		rest, nthChild, err := explode(q)
		if err != nil {
			log.Errorf("match pseudo %v: %v", q, err)
			return false
		}
		matches = !ElementMatchesSingle(rest, n, rootMustMatchFirst, nthChild)
	} else if strings.HasPrefix(q, ":nth-child") {
		// handled in SelectSingle (explode)
		matches = true
	} else if q == ":first-child" || q == ":scope" {
		// handled in SelectSingle
		matches = true
	} else {
		log.Errorf("unknown pseudo selector %v", q)
	}
	return
}

func attr(n html.Node, key string) (val string) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return
}

func hasAttr(n html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func matchesClasses(n *html.Node, qs []string) bool {
	s := attr(*n, "class")
	cls := classes(s)
	for _, q := range qs {
		found := false
		for _, cl := range cls {
			if cl == q {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func classes(cls string) (res []string) {
	return strings.Fields(cls)
}
