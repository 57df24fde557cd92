package dom

import (
	"embed"
	"encoding/csv"
	"io"
	"strings"
	"unicode"

	"github.com/psilva261/minimal/logger"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/net/html"
)

// CSS properties from https://www.w3.org/Style/CSS/all-properties.en.tab

//go:embed all-properties.en.tab
var allPropertiesTab embed.FS

var allProperties = make(map[string]bool)

func init() {
	f, err := allPropertiesTab.Open("all-properties.en.tab")
	if err != nil {
		panic(err.Error())
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.Comma = '\t'
	rcs, err := r.ReadAll()
	if err != nil {
		panic(err.Error())
	}
	for _, rc := range rcs {
		allProperties[rc[0]] = true
	}
}

// Style represents the inline CSSStyleDeclaration of an element
type Style struct {
	d *Document
	n *html.Node
}

type declaration struct {
	k, v string
}

func (s *Style) decls() []declaration {
	return parseStyle(attr(*s.n, "style"))
}

func (s *Style) write(ds []declaration) {
	l := make([]string, 0, len(ds))
	for _, d := range ds {
		l = append(l, d.k+": "+d.v+";")
	}
	s.d.setAttr(s.n, "", "style", strings.Join(l, " "))
}

func (s *Style) Length() int {
	return len(s.decls())
}

func (s *Style) CSSText() string {
	return attr(*s.n, "style")
}

func (s *Style) SetCSSText(t string) {
	s.d.setAttr(s.n, "", "style", t)
}

func (s *Style) GetPropertyValue(p string) string {
	p = propertyName(p)
	for _, d := range s.decls() {
		if d.k == p {
			return d.v
		}
	}
	return ""
}

// SetProperty sets p to v. Unknown properties and values that would
// escape the declaration are rejected. An empty value removes p.
func (s *Style) SetProperty(p, v string) error {
	p = propertyName(p)
	if !strings.HasPrefix(p, "--") && !allProperties[p] {
		return ErrSyntax("unknown property " + p)
	}
	if strings.ContainsAny(v, ";{}") {
		return ErrSyntax("invalid value for " + p + ": " + v)
	}
	v = strings.TrimSpace(v)
	if v == "" {
		s.RemoveProperty(p)
		return nil
	}
	ds := s.decls()
	for i, d := range ds {
		if d.k == p {
			ds[i].v = v
			s.write(ds)
			return nil
		}
	}
	s.write(append(ds, declaration{k: p, v: v}))
	return nil
}

// RemoveProperty returns the removed value.
func (s *Style) RemoveProperty(p string) (old string) {
	p = propertyName(p)
	ds := s.decls()
	for i, d := range ds {
		if d.k == p {
			s.write(append(ds[:i], ds[i+1:]...))
			return d.v
		}
	}
	return ""
}

func propertyName(p string) string {
	p = strings.TrimSpace(p)
	if strings.HasPrefix(p, "--") {
		return p
	}
	return strings.ToLower(kebab(p))
}

func kebab(k string) string {
	if strings.Contains(k, "-") {
		return k
	}
	var b strings.Builder
	for _, r := range k {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// parseStyle keeps declaration order, later duplicates win.
func parseStyle(st string) (ds []declaration) {
	p := css.NewParser(parse.NewInputString(st), true)
	for {
		gt, _, data := p.Next()
		if gt == css.ErrorGrammar {
			break
		} else if gt == css.DeclarationGrammar || gt == css.CustomPropertyGrammar {
			k := string(data)
			if gt == css.DeclarationGrammar {
				k = strings.ToLower(k)
			}
			v := ""
			for _, val := range p.Values() {
				v += string(val.Data)
			}
			v = strings.TrimSpace(v)
			replaced := false
			for i := range ds {
				if ds[i].k == k {
					ds[i].v = v
					replaced = true
				}
			}
			if !replaced {
				ds = append(ds, declaration{k: k, v: v})
			}
		}
	}
	if err := p.Err(); err != nil && err != io.EOF {
		log.Printf("parse style %q: %v", st, err)
	}
	return
}
