package dom

import (
	"net/url"
	"strings"

	"github.com/psilva261/minimal/logger"
)

type Location struct {
	Protocol string
	Host     string
	Hostname string
	Port     string
	Href     string
	Pathname string
	Search   string
	Hash     string
}

func NewLocation(origin string) (l *Location) {
	l = &Location{
		Protocol: "about:",
		Href:     "about:blank",
		Pathname: "blank",
	}
	u, err := url.Parse(origin)
	if err != nil {
		log.Errorf("parse %v: %v", origin, err)
		return
	}
	l.Href = u.String()
	l.Protocol = u.Scheme + ":"
	l.Host = u.Host
	l.Hostname = u.Hostname()
	l.Port = u.Port()
	l.Pathname = u.EscapedPath()
	if u.Opaque != "" {
		l.Pathname = u.Opaque
	}
	if u.RawQuery != "" || u.ForceQuery {
		l.Search = "?" + u.RawQuery
	}
	if u.Fragment != "" {
		l.Hash = "#" + u.EscapedFragment()
	}
	return
}

// SetHash updates the fragment of both Hash and Href.
func (l *Location) SetHash(h string) {
	h = strings.TrimPrefix(h, "#")
	href := l.Href
	if i := strings.Index(href, "#"); i >= 0 {
		href = href[:i]
	}
	if h == "" {
		l.Hash = ""
		l.Href = href + "#"
		return
	}
	l.Hash = "#" + h
	l.Href = href + l.Hash
}

func (l *Location) String() string {
	return l.Href
}
