package resolver

import "strings"

// RawParts holds the components of a URL exactly as they appear in the
// input. Nothing is unescaped or re-escaped.
type RawParts struct {
	Scheme       string
	HasAuthority bool
	Authority    string
	Path         string
	Params       string
	Query        string
	Fragment     string
}

// Split cuts rawURL into its components without validating any of them, so
// a bad escape in the path never costs the host. Params are the ";..." tail
// of the last path segment.
//
//	"https://a.example.com/50%off;v=1?q=1#top" -> {https, true, a.example.com, /50%off, v=1, q=1, top}
//	"example.com/login"                        -> {"", false, "", example.com/login, "", "", ""}
func Split(rawURL string) RawParts {
	var p RawParts
	rest := rawURL

	if i := strings.IndexByte(rest, ':'); i > 0 && validScheme(rest[:i]) {
		p.Scheme = strings.ToLower(rest[:i])
		rest = rest[i+1:]
	}

	if strings.HasPrefix(rest, "//") {
		p.HasAuthority = true
		rest = rest[2:]
		end := strings.IndexAny(rest, "/?#")
		if end < 0 {
			end = len(rest)
		}
		p.Authority, rest = rest[:end], rest[end:]
	}

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		p.Fragment, rest = rest[i+1:], rest[:i]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		p.Query, rest = rest[i+1:], rest[:i]
	}

	p.Path = rest
	if i := strings.IndexByte(rest[strings.LastIndexByte(rest, '/')+1:], ';'); i >= 0 {
		cut := strings.LastIndexByte(rest, '/') + 1 + i
		p.Path, p.Params = rest[:cut], rest[cut+1:]
	}
	return p
}

// hostOnly rebuilds just enough of the URL to resolve its host. A non-empty
// path collapses to "/".
func (p RawParts) hostOnly() string {
	var b strings.Builder
	if p.Scheme != "" {
		b.WriteString(p.Scheme)
		b.WriteByte(':')
	}
	if p.HasAuthority {
		b.WriteString("//")
		b.WriteString(p.Authority)
	}
	if p.Path != "" {
		b.WriteByte('/')
	}
	return b.String()
}

func validScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return s != ""
}
