// Package resolver splits a URL into its scheme, host, registrable domain and
// subdomain labels using the public suffix list.
package resolver

import (
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// Parts is the decomposition of a URL. The zero value is what a malformed
// URL resolves to.
type Parts struct {
	Scheme      string
	Host        string
	Registrable string
	Subdomains  []string
}

// Domain returns the registrable domain, or the bare host when the host has
// none (IP literals, single-label hosts).
func (p Parts) Domain() string {
	if p.Registrable != "" {
		return p.Registrable
	}
	return p.Host
}

// IsIP reports whether the host is an IP literal.
func (p Parts) IsIP() bool {
	return p.Host != "" && net.ParseIP(p.Host) != nil
}

// Resolve never fails. Anything it cannot make sense of comes back empty. A
// path or query that does not parse does not affect the host.
//
// Examples:
//
//	"https://www.mail.example.co.uk/x" -> {https, www.mail.example.co.uk, example.co.uk, [www mail]}
//	"https://bank.example.com/50%off"  -> {https, bank.example.com, example.com, [bank]}
//	"http://192.168.0.1/login"         -> {http, 192.168.0.1, "", []}
//	"example.com/login"                -> {}
func Resolve(rawURL string) Parts {
	u, err := parseLenient(rawURL)
	if err != nil || u.Scheme == "" {
		return Parts{}
	}
	return fromURL(u)
}

// ResolveReference resolves ref against base (relative -> absolute) and then
// resolves the result. An absolute ref does not need a usable base; anything
// else that fails to parse yields empty Parts.
func ResolveReference(base, ref string) Parts {
	r, err := parseLenient(ref)
	if err != nil {
		return Parts{}
	}
	if r.IsAbs() {
		return fromURL(r)
	}
	b, err := parseLenient(base)
	if err != nil {
		return Parts{}
	}
	abs := b.ResolveReference(r)
	if abs.Scheme == "" {
		return Parts{}
	}
	return fromURL(abs)
}

// parseLenient parses s, and when that fails retries with only the scheme
// and authority kept. Callers use the result for its host alone.
func parseLenient(s string) (*url.URL, error) {
	s = strings.TrimSpace(s)
	u, err := url.Parse(s)
	if err == nil {
		return u, nil
	}
	return url.Parse(Split(s).hostOnly())
}

func fromURL(u *url.URL) Parts {
	p := Parts{Scheme: strings.ToLower(u.Scheme)}

	host := normalizeHost(u.Hostname())
	if host == "" {
		return p
	}
	p.Host = host

	if p.IsIP() || !strings.Contains(host, ".") {
		return p
	}

	registrable := registrableDomain(host)
	if registrable == "" {
		// host is itself a public suffix (e.g. "co.uk")
		return p
	}
	p.Registrable = registrable

	if sub := strings.TrimSuffix(host, registrable); sub != host {
		for _, label := range strings.Split(strings.TrimSuffix(sub, "."), ".") {
			if label != "" {
				p.Subdomains = append(p.Subdomains, label)
			}
		}
	}
	return p
}

// registrableDomain returns the ICANN suffix of host plus one label. Suffixes
// from the private section of the list (github.io, blogspot.com) are treated
// as ordinary domains, so "a.github.io" belongs to "github.io".
func registrableDomain(host string) string {
	suffix, icann := publicsuffix.PublicSuffix(host)
	for !icann {
		i := strings.IndexByte(suffix, '.')
		if i < 0 {
			// unlisted TLD, the implicit "*" rule applies
			break
		}
		suffix, icann = publicsuffix.PublicSuffix(suffix[i+1:])
	}
	if len(host) <= len(suffix) || host[len(host)-len(suffix)-1] != '.' {
		return ""
	}
	rest := host[:len(host)-len(suffix)-1]
	label := rest[strings.LastIndexByte(rest, '.')+1:]
	if label == "" {
		return ""
	}
	return label + "." + suffix
}

// normalizeHost lowercases, drops a trailing root dot and converts IDN
// labels to punycode. Hosts idna rejects are kept lowercased as-is.
func normalizeHost(host string) string {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if host == "" {
		return ""
	}
	if puny, err := idna.Lookup.ToASCII(host); err == nil && puny != "" {
		return puny
	}
	return host
}
