package features

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/raysh454/phishlens/internal/resolver"
)

var ipv4Host = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+$`)

// ExtractURLFeatures derives lexical and statistical features from the URL
// string alone. It never fails: whatever cannot be parsed reads as 0 or "".
func ExtractURLFeatures(rawURL string) URLFeatures {
	lower := strings.ToLower(rawURL)
	parts := resolver.Resolve(rawURL)

	f := URLFeatures{
		URLLen:           float64(utf8.RuneCountInString(rawURL)),
		NumDashes:        float64(strings.Count(rawURL, "-")),
		NumAt:            float64(strings.Count(rawURL, "@")),
		NumSlashes:       float64(strings.Count(rawURL, "/")),
		HasIP:            flag(ipv4Host.MatchString(parts.Host)),
		SubdomainCount:   float64(len(parts.Subdomains)),
		HasHTTPS:         flag(parts.Scheme == "https"),
		SuspiciousKW:     flag(firstMatch(lower, suspiciousKeywords[:]) != ""),
		BrandKW:          flag(firstMatch(lower, brands[:]) != ""),
		Domain:           parts.Domain(),
		RegisteredDomain: parts.Domain(),
	}

	path, query := pathAndQuery(rawURL)
	f.PathLen = float64(utf8.RuneCountInString(path))
	f.QueryLen = float64(utf8.RuneCountInString(query))

	pathQuery := path
	if query != "" {
		pathQuery += "?" + query
	}
	f.EntropyPath = ShannonEntropy(pathQuery)

	return f
}

// pathAndQuery returns the path and query of rawURL as written, before any
// unescaping. Params after ';' in the last segment are not part of the path.
func pathAndQuery(rawURL string) (string, string) {
	raw := resolver.Split(strings.TrimSpace(rawURL))
	return raw.Path, raw.Query
}
