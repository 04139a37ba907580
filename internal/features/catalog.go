package features

import "strings"

// suspiciousKeywords and brands are scanned in this order; the first hit
// wins, so the order is part of the behaviour.
var suspiciousKeywords = [...]string{
	"login", "verify", "secure", "update", "account", "confirm",
	"password", "reset", "bank", "invoice", "pay", "wallet",
}

var brands = [...]string{
	"paypal", "microsoft", "apple", "google", "amazon", "facebook",
	"netflix", "bankofamerica", "chase", "wellsfargo", "instagram",
}

// SuspiciousKeywords returns a copy of the keyword catalog in scan order.
func SuspiciousKeywords() []string {
	return append([]string(nil), suspiciousKeywords[:]...)
}

// Brands returns a copy of the brand catalog in scan order.
func Brands() []string {
	return append([]string(nil), brands[:]...)
}

// firstMatch returns the first catalog entry contained in lower, which the
// caller has already lower-cased, or "".
func firstMatch(lower string, catalog []string) string {
	for _, c := range catalog {
		if strings.Contains(lower, c) {
			return c
		}
	}
	return ""
}
