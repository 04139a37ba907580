package features

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/raysh454/phishlens/internal/resolver"
)

// ExtractHTMLFeatures derives structural and content features from html as
// served from baseURL, plus selectors for the elements that tripped a
// heuristic. Broken markup is parsed best-effort and never fails.
func ExtractHTMLFeatures(html, baseURL string) (HTMLFeatures, []string) {
	var f HTMLFeatures

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// Only a failing reader gets here; a strings.Reader does not fail.
		return f, nil
	}

	sel := &selectorSet{}
	forms := doc.Find("form")

	f.NumForms = float64(forms.Length())
	f.NumInputs = float64(doc.Find("input").Length())
	f.NumPwInputs = float64(doc.Find("input").FilterFunction(func(_ int, s *goquery.Selection) bool {
		t, ok := s.Attr("type")
		return ok && t == "password"
	}).Length())

	f.BrandTextHit = flag(firstMatch(titleAndDescription(doc), brands[:]) != "")

	checkForms(&f, forms, baseURL, sel)
	checkImages(&f, doc, baseURL, sel)

	f.HiddenIframes = flag(doc.Find("iframe").FilterFunction(func(_ int, s *goquery.Selection) bool {
		w, _ := s.Attr("width")
		h, _ := s.Attr("height")
		return w == "0" || h == "0"
	}).Length() > 0)

	return f, sel.list()
}

// titleAndDescription returns the lower-cased page title and meta
// description joined by a space.
func titleAndDescription(doc *goquery.Document) string {
	blob := doc.Find("title").First().Text()
	meta := doc.Find("meta").FilterFunction(func(_ int, s *goquery.Selection) bool {
		name, _ := s.Attr("name")
		return name == "description"
	}).First()
	if content := getAttr(meta, "content"); content != "" {
		blob += " " + content
	}
	return strings.ToLower(blob)
}

func checkForms(f *HTMLFeatures, forms *goquery.Selection, baseURL string, sel *selectorSet) {
	baseDomain := resolver.Resolve(baseURL).Registrable

	forms.Each(func(_ int, form *goquery.Selection) {
		action := getAttr(form, "action")
		if action != "" {
			target := resolver.ResolveReference(baseURL, action)
			if target.Registrable != baseDomain {
				f.FormActionDiffDomain = 1
				sel.add(formSelector(form))
			}
		}
		if strings.HasPrefix(action, "http://") {
			f.FormInsecureHTTP = 1
		}
		if getAttr(form, "onsubmit") != "" {
			f.OnsubmitHandlers = 1
		}
	})
}

func checkImages(f *HTMLFeatures, doc *goquery.Document, baseURL string, sel *selectorSet) {
	base := strings.ToLower(baseURL)

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := strings.ToLower(getAttr(img, "src"))
		alt := strings.ToLower(getAttr(img, "alt"))

		// Only the first brand that appears in src or alt is considered.
		for _, b := range brands {
			if !strings.Contains(src, b) && !strings.Contains(alt, b) {
				continue
			}
			if !strings.Contains(base, b) {
				f.LogoMismatch = 1
				sel.add(imageSelector(img, b))
			}
			break
		}
	})
}

func formSelector(form *goquery.Selection) string {
	if id := getAttr(form, "id"); id != "" {
		return "form#" + id
	}
	return "form"
}

func imageSelector(img *goquery.Selection, brand string) string {
	if id := getAttr(img, "id"); id != "" {
		return "img#" + id
	}
	if classes := splitClasses(getAttr(img, "class")); len(classes) > 0 {
		return "img." + strings.Join(classes, ".")
	}
	return "img[src*='" + brand + "']"
}

// getAttr safely retrieves a trimmed attribute value from a goquery selection.
func getAttr(sel *goquery.Selection, attrName string) string {
	val, exists := sel.Attr(attrName)
	if exists {
		return strings.TrimSpace(val)
	}
	return ""
}

// helper to split class attribute into tokens
func splitClasses(classAttr string) []string {
	return strings.Fields(classAttr)
}

// selectorSet keeps selectors in first-seen order without duplicates.
type selectorSet struct {
	seen  map[string]struct{}
	items []string
}

func (s *selectorSet) add(selector string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[selector]; ok {
		return
	}
	s.seen[selector] = struct{}{}
	s.items = append(s.items, selector)
}

func (s *selectorSet) list() []string {
	return s.items
}
