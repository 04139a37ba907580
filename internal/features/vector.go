package features

// Key names a feature. The set is closed: every Key below maps to exactly one
// field of Vector.
type Key string

// URL feature keys.
const (
	URLLen           Key = "url_len"
	PathLen          Key = "path_len"
	QueryLen         Key = "query_len"
	NumDashes        Key = "num_dashes"
	NumAt            Key = "num_at"
	NumSlashes       Key = "num_slashes"
	HasIP            Key = "has_ip"
	SubdomainCount   Key = "subdomain_count"
	EntropyPath      Key = "entropy_path"
	HasHTTPS         Key = "has_https"
	SuspiciousKW     Key = "suspicious_kw"
	BrandKW          Key = "brand_kw"
	Domain           Key = "domain"
	RegisteredDomain Key = "registered_domain"
)

// HTML feature keys.
const (
	NumForms             Key = "num_forms"
	NumInputs            Key = "num_inputs"
	NumPwInputs          Key = "num_pw_inputs"
	FormActionDiffDomain Key = "form_action_diff_domain"
	FormInsecureHTTP     Key = "form_insecure_http"
	BrandTextHit         Key = "brand_text_hit"
	LogoMismatch         Key = "logo_mismatch"
	OnsubmitHandlers     Key = "onsubmit_handlers"
	HiddenIframes        Key = "hidden_iframes"
)

// URLFeatures is the half of the vector derived from the URL string alone.
type URLFeatures struct {
	URLLen           float64 `json:"url_len"`
	PathLen          float64 `json:"path_len"`
	QueryLen         float64 `json:"query_len"`
	NumDashes        float64 `json:"num_dashes"`
	NumAt            float64 `json:"num_at"`
	NumSlashes       float64 `json:"num_slashes"`
	HasIP            float64 `json:"has_ip"`
	SubdomainCount   float64 `json:"subdomain_count"`
	EntropyPath      float64 `json:"entropy_path"`
	HasHTTPS         float64 `json:"has_https"`
	SuspiciousKW     float64 `json:"suspicious_kw"`
	BrandKW          float64 `json:"brand_kw"`
	Domain           string  `json:"domain"`
	RegisteredDomain string  `json:"registered_domain"`
}

// HTMLFeatures is the half of the vector derived from the page markup.
type HTMLFeatures struct {
	NumForms             float64 `json:"num_forms"`
	NumInputs            float64 `json:"num_inputs"`
	NumPwInputs          float64 `json:"num_pw_inputs"`
	FormActionDiffDomain float64 `json:"form_action_diff_domain"`
	FormInsecureHTTP     float64 `json:"form_insecure_http"`
	BrandTextHit         float64 `json:"brand_text_hit"`
	LogoMismatch         float64 `json:"logo_mismatch"`
	OnsubmitHandlers     float64 `json:"onsubmit_handlers"`
	HiddenIframes        float64 `json:"hidden_iframes"`
}

// Vector is the merged feature vector consumed by the scorer and the
// explanation generator.
type Vector struct {
	URLFeatures
	HTMLFeatures
}

// Merge is the key union of the two halves. They share no keys.
func Merge(u URLFeatures, h HTMLFeatures) Vector {
	return Vector{URLFeatures: u, HTMLFeatures: h}
}

// numericKeys lists every numeric key in a stable order.
var numericKeys = [...]Key{
	URLLen, PathLen, QueryLen, NumDashes, NumAt, NumSlashes, HasIP,
	SubdomainCount, EntropyPath, HasHTTPS, SuspiciousKW, BrandKW,
	NumForms, NumInputs, NumPwInputs, FormActionDiffDomain, FormInsecureHTTP,
	BrandTextHit, LogoMismatch, OnsubmitHandlers, HiddenIframes,
}

// NumericKeys returns every numeric feature key, URL keys first.
func NumericKeys() []Key {
	return append([]Key(nil), numericKeys[:]...)
}

// Value returns the numeric value stored under k. String-valued keys and
// unknown keys read as 0.
func (v Vector) Value(k Key) float64 {
	switch k {
	case URLLen:
		return v.URLLen
	case PathLen:
		return v.PathLen
	case QueryLen:
		return v.QueryLen
	case NumDashes:
		return v.NumDashes
	case NumAt:
		return v.NumAt
	case NumSlashes:
		return v.NumSlashes
	case HasIP:
		return v.HasIP
	case SubdomainCount:
		return v.SubdomainCount
	case EntropyPath:
		return v.EntropyPath
	case HasHTTPS:
		return v.HasHTTPS
	case SuspiciousKW:
		return v.SuspiciousKW
	case BrandKW:
		return v.BrandKW
	case NumForms:
		return v.NumForms
	case NumInputs:
		return v.NumInputs
	case NumPwInputs:
		return v.NumPwInputs
	case FormActionDiffDomain:
		return v.FormActionDiffDomain
	case FormInsecureHTTP:
		return v.FormInsecureHTTP
	case BrandTextHit:
		return v.BrandTextHit
	case LogoMismatch:
		return v.LogoMismatch
	case OnsubmitHandlers:
		return v.OnsubmitHandlers
	case HiddenIframes:
		return v.HiddenIframes
	default:
		return 0
	}
}

// Numeric flattens the numeric half of the vector into feature_name -> value,
// the shape the assessor logs.
func (v Vector) Numeric() map[string]float64 {
	out := make(map[string]float64, len(numericKeys))
	for _, k := range numericKeys {
		out[string(k)] = v.Value(k)
	}
	return out
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
