// Package site builds absolute URLs and page metadata for the public shop
// directory pages.
package site

import (
	"net/url"
	"strings"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
)

// Name is appended to every page title.
const Name = "FindAMechanic.ca"

// DefaultBaseURL is used when neither SITE_URL nor VERCEL_URL is set.
const DefaultBaseURL = "http://localhost:3000"

const mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="

// ResolveBaseURL picks the public base URL: siteURL when set, else
// https://{vercelURL} when set, else DefaultBaseURL. Trailing slashes are removed.
func ResolveBaseURL(siteURL, vercelURL string) string {
	base := strings.TrimSpace(siteURL)
	if base == "" && strings.TrimSpace(vercelURL) != "" {
		base = "https://" + strings.TrimSpace(vercelURL)
	}
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/")
}

// Robots is the robots directive for a page.
type Robots struct {
	Index  bool `json:"index"`
	Follow bool `json:"follow"`
}

// Page is the metadata rendered into a page head.
type Page struct {
	Title       string `json:"title"`
	FullTitle   string `json:"fullTitle"`
	Description string `json:"description"`
	Canonical   string `json:"canonical"`
	Robots      Robots `json:"robots"`
}

// Site knows the public base URL and the city the directory covers.
type Site struct {
	base string
	city domain.City
}

// New returns a Site rooted at baseURL. baseURL is normalized with
// ResolveBaseURL, so an empty value falls back to DefaultBaseURL.
func New(baseURL string, city domain.City) *Site {
	return &Site{base: ResolveBaseURL(baseURL, ""), city: city}
}

// BaseURL returns the normalized base URL.
func (s *Site) BaseURL() string {
	return s.base
}

// AbsURL joins path onto the base URL, adding a leading slash when missing.
func (s *Site) AbsURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.base + path
}

// ShopPath is the site-relative path of a shop's profile page.
func (s *Site) ShopPath(slug string) string {
	return "/" + s.city.Slug + "/shops/" + slug
}

// ShopPage returns the indexable metadata for a shop profile.
func (s *Site) ShopPage(shop domain.Shop) Page {
	title := shop.Name + " (" + s.city.Name + ")"
	return Page{
		Title:     title,
		FullTitle: title + " | " + Name,
		Description: shop.Name + " in Regina, SK. Services: " + strings.Join(shop.Services, ", ") +
			". Address: " + shop.Address + ". Call or get directions.",
		Canonical: s.AbsURL(s.ShopPath(shop.Slug)),
		Robots:    Robots{Index: true, Follow: true},
	}
}

// NotFoundPage returns the metadata for an unknown slug. The page is kept out
// of the index but its links are followed.
func (s *Site) NotFoundPage(slug string) Page {
	return Page{
		Title:       "Shop not found",
		FullTitle:   "Shop not found | " + Name,
		Description: "Auto repair shop profile not found.",
		Canonical:   s.AbsURL(s.ShopPath(slug)),
		Robots:      Robots{Index: false, Follow: true},
	}
}

// MapsURL returns a Google Maps search link for address.
func MapsURL(address string) string {
	return mapsSearchURL + encodeURIComponent(address)
}

// TelLink returns a tel: URI keeping only digits and '+'.
func TelLink(phone string) string {
	var b strings.Builder
	b.WriteString("tel:")
	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// encodeURIComponent escapes like the browser function of the same name:
// url.QueryEscape writes spaces as '+' and escapes a few marks that
// encodeURIComponent leaves alone.
func encodeURIComponent(s string) string {
	r := strings.NewReplacer("+", "%20", "%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*")
	return r.Replace(url.QueryEscape(s))
}
