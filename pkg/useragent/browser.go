package useragent

import (
	"regexp"
	"strings"
)

// Browser represents browser information
type Browser struct {
	Name    string
	Version string
}

type browserPattern struct {
	name     string
	keywords []string // any of them must match
	excludes []string
	version  *regexp.Regexp
}

// Checked top to bottom. Chromium forks advertise "chrome" too, so they come
// before Chrome; Safari is last because nearly every WebKit UA mentions it.
var browserPatterns = []browserPattern{
	{name: BrowserEdge, keywords: []string{"edg/", "edge/", "edga/", "edgios/"}, version: regexp.MustCompile(`(?:edge|edg|edga|edgios)/([\d.]+)`)},
	{name: BrowserSamsung, keywords: []string{"samsungbrowser"}, version: regexp.MustCompile(`samsungbrowser/([\d.]+)`)},
	{name: BrowserUC, keywords: []string{"ucbrowser"}, version: regexp.MustCompile(`ucbrowser/([\d.]+)`)},
	{name: BrowserYandex, keywords: []string{"yabrowser", "yandexbrowser"}, version: regexp.MustCompile(`(?:yabrowser|yandexbrowser)/([\d.]+)`)},
	{name: BrowserVivaldi, keywords: []string{"vivaldi"}, version: regexp.MustCompile(`vivaldi/([\d.]+)`)},
	{name: BrowserBrave, keywords: []string{"brave"}, version: regexp.MustCompile(`brave/([\d.]+)`)},
	{name: BrowserOpera, keywords: []string{"opr/", "opera"}, version: regexp.MustCompile(`(?:opr|opera)[/ ]([\d.]+)`)},
	{name: BrowserChrome, keywords: []string{"chrome/", "crios/"}, version: regexp.MustCompile(`(?:chrome|crios)/([\d.]+)`)},
	{name: BrowserFirefox, keywords: []string{"firefox/", "fxios/"}, version: regexp.MustCompile(`(?:firefox|fxios)/([\d.]+)`)},
	{name: BrowserIE, keywords: []string{"msie "}, version: regexp.MustCompile(`msie ([\d.]+)`)},
	{name: BrowserSafari, keywords: []string{"safari"}, excludes: []string{"chrome", "android"}, version: regexp.MustCompile(`version/([\d.]+)`)},
}

func (p browserPattern) match(lowerUA string) bool {
	for _, ex := range p.excludes {
		if strings.Contains(lowerUA, ex) {
			return false
		}
	}
	for _, kw := range p.keywords {
		if strings.Contains(lowerUA, kw) {
			return true
		}
	}
	return false
}

// ParseBrowser parses the browser name and version from a lower-cased UA string.
func ParseBrowser(lowerUA string) Browser {
	// IE 11 dropped the MSIE token.
	if strings.Contains(lowerUA, "trident/") && !strings.Contains(lowerUA, "msie") {
		return Browser{Name: BrowserIE, Version: "11.0"}
	}

	for _, p := range browserPatterns {
		if !p.match(lowerUA) {
			continue
		}
		var version string
		if m := p.version.FindStringSubmatch(lowerUA); len(m) > 1 {
			version = m[1]
			if len(version) > 20 {
				version = version[:20]
			}
		}
		return Browser{Name: p.name, Version: version}
	}

	return Browser{Name: BrowserUnknown}
}
