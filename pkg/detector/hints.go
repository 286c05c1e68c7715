package detector

import (
	"strings"

	"github.com/dmitrymomot/devicedetector/pkg/clienthints"
	"github.com/dmitrymomot/devicedetector/pkg/useragent"
)

var platforms = map[string]string{
	"windows":   useragent.OSWindows,
	"macos":     useragent.OSMacOS,
	"mac os x":  useragent.OSMacOS,
	"ios":       useragent.OSiOS,
	"android":   useragent.OSAndroid,
	"linux":     useragent.OSLinux,
	"chrome os": useragent.OSChromeOS,
	"chromeos":  useragent.OSChromeOS,
	"harmonyos": useragent.OSHarmonyOS,
	"fire os":   useragent.OSFireOS,
}

var brandNames = map[string]string{
	"google chrome":    useragent.BrowserChrome,
	"microsoft edge":   useragent.BrowserEdge,
	"opera":            useragent.BrowserOpera,
	"opera gx":         useragent.BrowserOpera,
	"brave":            useragent.BrowserBrave,
	"vivaldi":          useragent.BrowserVivaldi,
	"yandex":           useragent.BrowserYandex,
	"yabrowser":        useragent.BrowserYandex,
	"samsung internet": useragent.BrowserSamsung,
}

// applyHints overlays client hints on a user agent classification.
// A present hint wins over the parsed value.
func applyHints(res *Result, hints clienthints.ClientHints) {
	if hints.IsZero() {
		return
	}

	if hints.IsMobile() && (res.DeviceType == useragent.DeviceTypeUnknown || res.DeviceType == useragent.DeviceTypeDesktop) {
		res.DeviceType = useragent.DeviceTypeMobile
	}

	if os, ok := platforms[strings.ToLower(hints.Platform())]; ok {
		if os != res.OS {
			res.OSVersion = ""
		}
		res.OS = os
		if v := hints.PlatformVersion(); v != "" {
			res.OSVersion = v
		}
		if res.DeviceType == useragent.DeviceTypeUnknown && !hints.IsMobile() {
			switch os {
			case useragent.OSWindows, useragent.OSMacOS, useragent.OSLinux, useragent.OSChromeOS:
				res.DeviceType = useragent.DeviceTypeDesktop
			}
		}
	}

	if m := hints.Model(); m != "" {
		res.DeviceModel = m
	}

	if name, version, ok := browserFromBrands(hints.Brands()); ok {
		res.Browser = name
		if version != "" {
			res.BrowserVersion = version
		}
		if full := hints.FullVersion(); full != "" && strings.HasPrefix(full, res.BrowserVersion+".") {
			res.BrowserVersion = full
		}
	}
}

// browserFromBrands picks the most specific brand. Chromium is only used when
// nothing more specific is listed; GREASE entries are ignored.
func browserFromBrands(brands []clienthints.Brand) (string, string, bool) {
	var chromium *clienthints.Brand
	for i, b := range brands {
		lower := strings.ToLower(b.Name)
		if isGrease(lower) {
			continue
		}
		if name, ok := brandNames[lower]; ok {
			return name, b.Version, true
		}
		if lower == "chromium" && chromium == nil {
			chromium = &brands[i]
		}
	}
	if chromium != nil {
		return useragent.BrowserChrome, chromium.Version, true
	}
	return "", "", false
}

func isGrease(lowerName string) bool {
	return strings.Contains(lowerName, "not") && strings.Contains(lowerName, "brand")
}
