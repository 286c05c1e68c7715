package useragent

import (
	"regexp"
	"strings"
)

var (
	iOSKeywords      = newKeywordSet("iphone", "ipad", "ipod")
	macOSKeywords    = newKeywordSet("macintosh", "mac os x")
	fireOSKeywords   = newKeywordSet("kindle", "silk", "kftt")
	chromeOSKeywords = newKeywordSet("cros", "chromeos")
	linuxKeywords    = newKeywordSet("linux", "ubuntu", "debian", "fedora", "x11")
)

var osVersionPatterns = map[string]*regexp.Regexp{
	OSWindows:      regexp.MustCompile(`windows nt ([\d.]+)`),
	OSWindowsPhone: regexp.MustCompile(`windows phone(?: os)? ([\d.]+)`),
	OSiOS:          regexp.MustCompile(`(?:iphone|cpu) os ([\d_]+)`),
	OSMacOS:        regexp.MustCompile(`mac os x ([\d_.]+)`),
	OSAndroid:      regexp.MustCompile(`android ([\d.]+)`),
	OSHarmonyOS:    regexp.MustCompile(`harmonyos ([\d.]+)`),
}

// ParseOS identifies the operating system of a lower-cased UA string.
// Order matters: Windows Phone before Windows, Harmony and Fire OS before the
// Android they are based on.
func ParseOS(lowerUA string) string {
	switch {
	case lowerUA == "":
		return OSUnknown
	case strings.Contains(lowerUA, "windows phone"):
		return OSWindowsPhone
	case strings.Contains(lowerUA, "windows"):
		return OSWindows
	case iOSKeywords.contains(lowerUA):
		return OSiOS
	case macOSKeywords.contains(lowerUA):
		return OSMacOS
	case strings.Contains(lowerUA, "harmonyos"):
		return OSHarmonyOS
	case fireOSKeywords.contains(lowerUA):
		return OSFireOS
	case strings.Contains(lowerUA, "android"):
		return OSAndroid
	case chromeOSKeywords.contains(lowerUA):
		return OSChromeOS
	case linuxKeywords.contains(lowerUA):
		return OSLinux
	}
	return OSUnknown
}

// ParseOSVersion extracts the version of os from a lower-cased UA string.
// Underscore-separated versions (iOS, macOS) are returned dot-separated.
func ParseOSVersion(lowerUA, os string) string {
	re, ok := osVersionPatterns[os]
	if !ok {
		return ""
	}
	m := re.FindStringSubmatch(lowerUA)
	if len(m) < 2 {
		return ""
	}
	return strings.ReplaceAll(m[1], "_", ".")
}
