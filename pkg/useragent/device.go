package useragent

import "strings"

// keywordSet optimizes keyword lookups using map structure
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

var (
	tvKeywords      = newKeywordSet("smart-tv", "smarttv", "googletv", "android tv", "appletv", "webos", "tizen", "hbbtv", "bravia")
	consoleKeywords = newKeywordSet("playstation", "xbox", "nintendo", "wiiu")
	xrKeywords      = newKeywordSet("oculusbrowser", "quest", "visionos")
	tabletKeywords  = newKeywordSet("tablet", "kindle", "silk", "playbook")
	mobileKeywords  = newKeywordSet("mobile", "iphone", "ipod", "windows phone", "iemobile", "blackberry", "nokia", "opera mini")
	desktopKeywords = newKeywordSet("windows", "macintosh", "mac os x", "linux", "x11", "cros")

	samsungWords = newKeywordSet("samsung", "sm-")
	huaweiWords  = newKeywordSet("huawei", "honor", "mediapad")
	xiaomiWords  = newKeywordSet("xiaomi", "redmi", "miui", "poco")
	kindleWords  = newKeywordSet("kindle", "silk", "kftt", "kfjwi")
)

// ParseDeviceType classifies a lower-cased UA string by form factor.
// It does not look for bots; see IsBot.
func ParseDeviceType(lowerUA string) string {
	switch {
	case lowerUA == "":
		return DeviceTypeUnknown
	case strings.Contains(lowerUA, "ipad"):
		return DeviceTypeTablet
	case strings.Contains(lowerUA, "iphone"):
		return DeviceTypeMobile
	case xrKeywords.contains(lowerUA):
		return DeviceTypeXR
	case tvKeywords.contains(lowerUA):
		return DeviceTypeTV
	case consoleKeywords.contains(lowerUA):
		return DeviceTypeConsole
	case strings.Contains(lowerUA, "android"):
		// Android tablets omit the Mobile token, phones carry it.
		if strings.Contains(lowerUA, "mobile") {
			return DeviceTypeMobile
		}
		return DeviceTypeTablet
	case tabletKeywords.contains(lowerUA):
		return DeviceTypeTablet
	case mobileKeywords.contains(lowerUA):
		return DeviceTypeMobile
	case strings.Contains(lowerUA, "windows") && strings.Contains(lowerUA, "touch"):
		return DeviceTypeTablet
	case desktopKeywords.contains(lowerUA):
		return DeviceTypeDesktop
	}
	return DeviceTypeUnknown
}

// DeviceModel returns the device brand for mobile and tablet devices and an
// empty string for every other device type.
func DeviceModel(lowerUA, deviceType string) string {
	if deviceType != DeviceTypeMobile && deviceType != DeviceTypeTablet {
		return ""
	}

	switch {
	case strings.Contains(lowerUA, "iphone"):
		return ModelIPhone
	case strings.Contains(lowerUA, "ipad"):
		return ModelIPad
	case strings.Contains(lowerUA, "windows") && strings.Contains(lowerUA, "touch"):
		return ModelSurface
	case strings.Contains(lowerUA, "pixel"):
		return ModelPixel
	case samsungWords.contains(lowerUA):
		return ModelSamsung
	case huaweiWords.contains(lowerUA):
		return ModelHuawei
	case xiaomiWords.contains(lowerUA):
		return ModelXiaomi
	case kindleWords.contains(lowerUA):
		return ModelKindle
	case strings.Contains(lowerUA, "android"):
		return ModelAndroid
	}
	return ""
}
