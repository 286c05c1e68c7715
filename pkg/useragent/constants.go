package useragent

// Device types represent the category of device that made the request
const (
	DeviceTypeBot     = "bot"
	DeviceTypeMobile  = "mobile"
	DeviceTypeTablet  = "tablet"
	DeviceTypeDesktop = "desktop"
	DeviceTypeTV      = "tv"
	DeviceTypeConsole = "console"
	DeviceTypeXR      = "xr"
	DeviceTypeUnknown = "unknown"
)

// Device brands reported by DeviceModel when no exact model is known.
const (
	ModelIPhone  = "iphone"
	ModelIPad    = "ipad"
	ModelSamsung = "samsung"
	ModelHuawei  = "huawei"
	ModelXiaomi  = "xiaomi"
	ModelPixel   = "pixel"
	ModelKindle  = "kindle"
	ModelSurface = "surface"
	ModelAndroid = "android"
)

// Browser name identifiers
const (
	BrowserChrome  = "chrome"
	BrowserFirefox = "firefox"
	BrowserSafari  = "safari"
	BrowserEdge    = "edge"
	BrowserOpera   = "opera"
	BrowserIE      = "ie"
	BrowserSamsung = "samsung"
	BrowserUC      = "uc"
	BrowserBrave   = "brave"
	BrowserVivaldi = "vivaldi"
	BrowserYandex  = "yandex"
	BrowserUnknown = "unknown"
)

// Operating system identifiers
const (
	OSWindows      = "windows"
	OSWindowsPhone = "windows phone"
	OSMacOS        = "macos"
	OSiOS          = "ios"
	OSAndroid      = "android"
	OSLinux        = "linux"
	OSChromeOS     = "chromeos"
	OSHarmonyOS    = "harmonyos"
	OSFireOS       = "fireos"
	OSUnknown      = "unknown"
)

// Bot categories
const (
	BotCategorySearch     = "search engine"
	BotCategorySocial     = "social media"
	BotCategoryMonitoring = "monitoring"
	BotCategoryTool       = "tool"
	BotCategoryCrawler    = "crawler"
)
