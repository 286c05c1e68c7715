package useragent

import (
	"fmt"
	"strings"
)

// UserAgent contains the parsed information from a user agent string
type UserAgent struct {
	userAgent   string
	deviceType  string
	deviceModel string
	os          string
	osVersion   string
	browserName string
	browserVer  string
	bot         *Bot
}

// String returns the user agent as a string
func (ua UserAgent) String() string { return ua.userAgent }

// UserAgent returns the full user agent string
func (ua UserAgent) UserAgent() string { return ua.userAgent }

// DeviceType returns the device type (mobile, desktop, tablet, bot, ...)
func (ua UserAgent) DeviceType() string { return ua.deviceType }

// DeviceModel returns the device brand when known
func (ua UserAgent) DeviceModel() string { return ua.deviceModel }

func (ua UserAgent) OS() string          { return ua.os }
func (ua UserAgent) OSVersion() string   { return ua.osVersion }
func (ua UserAgent) BrowserName() string { return ua.browserName }
func (ua UserAgent) BrowserVer() string  { return ua.browserVer }

// BrowserInfo returns the browser name and version
func (ua UserAgent) BrowserInfo() Browser {
	return Browser{Name: ua.browserName, Version: ua.browserVer}
}

// Bot returns the bot details. ok is false for non-bots; for bots parsed with
// DiscardBotInformation the returned Bot is empty but ok is true.
func (ua UserAgent) Bot() (Bot, bool) {
	if ua.bot == nil {
		return Bot{}, false
	}
	return *ua.bot, true
}

func (ua UserAgent) IsBot() bool     { return ua.deviceType == DeviceTypeBot }
func (ua UserAgent) IsMobile() bool  { return ua.deviceType == DeviceTypeMobile }
func (ua UserAgent) IsDesktop() bool { return ua.deviceType == DeviceTypeDesktop }
func (ua UserAgent) IsTablet() bool  { return ua.deviceType == DeviceTypeTablet }
func (ua UserAgent) IsTV() bool      { return ua.deviceType == DeviceTypeTV }
func (ua UserAgent) IsConsole() bool { return ua.deviceType == DeviceTypeConsole }

// IsUnknown returns true if the device type could not be determined
func (ua UserAgent) IsUnknown() bool {
	return ua.deviceType == DeviceTypeUnknown || ua.deviceType == ""
}

// GetShortIdentifier returns a short human-readable identifier.
// Format: Browser/Version (OS DeviceType), or "Bot: Name" for bots.
func (ua UserAgent) GetShortIdentifier() string {
	if ua.IsBot() {
		name := "Unknown Bot"
		if ua.bot != nil && ua.bot.Name != "" {
			name = ua.bot.Name
		}
		return "Bot: " + name
	}
	if ua.browserName == "" || ua.browserName == BrowserUnknown {
		if ua.os == "" || ua.os == OSUnknown {
			return "Unknown device"
		}
		return fmt.Sprintf("%s %s", title(ua.os), ua.deviceType)
	}
	version := ua.browserVer
	if version == "" {
		version = "?"
	}
	return fmt.Sprintf("%s/%s (%s %s)", title(ua.browserName), version, title(ua.os), ua.deviceType)
}

func title(s string) string {
	switch s {
	case OSiOS:
		return "iOS"
	case OSMacOS:
		return "macOS"
	case "", OSUnknown:
		return "Unknown"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Option changes how Parse treats bots.
type Option func(*parseOptions)

type parseOptions struct {
	skipBotDetection      bool
	discardBotInformation bool
}

// SkipBotDetection classifies bots as regular clients.
func SkipBotDetection() Option {
	return func(o *parseOptions) { o.skipBotDetection = true }
}

// DiscardBotInformation flags bots without resolving their name and category.
func DiscardBotInformation() Option {
	return func(o *parseOptions) { o.discardBotInformation = true }
}

// Parse parses a user agent string.
// The returned UserAgent is usable even when an error is returned.
func Parse(ua string, opts ...Option) (UserAgent, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	if strings.TrimSpace(ua) == "" {
		return UserAgent{userAgent: ua, deviceType: DeviceTypeUnknown, os: OSUnknown, browserName: BrowserUnknown}, ErrEmptyUserAgent
	}

	lowerUA := strings.ToLower(ua)

	if !o.skipBotDetection && IsBot(lowerUA) {
		bot := Bot{}
		if !o.discardBotInformation {
			bot = DetectBot(ua)
		}
		return UserAgent{
			userAgent:   ua,
			deviceType:  DeviceTypeBot,
			os:          OSUnknown,
			browserName: BrowserUnknown,
			bot:         &bot,
		}, nil
	}

	deviceType := ParseDeviceType(lowerUA)
	os := ParseOS(lowerUA)
	browser := ParseBrowser(lowerUA)

	result := UserAgent{
		userAgent:   ua,
		deviceType:  deviceType,
		deviceModel: DeviceModel(lowerUA, deviceType),
		os:          os,
		osVersion:   ParseOSVersion(lowerUA, os),
		browserName: browser.Name,
		browserVer:  browser.Version,
	}

	if deviceType == DeviceTypeUnknown {
		if os == OSUnknown && browser.Name == BrowserUnknown {
			return result, ErrMalformedUserAgent
		}
		return result, ErrUnknownDevice
	}
	return result, nil
}

// New creates a UserAgent from already classified parts.
func New(ua, deviceType, deviceModel, os, osVersion, browserName, browserVer string) UserAgent {
	return UserAgent{
		userAgent:   ua,
		deviceType:  deviceType,
		deviceModel: deviceModel,
		os:          os,
		osVersion:   osVersion,
		browserName: browserName,
		browserVer:  browserVer,
	}
}

// NewBot creates a UserAgent for a bot.
func NewBot(ua string, bot Bot) UserAgent {
	return UserAgent{
		userAgent:   ua,
		deviceType:  DeviceTypeBot,
		os:          OSUnknown,
		browserName: BrowserUnknown,
		bot:         &bot,
	}
}
