package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Bot describes an automated client.
type Bot struct {
	Name     string
	Category string
}

type knownBot struct {
	keyword  string
	name     string
	category string
}

// Ordered: more specific keywords first ("adsbot-google" before "googlebot").
var knownBots = []knownBot{
	{"adsbot-google", "AdsBot Google", BotCategorySearch},
	{"googlebot", "Googlebot", BotCategorySearch},
	{"bingbot", "Bingbot", BotCategorySearch},
	{"yandexbot", "YandexBot", BotCategorySearch},
	{"baiduspider", "Baiduspider", BotCategorySearch},
	{"duckduckbot", "DuckDuckBot", BotCategorySearch},
	{"applebot", "Applebot", BotCategorySearch},
	{"facebookexternalhit", "Facebook External Hit", BotCategorySocial},
	{"twitterbot", "Twitterbot", BotCategorySocial},
	{"linkedinbot", "LinkedInBot", BotCategorySocial},
	{"slackbot", "Slackbot", BotCategorySocial},
	{"telegrambot", "TelegramBot", BotCategorySocial},
	{"discordbot", "Discordbot", BotCategorySocial},
	{"whatsapp", "WhatsApp", BotCategorySocial},
	{"uptimerobot", "UptimeRobot", BotCategoryMonitoring},
	{"pingdom", "Pingdom", BotCategoryMonitoring},
	{"lighthouse", "Lighthouse", BotCategoryMonitoring},
	{"curl/", "curl", BotCategoryTool},
	{"wget/", "Wget", BotCategoryTool},
	{"python-requests", "Python Requests", BotCategoryTool},
	{"go-http-client", "Go HTTP Client", BotCategoryTool},
}

var (
	botKeywords = newKeywordSet("bot", "spider", "crawler", "archiver", "slurp", "facebookexternalhit",
		"whatsapp", "lighthouse", "pingdom", "monitor", "validator", "fetcher", "scraper", "headless",
		"curl/", "wget/", "python-requests", "go-http-client")

	botNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)([a-z0-9\-_]+bot)`),
		regexp.MustCompile(`(?i)([a-z0-9\-_]+spider)`),
		regexp.MustCompile(`(?i)([a-z0-9\-_]+crawler)`),
	}
)

// IsBot reports whether a lower-cased UA string belongs to an automated client.
// iOS device tokens win over bot keywords, some app UAs mention "bot" in
// unrelated product names.
func IsBot(lowerUA string) bool {
	if lowerUA == "" || strings.Contains(lowerUA, "iphone") || strings.Contains(lowerUA, "ipad") {
		return false
	}
	return botKeywords.contains(lowerUA)
}

// DetectBot identifies a bot by name and category. The name falls back to a
// title-cased token ending in bot/spider/crawler, then to "Unknown Bot".
func DetectBot(ua string) Bot {
	lowerUA := strings.ToLower(ua)
	for _, kb := range knownBots {
		if strings.Contains(lowerUA, kb.keyword) {
			return Bot{Name: kb.name, Category: kb.category}
		}
	}

	title := cases.Title(language.English)
	for _, pattern := range botNamePatterns {
		if m := pattern.FindStringSubmatch(ua); len(m) > 1 {
			return Bot{Name: title.String(strings.ToLower(m[1])), Category: BotCategoryCrawler}
		}
	}
	return Bot{Name: "Unknown Bot", Category: BotCategoryCrawler}
}
