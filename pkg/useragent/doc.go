// Package useragent classifies HTTP User-Agent strings.
//
// It identifies:
//   - Bots – name and category (search engine, social media, monitoring, tool, crawler)
//   - Device type – desktop, mobile, tablet, TV, console, XR or unknown
//   - Device brand – iPhone, iPad, Samsung, Pixel, … (mobile and tablet only)
//   - Operating system and its version
//   - Browser name and version
//
// Parsing uses plain-string keyword look-ups and a handful of pre-compiled
// regular expressions.
//
// # Usage
//
//	ua, err := useragent.Parse(r.UserAgent())
//	if err != nil {
//	    // ErrEmptyUserAgent, ErrUnknownDevice, ErrMalformedUserAgent;
//	    // ua is still populated as far as possible
//	}
//
//	if bot, ok := ua.Bot(); ok {
//	    log.Printf("bot=%s category=%s", bot.Name, bot.Category)
//	}
//
// Bot handling can be tuned per call:
//
//	useragent.Parse(s, useragent.SkipBotDetection())      // never report bots
//	useragent.Parse(s, useragent.DiscardBotInformation()) // report bots without details
//
// # Error Handling
//
// Parse returns sentinel errors usable with errors.Is: ErrEmptyUserAgent,
// ErrMalformedUserAgent and ErrUnknownDevice.
package useragent
