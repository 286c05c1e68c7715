package detector

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/dmitrymomot/devicedetector/pkg/cache"
	"github.com/dmitrymomot/devicedetector/pkg/clienthints"
	"github.com/dmitrymomot/devicedetector/pkg/useragent"
)

// DefaultTTL is how long parse results stay in the cache.
const DefaultTTL = 24 * time.Hour

const keyPrefix = "dd:"

// Result is the classification of one client.
type Result struct {
	DeviceType     string `json:"device_type"`
	DeviceModel    string `json:"device_model,omitempty"`
	OS             string `json:"os"`
	OSVersion      string `json:"os_version,omitempty"`
	Browser        string `json:"browser"`
	BrowserVersion string `json:"browser_version,omitempty"`
	BotName        string `json:"bot_name,omitempty"`
	BotCategory    string `json:"bot_category,omitempty"`
	App            string `json:"app,omitempty"`
}

// IsBot reports whether the client was classified as a bot.
func (r Result) IsBot() bool { return r.DeviceType == useragent.DeviceTypeBot }

// Detector classifies a client from its user agent and client hints.
// Configure it with the setters, then call Parse. A Detector is not safe for
// concurrent configuration; Parse itself only reads.
type Detector struct {
	userAgent             string
	hints                 clienthints.ClientHints
	cache                 cache.Handle
	ttl                   time.Duration
	discardBotInformation bool
	skipBotDetection      bool
	recorder              CacheRecorder
}

// CacheRecorder observes parse cache lookups. result is one of "hit", "miss",
// "error" or "corrupt".
type CacheRecorder interface {
	CacheLookup(result string)
}

// New creates a detector backed by an in-memory static cache.
func New() *Detector {
	return &Detector{
		cache: cache.NewStatic(),
		ttl:   DefaultTTL,
	}
}

// SetUserAgent sets the User-Agent string to classify.
func (d *Detector) SetUserAgent(ua string) { d.userAgent = ua }

// UserAgent returns the configured User-Agent string.
func (d *Detector) UserAgent() string { return d.userAgent }

// SetClientHints sets the client hints used to refine the classification.
func (d *Detector) SetClientHints(hints clienthints.ClientHints) { d.hints = hints }

// ClientHints returns the configured client hints.
func (d *Detector) ClientHints() clienthints.ClientHints { return d.hints }

// SetCache sets the cache handle. A nil handle restores the static cache.
func (d *Detector) SetCache(h cache.Handle) {
	if h == nil {
		h = cache.NewStatic()
	}
	d.cache = h
}

// Cache returns the active cache handle. It is never nil.
func (d *Detector) Cache() cache.Handle { return d.cache }

// CacheKind reports which bridge the active cache handle is.
func (d *Detector) CacheKind() cache.Kind { return cache.KindOf(d.cache) }

// SetCacheTTL sets how long results are cached. Zero or less keeps DefaultTTL.
func (d *Detector) SetCacheTTL(ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	d.ttl = ttl
}

// DiscardBotInformation makes Parse flag bots without naming them.
func (d *Detector) DiscardBotInformation(discard bool) { d.discardBotInformation = discard }

// DiscardsBotInformation reports the DiscardBotInformation setting.
func (d *Detector) DiscardsBotInformation() bool { return d.discardBotInformation }

// SkipBotDetection makes Parse classify bots as regular clients.
func (d *Detector) SkipBotDetection(skip bool) { d.skipBotDetection = skip }

// SkipsBotDetection reports the SkipBotDetection setting.
func (d *Detector) SkipsBotDetection() bool { return d.skipBotDetection }

// SetCacheRecorder sets the observer of parse cache lookups. Nil disables it.
func (d *Detector) SetCacheRecorder(r CacheRecorder) { d.recorder = r }

// Parse classifies the configured client.
//
// Results are cached through the active handle. Cache failures never hide a
// classification: the Result is valid whenever err only wraps ErrCache.
func (d *Detector) Parse(ctx context.Context) (Result, error) {
	if strings.TrimSpace(d.userAgent) == "" && d.hints.IsZero() {
		return unknownResult(), ErrNothingToParse
	}

	key := d.cacheKey()
	var cacheErr error

	data, ok, err := d.cache.Fetch(ctx, key)
	switch {
	case err != nil:
		cacheErr = errors.Join(ErrCache, err)
		d.record("error")
	case ok:
		var res Result
		if err := json.Unmarshal(data, &res); err == nil {
			d.record("hit")
			return res, nil
		}
		// Undecodable entries are overwritten below.
		d.record("corrupt")
	default:
		d.record("miss")
	}

	res := d.classify()

	if cacheErr == nil {
		data, err := json.Marshal(res)
		if err == nil {
			err = d.cache.Save(ctx, key, data, d.ttl)
		}
		if err != nil {
			cacheErr = errors.Join(ErrCache, err)
		}
	}

	return res, cacheErr
}

func (d *Detector) record(result string) {
	if d.recorder != nil {
		d.recorder.CacheLookup(result)
	}
}

func (d *Detector) classify() Result {
	var opts []useragent.Option
	if d.skipBotDetection {
		opts = append(opts, useragent.SkipBotDetection())
	}
	if d.discardBotInformation {
		opts = append(opts, useragent.DiscardBotInformation())
	}

	// Unknown and malformed agents still yield partial data for the hints.
	ua, _ := useragent.Parse(d.userAgent, opts...)

	res := Result{
		DeviceType:     ua.DeviceType(),
		DeviceModel:    ua.DeviceModel(),
		OS:             ua.OS(),
		OSVersion:      ua.OSVersion(),
		Browser:        ua.BrowserName(),
		BrowserVersion: ua.BrowserVer(),
		App:            d.hints.App(),
	}

	if bot, ok := ua.Bot(); ok {
		res.BotName = bot.Name
		res.BotCategory = bot.Category
		return res
	}

	applyHints(&res, d.hints)
	return res
}

// cacheKey stays well under cache.RequiredKeyLength and only uses characters
// every backend accepts.
func (d *Detector) cacheKey() string {
	h := sha256.New()
	h.Write([]byte(d.userAgent))
	h.Write([]byte{0})
	h.Write([]byte(d.hints.String()))
	h.Write([]byte{0, flagByte(d.discardBotInformation), flagByte(d.skipBotDetection)})
	return keyPrefix + hex.EncodeToString(h.Sum(nil)[:16])
}

func flagByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func unknownResult() Result {
	return Result{
		DeviceType: useragent.DeviceTypeUnknown,
		OS:         useragent.OSUnknown,
		Browser:    useragent.BrowserUnknown,
	}
}
