package ledger

import (
	"errors"
	"fmt"
	"github.com/QuangTung97/campaign-ledger/model"
	"net/url"
	"strings"
)

// Link is a validated content item url
type Link struct {
	URL      string
	Platform model.Platform
}

var hostPlatforms = map[string]model.Platform{
	"youtube.com":   model.PlatformYouTube,
	"m.youtube.com": model.PlatformYouTube,
	"youtu.be":      model.PlatformYouTube,

	"instagram.com": model.PlatformInstagram,

	"tiktok.com":    model.PlatformTikTok,
	"m.tiktok.com":  model.PlatformTikTok,
	"vm.tiktok.com": model.PlatformTikTok,
	"vt.tiktok.com": model.PlatformTikTok,

	"twitter.com":        model.PlatformTwitter,
	"mobile.twitter.com": model.PlatformTwitter,
	"x.com":              model.PlatformTwitter,

	"facebook.com":   model.PlatformFacebook,
	"m.facebook.com": model.PlatformFacebook,

	"vimeo.com": model.PlatformVimeo,

	"linkedin.com": model.PlatformLinkedIn,
}

func invalidLink(format string, args ...interface{}) error {
	return &Error{
		Kind: KindInvalidLink,
		Err:  fmt.Errorf(format, args...),
	}
}

// ValidateLink normalizes raw and accepts it only when it points to a single content item
// on an allow-listed platform
func ValidateLink(raw string) (Link, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Link{}, invalidLink("empty link")
	}

	// a scheme-less link like youtu.be/abc gets https, urls inside the query do not count as a scheme
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		u, err = url.Parse("https://" + raw)
		if err != nil {
			return Link{}, &Error{Kind: KindInvalidLink, Err: err}
		}
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return Link{}, invalidLink("unsupported scheme %q", u.Scheme)
	}

	host := strings.ToLower(u.Hostname())
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	platform, ok := hostPlatforms[strings.TrimPrefix(host, "www.")]
	if !ok {
		return Link{}, invalidLink("host %q is not allowed", host)
	}

	if err := matchContentPath(platform, strings.TrimPrefix(host, "www."), u); err != nil {
		return Link{}, &Error{Kind: KindInvalidLink, Err: err}
	}

	return Link{
		URL:      u.String(),
		Platform: platform,
	}, nil
}

func pathSegments(p string) []string {
	var result []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			result = append(result, s)
		}
	}
	return result
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

var errNotContentItem = errors.New("not a content item url")

func matchContentPath(platform model.Platform, host string, u *url.URL) error {
	segs := pathSegments(u.Path)
	n := len(segs)

	switch platform {
	case model.PlatformYouTube:
		if host == "youtu.be" && n == 1 {
			return nil
		}
		if n == 1 && segs[0] == "watch" && u.Query().Get("v") != "" {
			return nil
		}
		if n == 2 && segs[0] == "shorts" {
			return nil
		}

	case model.PlatformInstagram:
		if n == 2 {
			switch segs[0] {
			case "p", "reel", "reels", "tv":
				return nil
			}
		}
		if n == 3 && segs[0] == "stories" {
			return nil
		}

	case model.PlatformTikTok:
		if (host == "vm.tiktok.com" || host == "vt.tiktok.com") && n == 1 {
			return nil
		}
		if n == 3 && strings.HasPrefix(segs[0], "@") && len(segs[0]) > 1 && segs[1] == "video" {
			return nil
		}
		if n == 2 && segs[0] == "video" {
			return nil
		}

	case model.PlatformTwitter:
		if n >= 3 && segs[1] == "status" && isNumeric(segs[2]) {
			return nil
		}

	case model.PlatformFacebook:
		if n == 3 && (segs[1] == "posts" || segs[1] == "videos") {
			return nil
		}
		if n == 2 && segs[0] == "reel" {
			return nil
		}
		if n == 1 && segs[0] == "watch" && u.Query().Get("v") != "" {
			return nil
		}

	case model.PlatformVimeo:
		if n == 1 && isNumeric(segs[0]) {
			return nil
		}

	case model.PlatformLinkedIn:
		if n == 2 && segs[0] == "posts" {
			return nil
		}
		if n == 3 && segs[0] == "feed" && segs[1] == "update" {
			return nil
		}
	}

	return fmt.Errorf("%w: %s", errNotContentItem, u.String())
}
