package bitsearch

import (
	"net/url"
	"strings"
)

// InfoHash returns the lowercased BitTorrent info hash from a magnet URI,
// or "" if the URI carries no btih exact topic.
func InfoHash(magnet string) string {
	u, err := url.Parse(magnet)
	if err != nil || !strings.EqualFold(u.Scheme, "magnet") {
		return ""
	}

	for _, xt := range u.Query()["xt"] {
		const prefix = "urn:btih:"
		if len(xt) > len(prefix) && strings.EqualFold(xt[:len(prefix)], prefix) {
			return strings.ToLower(xt[len(prefix):])
		}
	}
	return ""
}
