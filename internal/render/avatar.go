package render

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

const photonHost = "i0.wp.com"

// FixAvatar rewrites an avatar URL to request size pixels. Gravatar URLs
// lose their query and get a size and "mystery man" default; anything else
// is routed through the photon resizer.
func FixAvatar(raw string, size int) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}

	if strings.HasSuffix(u.Host, "gravatar.com") {
		u.RawQuery = fmt.Sprintf("s=%d&d=mm", size)
		u.Fragment = ""
		return u.String()
	}

	if u.Host == photonHost {
		u.RawQuery = fmt.Sprintf("resize=%d,%d", size, size)
		u.Fragment = ""
		return u.String()
	}

	return fmt.Sprintf("https://%s/%s%s?resize=%d,%d", photonHost, u.Host, u.EscapedPath(), size, size)
}

// Initials builds the text of an avatar badge from a display name.
func Initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				out = append(out, unicode.ToUpper(r))
				break
			}
		}
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}
