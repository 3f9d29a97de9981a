package normalize

import (
	"net/url"
	"path"
	"strings"
)

// imageExtensions are the accepted raster/vector types. A path with no
// extension at all is also accepted (CDN-style URLs).
var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
	".bmp":  {},
	".tiff": {},
	".avif": {},
	".svg":  {},
}

// ValidateImageURL returns raw when it is a syntactically valid http(s) URL
// whose path extension is a known image type or absent, and "" otherwise.
func ValidateImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}

	ext := strings.ToLower(path.Ext(u.Path))
	if ext == "" {
		return raw
	}
	if _, ok := imageExtensions[ext]; ok {
		return raw
	}
	return ""
}
