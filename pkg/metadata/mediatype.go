package metadata

import (
	"net/url"
	"path"
	"strings"
)

const DefaultMediaType = "image/jpeg"

var extensionMediaTypes = map[string]string{
	"png":  "image/png",
	"gif":  "image/gif",
	"svg":  "image/svg+xml",
	"mp4":  "video/mp4",
	"webm": "video/webm",
	"mp3":  "audio/mpeg",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
}

// MediaType prefers the type declared by the document and otherwise infers it from
// the extension of the resolved URL.
func MediaType(md *Metadata, resolvedURL string) string {
	if md != nil {
		if md.MediaType != "" {
			return md.MediaType
		}
		if md.MediaTypeSnake != "" {
			return md.MediaTypeSnake
		}
	}

	return MediaTypeFromURL(resolvedURL)
}

func MediaTypeFromURL(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}

	ext := strings.TrimPrefix(strings.ToLower(path.Ext(p)), ".")
	if mt, ok := extensionMediaTypes[ext]; ok {
		return mt
	}

	return DefaultMediaType
}

func IsVideoMedia(mediaType string) bool {
	return strings.Contains(mediaType, "video") || strings.Contains(mediaType, "mp4")
}
