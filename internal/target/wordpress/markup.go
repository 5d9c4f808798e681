package wordpress

import (
	"fmt"
	"regexp"
	"strings"

	"post_syncer/internal/domain"
)

const fallbackTitle = "Untitled"

var (
	hashtagPattern = regexp.MustCompile(`#\S+`)
	mentionPattern = regexp.MustCompile(`@\S+`)
)

// ContentHTML turns a raw caption into paragraph markup. Hashtag stripping
// is gated per tenant; mention tokens are always dropped. An empty or
// whitespace-only caption yields an empty fragment.
func ContentHTML(caption string, stripHashtags bool) string {
	if stripHashtags {
		caption = hashtagPattern.ReplaceAllString(caption, "")
	}
	caption = mentionPattern.ReplaceAllString(caption, "")

	var paragraphs []string
	for _, line := range strings.Split(caption, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paragraphs = append(paragraphs, fmt.Sprintf("<p>%s</p>", line))
	}
	return strings.Join(paragraphs, "")
}

// ImageHTML is the embed block for a single re-hosted image.
func ImageHTML(url string) string {
	return fmt.Sprintf("<div style='text-align: center;'><img src='%s' style='margin: 0 auto;' width='500px' height='500px'/></div>", url)
}

// VideoHTML is the embed block for a single re-hosted video.
func VideoHTML(url string) string {
	return fmt.Sprintf("<div style='text-align: center;'><video src='%s' style='margin: 0 auto;' width='500px' height='500px' controls>Sorry, your browser does not support embedded videos.</video></div>", url)
}

// GalleryHTML lists every uploaded asset of a carousel in original order,
// preserving the per-child image/video distinction.
func GalleryHTML(assets []domain.UploadedAsset) string {
	var b strings.Builder
	b.WriteString("<div class='a-root-wordpress-instagram-slider'>")
	for _, asset := range assets {
		switch asset.Kind {
		case domain.KindVideo:
			b.WriteString(VideoHTML(asset.SourceURL))
		default:
			b.WriteString(ImageHTML(asset.SourceURL))
		}
	}
	b.WriteString("</div>")
	return b.String()
}

// Title derives the post title from the first non-empty caption line that is
// not a bare hashtag or mention, capped at ten words.
func Title(caption string) string {
	for _, line := range strings.Split(caption, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "@") {
			continue
		}
		words := strings.Fields(line)
		if len(words) > 10 {
			words = words[:10]
		}
		return strings.Join(words, " ")
	}
	return fallbackTitle
}
