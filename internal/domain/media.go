package domain

import "time"

// MediaKind mirrors the source platform's media_type values.
type MediaKind string

const (
	KindImage    MediaKind = "IMAGE"
	KindVideo    MediaKind = "VIDEO"
	KindCarousel MediaKind = "CAROUSEL_ALBUM"
)

// Media is one fetched unit of source content. It is never persisted
// verbatim; only its id and derived sync metadata end up in storage.
type Media struct {
	ID        string
	Caption   string
	MediaURL  string
	Timestamp time.Time
	Kind      MediaKind
	Permalink string
	Children  []MediaChild
}

// MediaChild is one entry of a carousel post.
type MediaChild struct {
	ID       string
	MediaURL string
	Kind     MediaKind
}

// UploadedAsset describes a piece of media after it has been re-hosted on
// the target site. It only lives long enough to compose the post markup.
type UploadedAsset struct {
	MediaID   int64
	Kind      MediaKind
	SourceURL string
}

// PublishResult is returned for every media that became a WordPress post.
type PublishResult struct {
	MediaID       string
	Timestamp     time.Time
	MediaURL      string
	Permalink     string
	WordpressLink string
}
