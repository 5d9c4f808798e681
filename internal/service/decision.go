package service

import (
	"time"

	"post_syncer/internal/domain"
)

// SelectTargets computes the media that must be synced now: not evaluated
// before, not older than the tenant's start date, carrying a media URL, and
// of an allowed kind. Input order (oldest-first) is preserved, which fixes
// the publish order. Pure and deterministic.
func SelectTargets(media []domain.Media, prior []domain.SyncRecord, startDate time.Time, allowed map[domain.MediaKind]bool) []domain.Media {
	seen := make(map[string]struct{}, len(prior))
	for _, record := range prior {
		seen[record.MediaID] = struct{}{}
	}

	start := startDate.UTC()

	var targets []domain.Media
	for _, m := range media {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		if m.Timestamp.UTC().Before(start) {
			continue
		}
		if m.MediaURL == "" {
			continue
		}
		if !allowed[m.Kind] {
			continue
		}
		targets = append(targets, m)
	}
	return targets
}

// SelectSkipped returns fetched media with no prior record that the filter
// rejected. Recording them with a null link keeps them out of the next
// fetch-and-compare cycle, which saves source API requests. Media that were
// selected but failed to publish are deliberately not included so they get
// retried.
func SelectSkipped(media []domain.Media, prior []domain.SyncRecord, targets []domain.Media) []domain.Media {
	seen := make(map[string]struct{}, len(prior)+len(targets))
	for _, record := range prior {
		seen[record.MediaID] = struct{}{}
	}
	for _, t := range targets {
		seen[t.ID] = struct{}{}
	}

	var skipped []domain.Media
	for _, m := range media {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		skipped = append(skipped, m)
	}
	return skipped
}
