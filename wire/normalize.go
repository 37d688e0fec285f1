package wire

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/mrred-labs/redterm/domain"
)

var (
	imageExtRe = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp)$`)
	videoExtRe = regexp.MustCompile(`(?i)\.(mp4|webm|ogg|mov)$`)
)

// Normalize reduces one raw wire object to a canonical post. ok is false
// when the item is invalid: undecodable, missing its ID, or missing a
// parseable timestamp. Callers drop invalid items instead of surfacing
// them; partial feed data is expected.
func Normalize(raw json.RawMessage) (domain.Post, bool) {
	var rp rawPost
	if err := json.Unmarshal(raw, &rp); err != nil {
		return domain.Post{}, false
	}

	// Wrapper shape: the post proper is nested under "post".
	if len(rp.Post) > 0 && string(rp.Post) != "null" {
		return Normalize(rp.Post)
	}

	if rp.ID == "" {
		return domain.Post{}, false
	}

	ts, ok := parseTimestamp(rp.Timestamp, rp.CreatedAt)
	if !ok {
		return domain.Post{}, false
	}

	p := domain.Post{
		ID:            rp.ID,
		AuthorHandle:  authorHandle(rp.Author),
		AuthorAddress: rp.Author.Address,
		Timestamp:     ts,
		Upvotes:       rp.Stats.Upvotes,
		CommentCount:  rp.Stats.Comments,
		RepostCount:   rp.Stats.Reposts,
		ReplyTo:       replyTo(rp),
	}
	if rp.Metadata != nil {
		p.Content = rp.Metadata.Content
		p.Media = extractMedia(rp.Metadata)
	}

	return p, true
}

// NormalizeAll maps a raw page through Normalize, dropping invalid items.
// It returns the number of dropped items so the caller can log them.
func NormalizeAll(raw []json.RawMessage) (posts []domain.Post, dropped int) {
	posts = make([]domain.Post, 0, len(raw))
	for _, item := range raw {
		p, ok := Normalize(item)
		if !ok {
			dropped++
			continue
		}
		posts = append(posts, p)
	}
	return posts, dropped
}

func authorHandle(a rawAuthor) string {
	if a.Username == nil {
		return ""
	}
	if a.Username.LocalName != "" {
		return a.Username.LocalName
	}
	return a.Username.Value
}

func replyTo(rp rawPost) string {
	if rp.CommentOn != nil && rp.CommentOn.ID != "" {
		return rp.CommentOn.ID
	}
	return rp.ReplyTo
}

func parseTimestamp(candidates ...string) (time.Time, bool) {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if ts, err := time.Parse(time.RFC3339, c); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// extractMedia probes the metadata for an attachment, first match wins:
// typed image metadata, typed video metadata, a bare image field, the
// first attachments entry, the first media entry. Nothing matching means
// a text-only post.
func extractMedia(md *rawMetadata) *domain.MediaRef {
	if md.Typename == "ImageMetadata" && md.Image != nil && md.Image.url() != "" {
		return &domain.MediaRef{URL: md.Image.url(), Kind: domain.MediaImage, AltText: md.Image.AltTag}
	}

	if md.Typename == "VideoMetadata" && md.Asset != nil && md.Asset.URI != "" {
		return &domain.MediaRef{URL: md.Asset.URI, Kind: domain.MediaVideo}
	}

	if md.Image != nil && md.Image.url() != "" {
		return &domain.MediaRef{URL: md.Image.url(), Kind: domain.MediaImage, AltText: md.Image.AltTag}
	}

	if len(md.Attachments) > 0 {
		if ref := classifyAttachment(md.Attachments[0]); ref != nil {
			return ref
		}
	}

	if len(md.Media) > 0 {
		if ref := classifyAttachment(md.Media[0]); ref != nil {
			return ref
		}
	}

	return nil
}

// classifyAttachment decides image vs video from the declared type, the
// MIME string, or the file extension on the URL, in that order.
func classifyAttachment(a rawAttachment) *domain.MediaRef {
	url := a.url()
	if url == "" {
		return nil
	}

	switch {
	case strings.Contains(a.Type, "IMAGE"),
		strings.Contains(a.MimeType, "image"),
		imageExtRe.MatchString(url):
		return &domain.MediaRef{URL: url, Kind: domain.MediaImage, AltText: a.AltTag}

	case strings.Contains(a.Type, "VIDEO"),
		strings.Contains(a.MimeType, "video"),
		videoExtRe.MatchString(url):
		return &domain.MediaRef{URL: url, Kind: domain.MediaVideo, AltText: a.AltTag}
	}

	return nil
}
