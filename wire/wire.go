// Package wire reduces the protocol's raw post shapes to the canonical
// domain.Post. The protocol API has gone through several schema
// generations and different endpoints still answer with different shapes:
// a post may arrive directly, nested under a "post" field, with typed
// image/video metadata, with a bare image field, or with a generic
// attachments or media array. Each shape is one probe in a fixed priority
// order; adding a new shape is one new probe.
package wire

import "encoding/json"

// rawPost is the structural superset of every post shape we accept.
// Fields a given shape does not carry simply stay zero.
type rawPost struct {
	// Wrapper shape: the actual post nested one level down.
	Post json.RawMessage `json:"post"`

	ID        string       `json:"id"`
	Author    rawAuthor    `json:"author"`
	Metadata  *rawMetadata `json:"metadata"`
	Timestamp string       `json:"timestamp"`
	CreatedAt string       `json:"createdAt"`
	Stats     rawStats     `json:"stats"`

	// Reply relation, either as a nested reference or a bare ID.
	CommentOn *rawPostRef `json:"commentOn"`
	ReplyTo   string      `json:"replyTo"`
}

type rawPostRef struct {
	ID string `json:"id"`
}

type rawAuthor struct {
	Address  string       `json:"address"`
	Username *rawUsername `json:"username"`
}

type rawUsername struct {
	LocalName string `json:"localName"`
	Value     string `json:"value"`
}

type rawMetadata struct {
	Typename    string          `json:"__typename"`
	Content     string          `json:"content"`
	Image       *rawImage       `json:"image"`
	Asset       *rawAsset       `json:"asset"`
	Attachments []rawAttachment `json:"attachments"`
	Media       []rawAttachment `json:"media"`
}

type rawImage struct {
	Item   string `json:"item"`
	URI    string `json:"uri"`
	AltTag string `json:"altTag"`
}

type rawAsset struct {
	URI string `json:"uri"`
}

type rawAttachment struct {
	Type     string `json:"type"`
	MimeType string `json:"mimeType"`
	Item     string `json:"item"`
	URI      string `json:"uri"`
	AltTag   string `json:"altTag"`
}

type rawStats struct {
	Upvotes  uint `json:"upvotes"`
	Comments uint `json:"comments"`
	Reposts  uint `json:"reposts"`
}

func (i rawImage) url() string {
	if i.Item != "" {
		return i.Item
	}
	return i.URI
}

func (a rawAttachment) url() string {
	if a.Item != "" {
		return a.Item
	}
	return a.URI
}
