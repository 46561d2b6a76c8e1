package models

import "time"

// ReactionType enumerates the supported post and comment reactions.
type ReactionType string

const (
	ReactionLike       ReactionType = "like"
	ReactionCelebrate  ReactionType = "celebrate"
	ReactionInsightful ReactionType = "insightful"
	ReactionSupport    ReactionType = "support"
)

// MediaType describes what kind of attachment a media item carries.
type MediaType string

const (
	MediaImage    MediaType = "image"
	MediaVideo    MediaType = "video"
	MediaDocument MediaType = "document"
	MediaLink     MediaType = "link"
)

// ContentMedia is an attachment on a post or message.
type ContentMedia struct {
	Type      MediaType `json:"type"`
	URL       string    `json:"url"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	Title     string    `json:"title,omitempty"`
}

// Comment is a reply on a post or forum thread. AuthorID is a weak reference.
type Comment struct {
	ID        string               `json:"id"`
	AuthorID  string               `json:"authorId"`
	Content   string               `json:"content"`
	CreatedAt time.Time            `json:"createdAt"`
	Reactions map[ReactionType]int `json:"reactions"`
}

// FeedPost is a single entry in the community feed. Comments are ordered
// newest first. AuthorID is a weak reference into the user collection.
type FeedPost struct {
	ID                string                  `json:"id"`
	AuthorID          string                  `json:"authorId"`
	Content           string                  `json:"content"`
	CreatedAt         time.Time               `json:"createdAt"`
	Audience          []string                `json:"audience"`
	Tags              []string                `json:"tags"`
	Media             []ContentMedia          `json:"media,omitempty"`
	Comments          []Comment               `json:"comments"`
	Reactions         map[ReactionType]int    `json:"reactions"`
	Reposts           int                     `json:"reposts,omitempty"`
	IsPinned          bool                    `json:"isPinned,omitempty"`
	TranslatedContent map[LanguageCode]string `json:"translatedContent,omitempty"`
}
