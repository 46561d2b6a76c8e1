package models

import "time"

// ForumTopic groups threads under a shared subject.
type ForumTopic struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Tags         []string  `json:"tags"`
	Pinned       bool      `json:"pinned,omitempty"`
	LastActivity time.Time `json:"lastActivity"`
	Replies      int       `json:"replies"`
}

// ForumThread is a discussion inside a topic. Replies are ordered newest first.
type ForumThread struct {
	ID        string    `json:"id"`
	TopicID   string    `json:"topicId"`
	AuthorID  string    `json:"authorId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	Replies   []Comment `json:"replies"`
}
