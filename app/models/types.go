package models

import "time"

// DateLayout is the calendar date format stored on posts and comments.
const DateLayout = "2006-01-02"

// Post represents a blog post with comments.
type Post struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Date      string     `json:"date"`
	Content   string     `json:"content"`
	Excerpt   string     `json:"excerpt"`
	ImageURL  string     `json:"image_url,omitempty"`
	Tags      string     `json:"tags,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Comments  []*Comment `json:"-"`
}

// Comment represents a comment on a blog post.
type Comment struct {
	ID        int       `json:"id"`
	PostID    int       `json:"post_id"`
	Author    string    `json:"author"`
	Text      string    `json:"comment_text"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	Post      *Post     `json:"-"`
}
