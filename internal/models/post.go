package models

import "time"

// CommunityPost is an entry in the neighborhood feed. LikesCount and
// CommentsCount are denormalized counters maintained by atomic increments
// at the storage layer, never recomputed from rows.
type CommunityPost struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"userId"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	ImageURL      string     `json:"imageUrl,omitempty"`
	LikesCount    int        `gorm:"not null;default:0" json:"likesCount"`
	CommentsCount int        `gorm:"not null;default:0" json:"commentsCount"`
	IsEvent       bool       `gorm:"default:false" json:"isEvent"`
	EventTitle    string     `json:"eventTitle,omitempty"`
	EventDate     *time.Time `json:"eventDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// PostTag is a free-form label attached to a community post.
type PostTag struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	PostID  uint   `gorm:"not null;index" json:"postId"`
	TagName string `gorm:"not null" json:"tagName"`
}

// PostLike records that a user liked a post. At most one row may exist
// per (post, user) pair; it is the only entity that is ever deleted.
type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"postId"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostDetail is a community post with its author, tags, and the
// requesting user's like state attached for feed responses.
type PostDetail struct {
	CommunityPost
	User      *PublicUser `json:"user,omitempty"`
	Tags      []string    `json:"tags"`
	UserLiked bool        `json:"userLiked"`
}

// LikeResult is the response body of the like toggle endpoint.
type LikeResult struct {
	Liked bool           `json:"liked"`
	Post  *CommunityPost `json:"post"`
}
