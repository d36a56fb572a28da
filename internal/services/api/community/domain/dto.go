// Package domain holds DTOs and ports for the community feed
package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// Limits shared by handlers and the service
const (
	FeedDefault     = 20
	FeedMax         = 50
	HelpLimit       = 50
	RoomLimit       = 50
	MessageLimit    = 200
	LeaderboardSize = 20
	LeaderboardDays = 7
)

// Points per activity in the leaderboard window
const (
	PointsPost    = 5
	PointsComment = 2
	PointsReply   = 3
)

// Profile is a community member
type Profile struct {
	UserID    string    `json:"userId"    example:"u_123"`
	Name      *string   `json:"name"      example:"Ada"`
	Role      *string   `json:"role"      example:"Data Analyst"`
	Bio       *string   `json:"bio"`
	Skills    []string  `json:"skills"`
	Goals     []string  `json:"goals"`
	AvatarURL *string   `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileInput upserts a profile; UserID falls back to the caller identity
type ProfileInput struct {
	UserID    string   `json:"userId"    validate:"omitempty,max=128"`
	Name      *string  `json:"name"      validate:"omitempty,max=120"`
	Role      *string  `json:"role"      validate:"omitempty,max=120"`
	Bio       *string  `json:"bio"       validate:"omitempty,max=2000"`
	Skills    []string `json:"skills"    validate:"omitempty,max=50,dive,max=64"`
	Goals     []string `json:"goals"     validate:"omitempty,max=50,dive,max=200"`
	AvatarURL *string  `json:"avatarUrl" validate:"omitempty,url"`
}

// ProfileResponse wraps a profile; Profile is null when unknown
type ProfileResponse struct {
	Profile *Profile `json:"profile"`
}

// Author is the public slice of a profile shown next to content
type Author struct {
	UserID    string  `json:"userId"`
	Name      *string `json:"name"`
	Role      *string `json:"role"`
	AvatarURL *string `json:"avatarUrl"`
}

// Post is one feed item
type Post struct {
	ID           int64     `json:"id"           example:"1"`
	CreatedAt    time.Time `json:"createdAt"`
	AuthorID     *string   `json:"authorId"     example:"u_123"`
	Content      string    `json:"content"      example:"Landed my first data role!"`
	ImageURL     *string   `json:"imageUrl"`
	LinkURL      *string   `json:"linkUrl"`
	Visibility   string    `json:"visibility"   example:"public"`
	LikeCount    int64     `json:"likeCount"    example:"3"`
	CommentCount int64     `json:"commentCount" example:"1"`
	Author       *Author   `json:"author"`
}

// PostInput creates a post
type PostInput struct {
	UserID     string  `json:"userId"     validate:"omitempty,max=128"`
	Content    string  `json:"content"    validate:"required,max=5000"`
	ImageURL   *string `json:"imageUrl"   validate:"omitempty,url"`
	LinkURL    *string `json:"linkUrl"    validate:"omitempty,url"`
	Visibility string  `json:"visibility" validate:"omitempty,max=32"`
}

// FeedResponse is the feed payload
type FeedResponse struct {
	Posts []Post `json:"posts"`
}

// LikeResponse reports the like state after a toggle
type LikeResponse struct {
	Liked bool `json:"liked" example:"true"`
}

// Comment belongs to a post and may reply to another comment
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	ParentID  *int64    `json:"parentId"`
	CreatedAt time.Time `json:"createdAt"`
	AuthorID  *string   `json:"authorId"`
	Content   string    `json:"content"`
	Author    *Author   `json:"author"`
}

// CommentInput creates a comment
type CommentInput struct {
	UserID   string `json:"userId"   validate:"omitempty,max=128"`
	Content  string `json:"content"  validate:"required,max=2000"`
	ParentID *int64 `json:"parentId" validate:"omitempty,gt=0"`
}

// CommentsResponse lists comments oldest first
type CommentsResponse struct {
	Comments []Comment `json:"comments"`
}

// HelpRequest is a question asked to the community
type HelpRequest struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	AuthorID  *string   `json:"authorId"`
	Title     string    `json:"title"  example:"How do I move from QA to SRE?"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags"`
	Status    *string   `json:"status" example:"open"`
}

// HelpInput creates a help request
type HelpInput struct {
	UserID string   `json:"userId" validate:"omitempty,max=128"`
	Title  string   `json:"title"  validate:"required,max=200"`
	Body   string   `json:"body"   validate:"required,max=5000"`
	Tags   []string `json:"tags"   validate:"omitempty,max=10,dive,max=40"`
}

// HelpResponse lists the latest help requests
type HelpResponse struct {
	Requests []HelpRequest `json:"requests"`
}

// ReplyInput answers a help request
type ReplyInput struct {
	UserID string `json:"userId" validate:"omitempty,max=128"`
	Body   string `json:"body"   validate:"required,max=5000"`
}

// Room is a chat room
type Room struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"  example:"Python learners"`
	Topic     *string   `json:"topic" example:"Beginner to advanced Python discussions"`
	CreatedAt time.Time `json:"createdAt"`
}

// RoomInput creates a room
type RoomInput struct {
	Name  string  `json:"name"  validate:"required,max=100"`
	Topic *string `json:"topic" validate:"omitempty,max=300"`
}

// RoomsResponse lists rooms by id
type RoomsResponse struct {
	Rooms []Room `json:"rooms"`
}

// Message is one chat line
type Message struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"roomId"`
	CreatedAt time.Time `json:"createdAt"`
	AuthorID  *string   `json:"authorId"`
	Body      string    `json:"body"`
}

// MessageInput posts to a room
type MessageInput struct {
	UserID string `json:"userId" validate:"omitempty,max=128"`
	Body   string `json:"body"   validate:"required,max=2000"`
}

// MessagesResponse lists messages oldest first
type MessagesResponse struct {
	Messages []Message `json:"messages"`
}

// LeaderEntry is one leaderboard row
type LeaderEntry struct {
	UserID string  `json:"userId" example:"u_123"`
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Points int64   `json:"points" example:"17"`
}

// LeaderboardResponse is the weekly leaderboard
type LeaderboardResponse struct {
	Leaderboard []LeaderEntry `json:"leaderboard"`
}

// ReportInput flags content for moderation
type ReportInput struct {
	Type   string  `json:"type"   validate:"required,max=32"  example:"post"`
	RefID  RefID   `json:"refId"  validate:"required,max=64"  swaggertype:"string" example:"42"`
	Reason *string `json:"reason" validate:"omitempty,max=1000"`
}

// IDResponse returns a created row id
type IDResponse struct {
	ID int64 `json:"id" example:"1"`
}

// OKResponse acknowledges a write
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

// RefID accepts a JSON string or number and keeps its text
type RefID string

// UnmarshalJSON takes "42" or 42; other types leave it empty
func (r *RefID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = RefID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		*r = ""
		return nil
	}
	*r = RefID(n.String())
	return nil
}
