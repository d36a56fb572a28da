package domain

import (
	"context"
	"time"
)

// ServicePort is consumed by handlers and other modules
// userID is the caller identity, "" when anonymous
type ServicePort interface {
	Ensure(ctx context.Context) error

	UpsertProfile(ctx context.Context, userID string, in ProfileInput) (ProfileResponse, error)
	Profile(ctx context.Context, userID string) (ProfileResponse, error)

	CreatePost(ctx context.Context, userID string, in PostInput) (IDResponse, error)
	Feed(ctx context.Context, limit int) (FeedResponse, error)
	ToggleLike(ctx context.Context, userID string, postID int64) (LikeResponse, error)

	Comments(ctx context.Context, postID int64) (CommentsResponse, error)
	CreateComment(ctx context.Context, userID string, postID int64, in CommentInput) (OKResponse, error)

	HelpRequests(ctx context.Context) (HelpResponse, error)
	CreateHelp(ctx context.Context, userID string, in HelpInput) (IDResponse, error)
	Reply(ctx context.Context, userID string, requestID int64, in ReplyInput) (OKResponse, error)

	Rooms(ctx context.Context) (RoomsResponse, error)
	CreateRoom(ctx context.Context, in RoomInput) (IDResponse, error)
	Messages(ctx context.Context, roomID int64, since time.Time) (MessagesResponse, error)
	PostMessage(ctx context.Context, userID string, roomID int64, in MessageInput) (OKResponse, error)

	Leaderboard(ctx context.Context) (LeaderboardResponse, error)
	Report(ctx context.Context, in ReportInput) (OKResponse, error)
}
