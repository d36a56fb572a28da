// Package repo provides postgres access for the community feed
package repo

import (
	"context"
	"time"

	"careerpath/internal/modkit/repokit"
	"careerpath/internal/services/api/community/domain"
)

// Repo is the persistence surface for community content
// authorID is nil for anonymous content
type Repo interface {
	Ensure(ctx context.Context) error

	UpsertProfile(ctx context.Context, userID string, in domain.ProfileInput) error
	Profile(ctx context.Context, userID string) (domain.Profile, error)
	TouchProfile(ctx context.Context, userID string) error

	CreatePost(ctx context.Context, authorID *string, in domain.PostInput) (int64, error)
	Feed(ctx context.Context, limit int) ([]domain.Post, error)
	Unlike(ctx context.Context, postID int64, userID string) (bool, error)
	Like(ctx context.Context, postID int64, userID string) error

	Comments(ctx context.Context, postID int64) ([]domain.Comment, error)
	CreateComment(ctx context.Context, postID int64, authorID *string, in domain.CommentInput) error

	HelpRequests(ctx context.Context, limit int) ([]domain.HelpRequest, error)
	CreateHelp(ctx context.Context, authorID *string, in domain.HelpInput) (int64, error)
	CreateReply(ctx context.Context, requestID int64, authorID *string, body string) error

	SeedRooms(ctx context.Context) error
	Rooms(ctx context.Context, limit int) ([]domain.Room, error)
	CreateRoom(ctx context.Context, in domain.RoomInput) (int64, error)
	Messages(ctx context.Context, roomID int64, since *time.Time, limit int) ([]domain.Message, error)
	CreateMessage(ctx context.Context, roomID int64, authorID *string, body string) error

	Leaderboard(ctx context.Context, days, limit int) ([]domain.LeaderEntry, error)
	CreateReport(ctx context.Context, in domain.ReportInput) error
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Ensure(ctx context.Context) error {
	_, err := r.q.Exec(ctx, Schema)
	return err
}
