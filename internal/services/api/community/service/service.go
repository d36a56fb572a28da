// Package service contains community workflows
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"careerpath/internal/modkit/repokit"
	perr "careerpath/internal/platform/errors"
	ptime "careerpath/internal/platform/time"
	"careerpath/internal/services/api/community/domain"
	"careerpath/internal/services/api/community/repo"
)

// Service defines the community service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the community service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a community service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("community.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("community.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Ensure creates the community tables when missing
func (s *Svc) Ensure(ctx context.Context) error {
	return perr.FromPostgres(s.Repo.Ensure(ctx), "ensure community schema")
}

// authored runs fn in a tx after making sure the author has a profile row
func (s *Svc) authored(ctx context.Context, userID string, fn func(r repo.Repo, author *string) error) error {
	return repokit.WithRepo(ctx, s.db, s.binder, func(r repo.Repo) error {
		if userID == "" {
			return fn(r, nil)
		}
		if err := r.TouchProfile(ctx, userID); err != nil {
			return err
		}
		return fn(r, &userID)
	})
}

func blank(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return perr.WithField(perr.Validationf("%s required", field), field)
	}
	return nil
}

// UpsertProfile creates or replaces the caller's profile and returns it
func (s *Svc) UpsertProfile(ctx context.Context, userID string, in domain.ProfileInput) (domain.ProfileResponse, error) {
	if userID == "" {
		return domain.ProfileResponse{}, perr.WithField(perr.InvalidArgf("userId required"), "userId")
	}
	var out domain.Profile
	err := repokit.WithRepo(ctx, s.db, s.binder, func(r repo.Repo) error {
		if err := r.UpsertProfile(ctx, userID, in); err != nil {
			return err
		}
		p, err := r.Profile(ctx, userID)
		out = p
		return err
	})
	if err != nil {
		return domain.ProfileResponse{}, perr.FromPostgres(err, "upsert profile")
	}
	return domain.ProfileResponse{Profile: &out}, nil
}

// Profile returns a profile; unknown users yield a null profile, not an error
func (s *Svc) Profile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	p, err := s.Repo.Profile(ctx, userID)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.ProfileResponse{}, nil
	}
	if err != nil {
		return domain.ProfileResponse{}, perr.FromPostgres(err, "load profile")
	}
	return domain.ProfileResponse{Profile: &p}, nil
}

// CreatePost publishes a post, anonymous when userID is empty
func (s *Svc) CreatePost(ctx context.Context, userID string, in domain.PostInput) (domain.IDResponse, error) {
	if err := blank("content", in.Content); err != nil {
		return domain.IDResponse{}, err
	}
	if in.Visibility == "" {
		in.Visibility = "public"
	}
	var id int64
	err := s.authored(ctx, userID, func(r repo.Repo, author *string) error {
		var err error
		id, err = r.CreatePost(ctx, author, in)
		return err
	})
	if err != nil {
		return domain.IDResponse{}, perr.FromPostgres(err, "create post")
	}
	return domain.IDResponse{ID: id}, nil
}

// Feed returns the newest posts; limit is clamped to [1, FeedMax]
func (s *Svc) Feed(ctx context.Context, limit int) (domain.FeedResponse, error) {
	if limit <= 0 {
		limit = domain.FeedDefault
	}
	posts, err := s.Repo.Feed(ctx, min(limit, domain.FeedMax))
	if err != nil {
		return domain.FeedResponse{}, perr.FromPostgres(err, "load feed")
	}
	return domain.FeedResponse{Posts: posts}, nil
}

// ToggleLike flips the caller's like on a post
func (s *Svc) ToggleLike(ctx context.Context, userID string, postID int64) (domain.LikeResponse, error) {
	if userID == "" {
		return domain.LikeResponse{}, perr.WithField(perr.InvalidArgf("userId required"), "userId")
	}
	var liked bool
	err := repokit.WithRepo(ctx, s.db, s.binder, func(r repo.Repo) error {
		removed, err := r.Unlike(ctx, postID, userID)
		if err != nil || removed {
			return err
		}
		liked = true
		return r.Like(ctx, postID, userID)
	})
	if err != nil {
		return domain.LikeResponse{}, perr.FromPostgres(err, "toggle like")
	}
	return domain.LikeResponse{Liked: liked}, nil
}

// Comments lists a post's comments oldest first
func (s *Svc) Comments(ctx context.Context, postID int64) (domain.CommentsResponse, error) {
	cs, err := s.Repo.Comments(ctx, postID)
	if err != nil {
		return domain.CommentsResponse{}, perr.FromPostgres(err, "load comments")
	}
	return domain.CommentsResponse{Comments: cs}, nil
}

// CreateComment adds a comment, optionally replying to ParentID
func (s *Svc) CreateComment(ctx context.Context, userID string, postID int64, in domain.CommentInput) (domain.OKResponse, error) {
	if err := blank("content", in.Content); err != nil {
		return domain.OKResponse{}, err
	}
	err := s.authored(ctx, userID, func(r repo.Repo, author *string) error {
		return r.CreateComment(ctx, postID, author, in)
	})
	if err != nil {
		return domain.OKResponse{}, perr.FromPostgres(err, "create comment")
	}
	return domain.OKResponse{OK: true}, nil
}

// HelpRequests lists the latest help requests
func (s *Svc) HelpRequests(ctx context.Context) (domain.HelpResponse, error) {
	hs, err := s.Repo.HelpRequests(ctx, domain.HelpLimit)
	if err != nil {
		return domain.HelpResponse{}, perr.FromPostgres(err, "load help requests")
	}
	return domain.HelpResponse{Requests: hs}, nil
}

// CreateHelp opens a help request
func (s *Svc) CreateHelp(ctx context.Context, userID string, in domain.HelpInput) (domain.IDResponse, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Body) == "" {
		return domain.IDResponse{}, perr.Validationf("title and body required")
	}
	var id int64
	err := s.authored(ctx, userID, func(r repo.Repo, author *string) error {
		var err error
		id, err = r.CreateHelp(ctx, author, in)
		return err
	})
	if err != nil {
		return domain.IDResponse{}, perr.FromPostgres(err, "create help request")
	}
	return domain.IDResponse{ID: id}, nil
}

// Reply answers a help request
func (s *Svc) Reply(ctx context.Context, userID string, requestID int64, in domain.ReplyInput) (domain.OKResponse, error) {
	if err := blank("body", in.Body); err != nil {
		return domain.OKResponse{}, err
	}
	err := s.authored(ctx, userID, func(r repo.Repo, author *string) error {
		return r.CreateReply(ctx, requestID, author, in.Body)
	})
	if err != nil {
		return domain.OKResponse{}, perr.FromPostgres(err, "create reply")
	}
	return domain.OKResponse{OK: true}, nil
}

// Rooms seeds the default rooms and lists rooms by id
func (s *Svc) Rooms(ctx context.Context) (domain.RoomsResponse, error) {
	var rooms []domain.Room
	err := repokit.WithRepo(ctx, s.db, s.binder, func(r repo.Repo) error {
		if err := r.SeedRooms(ctx); err != nil {
			return err
		}
		var err error
		rooms, err = r.Rooms(ctx, domain.RoomLimit)
		return err
	})
	if err != nil {
		return domain.RoomsResponse{}, perr.FromPostgres(err, "load rooms")
	}
	return domain.RoomsResponse{Rooms: rooms}, nil
}

// CreateRoom adds a room; names are unique
func (s *Svc) CreateRoom(ctx context.Context, in domain.RoomInput) (domain.IDResponse, error) {
	if err := blank("name", in.Name); err != nil {
		return domain.IDResponse{}, err
	}
	id, err := s.Repo.CreateRoom(ctx, in)
	if perr.IsDuplicateKey(err) {
		return domain.IDResponse{}, perr.WithField(perr.Conflictf("room %q already exists", in.Name), "name")
	}
	if err != nil {
		return domain.IDResponse{}, perr.FromPostgres(err, "create room")
	}
	return domain.IDResponse{ID: id}, nil
}

// Messages lists room messages after since, oldest first; zero since means from the start
func (s *Svc) Messages(ctx context.Context, roomID int64, since time.Time) (domain.MessagesResponse, error) {
	ms, err := s.Repo.Messages(ctx, roomID, ptime.Ptr(since), domain.MessageLimit)
	if err != nil {
		return domain.MessagesResponse{}, perr.FromPostgres(err, "load messages")
	}
	return domain.MessagesResponse{Messages: ms}, nil
}

// PostMessage appends to a room
func (s *Svc) PostMessage(ctx context.Context, userID string, roomID int64, in domain.MessageInput) (domain.OKResponse, error) {
	if err := blank("body", in.Body); err != nil {
		return domain.OKResponse{}, err
	}
	err := s.authored(ctx, userID, func(r repo.Repo, author *string) error {
		return r.CreateMessage(ctx, roomID, author, in.Body)
	})
	if err != nil {
		return domain.OKResponse{}, perr.FromPostgres(err, "post message")
	}
	return domain.OKResponse{OK: true}, nil
}

// Leaderboard ranks members by weekly activity
func (s *Svc) Leaderboard(ctx context.Context) (domain.LeaderboardResponse, error) {
	rows, err := s.Repo.Leaderboard(ctx, domain.LeaderboardDays, domain.LeaderboardSize)
	if err != nil {
		return domain.LeaderboardResponse{}, perr.FromPostgres(err, "load leaderboard")
	}
	return domain.LeaderboardResponse{Leaderboard: rows}, nil
}

// Report stores a moderation report
func (s *Svc) Report(ctx context.Context, in domain.ReportInput) (domain.OKResponse, error) {
	if strings.TrimSpace(in.Type) == "" || strings.TrimSpace(string(in.RefID)) == "" {
		return domain.OKResponse{}, perr.Validationf("type and refId required")
	}
	if err := s.Repo.CreateReport(ctx, in); err != nil {
		return domain.OKResponse{}, perr.FromPostgres(err, "create report")
	}
	return domain.OKResponse{OK: true}, nil
}
