//go:build integration_pg

package repo

import (
	"context"
	"testing"
	"time"

	"careerpath/internal/modkit/repokit"
	perr "careerpath/internal/platform/errors"
	"careerpath/internal/platform/store"
	"careerpath/internal/platform/testkit"
	"careerpath/internal/services/api/community/domain"
)

func TestCommunity_PG_Integration(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, store.Config{AppName: "careerpath-test", PG: store.PGConfig{Enabled: true, URL: testkit.StartPostgres(t)}})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close(ctx)

	r := NewPG().Bind(s.PG)
	if err := r.Ensure(ctx); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if err := r.Ensure(ctx); err != nil {
		t.Fatalf("ensure twice: %v", err)
	}

	name := "Ada"
	if err := r.UpsertProfile(ctx, "u1", domain.ProfileInput{Name: &name, Skills: []string{"sql", "python"}}); err != nil {
		t.Fatal(err)
	}
	p, err := r.Profile(ctx, "u1")
	if err != nil || *p.Name != "Ada" || len(p.Skills) != 2 {
		t.Fatalf("profile = %+v %v", p, err)
	}
	if _, err := r.Profile(ctx, "ghost"); err != perr.ErrNotFound {
		t.Fatalf("missing profile err = %v", err)
	}

	uid := "u1"
	postID, err := r.CreatePost(ctx, &uid, domain.PostInput{Content: "first", Visibility: "public"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.CreatePost(ctx, nil, domain.PostInput{Content: "anon", Visibility: "public"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Like(ctx, postID, "u2"); err != nil {
		t.Fatal(err)
	}
	if err := r.CreateComment(ctx, postID, &uid, domain.CommentInput{Content: "c1"}); err != nil {
		t.Fatal(err)
	}

	feed, err := r.Feed(ctx, 10)
	if err != nil || len(feed) != 2 {
		t.Fatalf("feed = %v %v", feed, err)
	}
	if feed[0].Content != "anon" || feed[0].Author != nil {
		t.Fatalf("newest first, anon has no author: %+v", feed[0])
	}
	if feed[1].LikeCount != 1 || feed[1].CommentCount != 1 || feed[1].Author == nil || feed[1].Author.UserID != "u1" {
		t.Fatalf("counts and author: %+v", feed[1])
	}

	removed, err := r.Unlike(ctx, postID, "u2")
	if err != nil || !removed {
		t.Fatalf("unlike = %v %v", removed, err)
	}
	if err := r.Like(ctx, 999, "u2"); !perr.IsCode(perr.FromPostgres(err, "like"), perr.ErrorCodeNotFound) {
		t.Fatalf("like unknown post err = %v", err)
	}

	if err := r.SeedRooms(ctx); err != nil {
		t.Fatal(err)
	}
	if err := r.SeedRooms(ctx); err != nil {
		t.Fatal(err)
	}
	rooms, err := r.Rooms(ctx, 50)
	if err != nil || len(rooms) != 2 {
		t.Fatalf("rooms = %v %v", rooms, err)
	}
	if _, err := r.CreateRoom(ctx, domain.RoomInput{Name: "Python learners"}); !perr.IsDuplicateKey(err) {
		t.Fatalf("duplicate room err = %v", err)
	}

	if err := r.CreateMessage(ctx, rooms[0].ID, &uid, "m1"); err != nil {
		t.Fatal(err)
	}
	msgs, err := r.Messages(ctx, rooms[0].ID, nil, 200)
	if err != nil || len(msgs) != 1 {
		t.Fatalf("messages = %v %v", msgs, err)
	}
	future := time.Now().Add(time.Hour)
	msgs, err = r.Messages(ctx, rooms[0].ID, &future, 200)
	if err != nil || len(msgs) != 0 {
		t.Fatalf("messages since future = %v %v", msgs, err)
	}

	helpID, err := r.CreateHelp(ctx, &uid, domain.HelpInput{Title: "t", Body: "b", Tags: []string{"go"}})
	if err != nil {
		t.Fatal(err)
	}
	if err := r.CreateReply(ctx, helpID, &uid, "r"); err != nil {
		t.Fatal(err)
	}

	board, err := r.Leaderboard(ctx, domain.LeaderboardDays, domain.LeaderboardSize)
	if err != nil || len(board) == 0 {
		t.Fatalf("leaderboard = %v %v", board, err)
	}
	// one post (5) + one comment (2) + one reply (3)
	if board[0].UserID != "u1" || board[0].Points != 10 {
		t.Fatalf("leader = %+v", board[0])
	}

	if err := r.CreateReport(ctx, domain.ReportInput{Type: "post", RefID: "1"}); err != nil {
		t.Fatal(err)
	}

	// the timeout hook runs inside the same tx
	tx := repokit.WithBeginHooks(s.PG, repokit.StatementTimeout(time.Second))
	err = repokit.WithRepo(ctx, tx, NewPG(), func(rr Repo) error { return rr.TouchProfile(ctx, "u3") })
	if err != nil {
		t.Fatalf("hooked tx: %v", err)
	}
}
