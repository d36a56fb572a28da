// Package http provides http transport for the community feed
package http

import (
	stdhttp "net/http"

	"careerpath/internal/modkit/httpkit"
	"careerpath/internal/services/api/community/domain"
	svc "careerpath/internal/services/api/community/service"
)

// Register mounts community endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PutLenient[domain.ProfileInput](r, "/profiles", h.upsertProfile)
	httpkit.Get(r, "/profiles/{id}", h.profile)

	httpkit.PostLenient[domain.PostInput](r, "/posts", h.createPost)
	httpkit.Get(r, "/feed", h.feed)
	httpkit.Post(r, "/posts/{id}/like", h.toggleLike)
	httpkit.Get(r, "/posts/{id}/comments", h.comments)
	httpkit.PostLenient[domain.CommentInput](r, "/posts/{id}/comments", h.createComment)

	httpkit.Get(r, "/help", h.helpList)
	httpkit.PostLenient[domain.HelpInput](r, "/help", h.createHelp)
	httpkit.PostLenient[domain.ReplyInput](r, "/help/{id}/replies", h.reply)

	httpkit.Get(r, "/rooms", h.rooms)
	httpkit.PostLenient[domain.RoomInput](r, "/rooms", h.createRoom)
	httpkit.Get(r, "/rooms/{id}/messages", h.messages)
	httpkit.PostLenient[domain.MessageInput](r, "/rooms/{id}/messages", h.postMessage)

	httpkit.Get(r, "/leaderboard", h.leaderboard)
	httpkit.PostLenient[domain.ReportInput](r, "/reports", h.report)
}

type handlers struct{ svc svc.Service }

func bare(v any, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return httpkit.Bare(v), nil
}

// swagger:route PUT /community/profiles Community communityUpsertProfile
// @Summary Create or replace the caller's profile
// @Tags Community
// @Accept json
// @Produce json
// @Param X-User-Id header string false "Caller id"
// @Param payload body domain.ProfileInput true "Profile"
// @Success 200 {object} domain.ProfileResponse "ok"
// @Failure 400 {object} httpkit.Envelope "userId required"
// @Router /community/profiles [put]
func (h *handlers) upsertProfile(r *stdhttp.Request, in domain.ProfileInput) (any, error) {
	return bare(h.svc.UpsertProfile(r.Context(), httpkit.User(r, in.UserID), in))
}

// swagger:route GET /community/profiles/{id} Community communityProfile
// @Summary Load a profile, null when unknown
// @Tags Community
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} domain.ProfileResponse "ok"
// @Router /community/profiles/{id} [get]
func (h *handlers) profile(r *stdhttp.Request) (any, error) {
	return bare(h.svc.Profile(r.Context(), httpkit.Param(r, "id")))
}

// swagger:route POST /community/posts Community communityCreatePost
// @Summary Publish a post
// @Tags Community
// @Accept json
// @Produce json
// @Param payload body domain.PostInput true "Post"
// @Success 200 {object} domain.IDResponse "ok"
// @Failure 400 {object} httpkit.Envelope "content required"
// @Router /community/posts [post]
func (h *handlers) createPost(r *stdhttp.Request, in domain.PostInput) (any, error) {
	return bare(h.svc.CreatePost(r.Context(), httpkit.User(r, in.UserID), in))
}

// swagger:route GET /community/feed Community communityFeed
// @Summary Newest posts with counts and author
// @Tags Community
// @Produce json
// @Param limit query int false "Max posts (default 20, max 50)"
// @Success 200 {object} domain.FeedResponse "ok"
// @Router /community/feed [get]
func (h *handlers) feed(r *stdhttp.Request) (any, error) {
	return bare(h.svc.Feed(r.Context(), httpkit.QueryInt(r, "limit", domain.FeedDefault, domain.FeedMax)))
}

// swagger:route POST /community/posts/{id}/like Community communityToggleLike
// @Summary Toggle the caller's like
// @Tags Community
// @Produce json
// @Param id path int true "Post id"
// @Param X-User-Id header string true "Caller id"
// @Success 200 {object} domain.LikeResponse "ok"
// @Failure 400 {object} httpkit.Envelope "invalid id or missing user"
// @Router /community/posts/{id}/like [post]
func (h *handlers) toggleLike(r *stdhttp.Request) (any, error) {
	id, err := httpkit.IDParam(r, "id")
	if err != nil {
		return nil, err
	}
	uid, err := httpkit.RequireUser(r, "")
	if err != nil {
		return nil, err
	}
	return bare(h.svc.ToggleLike(r.Context(), uid, id))
}

// swagger:route GET /community/posts/{id}/comments Community communityComments
// @Summary Comments on a post, oldest first
// @Tags Community
// @Produce json
// @Param id path int true "Post id"
// @Success 200 {object} domain.CommentsResponse "ok"
// @Router /community/posts/{id}/comments [get]
func (h *handlers) comments(r *stdhttp.Request) (any, error) {
	id, err := httpkit.IDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return bare(h.svc.Comments(r.Context(), id))
}

// swagger:route POST /community/posts/{id}/comments Community communityCreateComment
// @Summary Comment on a post
// @Tags Community
// @Accept json
// @Produce json
// @Param id path int true "Post id"
// @Param payload body domain.CommentInput true "Comment"
// @Success 200 {object} domain.OKResponse "ok"
// @Router /community/posts/{id}/comments [post]
func (h *handlers) createComment(r *stdhttp.Request, in domain.CommentInput) (any, error) {
	id, err := httpkit.IDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return bare(h.svc.CreateComment(r.Context(), httpkit.User(r, in.UserID), id, in))
}

// swagger:route GET /community/help Community communityHelpList
// @Summary Latest help requests
// @Tags Community
// @Produce json
// @Success 200 {object} domain.HelpResponse "ok"
// @Router /community/help [get]
func (h *handlers) helpList(r *stdhttp.Request) (any, error) {
	return bare(h.svc.HelpRequests(r.Context()))
}

// swagger:route POST /community/help Community communityCreateHelp
// @Summary Ask the community for help
// @Tags Community
// @Accept json
// @Produce json
// @Param payload body domain.HelpInput true "Help request"
// @Success 200 {object} domain.IDResponse "ok"
// @Router /community/help [post]
func (h *handlers) createHelp(r *stdhttp.Request, in domain.HelpInput) (any, error) {
	return bare(h.svc.CreateHelp(r.Context(), httpkit.User(r, in.UserID), in))
}

// swagger:route POST /community/help/{id}/replies Community communityReply
// @Summary Answer a help request
// @Tags Community
// @Accept json
// @Produce json
// @Param id path int true "Help request id"
// @Param payload body domain.ReplyInput true "Reply"
// @Success 200 {object} domain.OKResponse "ok"
// @Router /community/help/{id}/replies [post]
func (h *handlers) reply(r *stdhttp.Request, in domain.ReplyInput) (any, error) {
	id, err := httpkit.IDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return bare(h.svc.Reply(r.Context(), httpkit.User(r, in.UserID), id, in))
}

// swagger:route GET /community/rooms Community communityRooms
// @Summary Chat rooms
// @Tags Community
// @Produce json
// @Success 200 {object} domain.RoomsResponse "ok"
// @Router /community/rooms [get]
func (h *handlers) rooms(r *stdhttp.Request) (any, error) {
	return bare(h.svc.Rooms(r.Context()))
}

// swagger:route POST /community/rooms Community communityCreateRoom
// @Summary Create a chat room
// @Tags Community
// @Accept json
// @Produce json
// @Param payload body domain.RoomInput true "Room"
// @Success 200 {object} domain.IDResponse "ok"
// @Failure 409 {object} httpkit.Envelope "name taken"
// @Router /community/rooms [post]
func (h *handlers) createRoom(r *stdhttp.Request, in domain.RoomInput) (any, error) {
	return bare(h.svc.CreateRoom(r.Context(), in))
}

// swagger:route GET /community/rooms/{id}/messages Community communityMessages
// @Summary Room messages, oldest first
// @Tags Community
// @Produce json
// @Param id path int true "Room id"
// @Param since query string false "RFC3339, only newer messages"
// @Success 200 {object} domain.MessagesResponse "ok"
// @Router /community/rooms/{id}/messages [get]
func (h *handlers) messages(r *stdhttp.Request) (any, error) {
	id, err := httpkit.IDParam(r, "id")
	if err != nil {
		return nil, err
	}
	since, err := httpkit.QueryTime(r, "since")
	if err != nil {
		return nil, err
	}
	return bare(h.svc.Messages(r.Context(), id, since))
}

// swagger:route POST /community/rooms/{id}/messages Community communityPostMessage
// @Summary Post to a room
// @Tags Community
// @Accept json
// @Produce json
// @Param id path int true "Room id"
// @Param payload body domain.MessageInput true "Message"
// @Success 200 {object} domain.OKResponse "ok"
// @Router /community/rooms/{id}/messages [post]
func (h *handlers) postMessage(r *stdhttp.Request, in domain.MessageInput) (any, error) {
	id, err := httpkit.IDParam(r, "id")
	if err != nil {
		return nil, err
	}
	return bare(h.svc.PostMessage(r.Context(), httpkit.User(r, in.UserID), id, in))
}

// swagger:route GET /community/leaderboard Community communityLeaderboard
// @Summary Weekly leaderboard
// @Tags Community
// @Produce json
// @Success 200 {object} domain.LeaderboardResponse "ok"
// @Router /community/leaderboard [get]
func (h *handlers) leaderboard(r *stdhttp.Request) (any, error) {
	return bare(h.svc.Leaderboard(r.Context()))
}

// swagger:route POST /community/reports Community communityReport
// @Summary Report content
// @Tags Community
// @Accept json
// @Produce json
// @Param payload body domain.ReportInput true "Report"
// @Success 200 {object} domain.OKResponse "ok"
// @Router /community/reports [post]
func (h *handlers) report(r *stdhttp.Request, in domain.ReportInput) (any, error) {
	return bare(h.svc.Report(r.Context(), in))
}
