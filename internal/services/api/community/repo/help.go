package repo

import (
	"context"

	"careerpath/internal/platform/store"
	"careerpath/internal/services/api/community/domain"
)

func (r *queries) HelpRequests(ctx context.Context, limit int) ([]domain.HelpRequest, error) {
	return store.Many(ctx, r.q, func(row store.Row) (domain.HelpRequest, error) {
		var h domain.HelpRequest
		err := row.Scan(&h.ID, &h.CreatedAt, &h.AuthorID, &h.Title, &h.Body, &h.Tags, &h.Status)
		return h, err
	}, `
SELECT id, created_at, author_id, title, body, tags, status
FROM help_requests
ORDER BY created_at DESC, id DESC
LIMIT $1
`, limit)
}

func (r *queries) CreateHelp(ctx context.Context, authorID *string, in domain.HelpInput) (int64, error) {
	return store.Scalar[int64](ctx, r.q,
		`INSERT INTO help_requests (author_id, title, body, tags) VALUES ($1, $2, $3, $4) RETURNING id`,
		authorID, in.Title, in.Body, in.Tags)
}

func (r *queries) CreateReply(ctx context.Context, requestID int64, authorID *string, body string) error {
	return store.ExecOne(ctx, r.q,
		`INSERT INTO help_replies (request_id, author_id, body) VALUES ($1, $2, $3)`,
		requestID, authorID, body)
}

func (r *queries) CreateReport(ctx context.Context, in domain.ReportInput) error {
	return store.ExecOne(ctx, r.q,
		`INSERT INTO reports (type, ref_id, reason) VALUES ($1, $2, $3)`,
		in.Type, string(in.RefID), in.Reason)
}
