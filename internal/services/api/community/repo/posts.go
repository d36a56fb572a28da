package repo

import (
	"context"

	"careerpath/internal/platform/store"
	"careerpath/internal/services/api/community/domain"
)

// author columns are left joined, user_id is null when the author has no profile
func author(uid, name, role, avatar *string) *domain.Author {
	if uid == nil {
		return nil
	}
	return &domain.Author{UserID: *uid, Name: name, Role: role, AvatarURL: avatar}
}

func (r *queries) CreatePost(ctx context.Context, authorID *string, in domain.PostInput) (int64, error) {
	return store.Scalar[int64](ctx, r.q, `
INSERT INTO posts (author_id, content, image_url, link_url, visibility)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`, authorID, in.Content, in.ImageURL, in.LinkURL, in.Visibility)
}

func (r *queries) Feed(ctx context.Context, limit int) ([]domain.Post, error) {
	const sql = `
SELECT
  po.id, po.created_at, po.author_id, po.content, po.image_url, po.link_url, po.visibility,
  COALESCE(pl.cnt, 0), COALESCE(cm.cnt, 0),
  pr.user_id, pr.name, pr.role, pr.avatar_url
FROM posts po
LEFT JOIN (SELECT post_id, COUNT(*) cnt FROM post_likes GROUP BY post_id) pl ON pl.post_id = po.id
LEFT JOIN (SELECT post_id, COUNT(*) cnt FROM comments GROUP BY post_id) cm ON cm.post_id = po.id
LEFT JOIN profiles pr ON pr.user_id = po.author_id
ORDER BY po.created_at DESC, po.id DESC
LIMIT $1
`
	return store.Many(ctx, r.q, func(row store.Row) (domain.Post, error) {
		var p domain.Post
		var uid, name, role, avatar *string
		err := row.Scan(&p.ID, &p.CreatedAt, &p.AuthorID, &p.Content, &p.ImageURL, &p.LinkURL, &p.Visibility,
			&p.LikeCount, &p.CommentCount, &uid, &name, &role, &avatar)
		p.Author = author(uid, name, role, avatar)
		return p, err
	}, sql, limit)
}

// Unlike removes a like and reports whether one existed
func (r *queries) Unlike(ctx context.Context, postID int64, userID string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *queries) Like(ctx context.Context, postID int64, userID string) error {
	return store.ExecOne(ctx, r.q, `INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2)`, postID, userID)
}

func (r *queries) Comments(ctx context.Context, postID int64) ([]domain.Comment, error) {
	const sql = `
SELECT c.id, c.post_id, c.parent_id, c.created_at, c.author_id, c.content,
       pr.user_id, pr.name, pr.role, pr.avatar_url
FROM comments c
LEFT JOIN profiles pr ON pr.user_id = c.author_id
WHERE c.post_id = $1
ORDER BY c.created_at ASC, c.id ASC
`
	return store.Many(ctx, r.q, func(row store.Row) (domain.Comment, error) {
		var c domain.Comment
		var uid, name, role, avatar *string
		err := row.Scan(&c.ID, &c.PostID, &c.ParentID, &c.CreatedAt, &c.AuthorID, &c.Content,
			&uid, &name, &role, &avatar)
		c.Author = author(uid, name, role, avatar)
		return c, err
	}, sql, postID)
}

func (r *queries) CreateComment(ctx context.Context, postID int64, authorID *string, in domain.CommentInput) error {
	return store.ExecOne(ctx, r.q,
		`INSERT INTO comments (post_id, parent_id, author_id, content) VALUES ($1, $2, $3, $4)`,
		postID, in.ParentID, authorID, in.Content)
}
