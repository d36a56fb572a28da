package repo

import (
	"context"

	"careerpath/internal/platform/store"
	"careerpath/internal/services/api/community/domain"
)

// Leaderboard ranks profiles by weighted activity over the last days
func (r *queries) Leaderboard(ctx context.Context, days, limit int) ([]domain.LeaderEntry, error) {
	const sql = `
WITH recent_posts AS (
  SELECT author_id, COUNT(*) c FROM posts
  WHERE created_at > NOW() - make_interval(days => $1) GROUP BY author_id
), recent_comments AS (
  SELECT author_id, COUNT(*) c FROM comments
  WHERE created_at > NOW() - make_interval(days => $1) GROUP BY author_id
), recent_help AS (
  SELECT author_id, COUNT(*) c FROM help_replies
  WHERE created_at > NOW() - make_interval(days => $1) GROUP BY author_id
)
SELECT
  COALESCE(pr.user_id, 'anonymous'),
  pr.name,
  pr.role,
  COALESCE(rp.c, 0) * $2 + COALESCE(rc.c, 0) * $3 + COALESCE(rh.c, 0) * $4 AS points
FROM profiles pr
LEFT JOIN recent_posts rp ON rp.author_id = pr.user_id
LEFT JOIN recent_comments rc ON rc.author_id = pr.user_id
LEFT JOIN recent_help rh ON rh.author_id = pr.user_id
ORDER BY points DESC NULLS LAST, pr.user_id ASC
LIMIT $5
`
	return store.Many(ctx, r.q, func(row store.Row) (domain.LeaderEntry, error) {
		var e domain.LeaderEntry
		err := row.Scan(&e.UserID, &e.Name, &e.Role, &e.Points)
		return e, err
	}, sql, days, domain.PointsPost, domain.PointsComment, domain.PointsReply, limit)
}
