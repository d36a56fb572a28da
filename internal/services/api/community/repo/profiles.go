package repo

import (
	"context"

	"careerpath/internal/platform/store"
	"careerpath/internal/services/api/community/domain"
)

const profileCols = `user_id, name, role, bio, skills, goals, avatar_url, created_at`

func scanProfile(row store.Row) (domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.UserID, &p.Name, &p.Role, &p.Bio, &p.Skills, &p.Goals, &p.AvatarURL, &p.CreatedAt)
	return p, err
}

func (r *queries) UpsertProfile(ctx context.Context, userID string, in domain.ProfileInput) error {
	_, err := r.q.Exec(ctx, `
INSERT INTO profiles (user_id, name, role, bio, skills, goals, avatar_url)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (user_id) DO UPDATE SET
  name = EXCLUDED.name,
  role = EXCLUDED.role,
  bio = EXCLUDED.bio,
  skills = EXCLUDED.skills,
  goals = EXCLUDED.goals,
  avatar_url = EXCLUDED.avatar_url
`, userID, in.Name, in.Role, in.Bio, in.Skills, in.Goals, in.AvatarURL)
	return err
}

func (r *queries) Profile(ctx context.Context, userID string) (domain.Profile, error) {
	return store.One(ctx, r.q, scanProfile,
		`SELECT `+profileCols+` FROM profiles WHERE user_id = $1`, userID)
}

// TouchProfile creates an empty profile so content can reference the author
func (r *queries) TouchProfile(ctx context.Context, userID string) error {
	_, err := r.q.Exec(ctx, `INSERT INTO profiles (user_id) VALUES ($1) ON CONFLICT DO NOTHING`, userID)
	return err
}
