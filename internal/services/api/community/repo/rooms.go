package repo

import (
	"context"
	"time"

	"careerpath/internal/platform/store"
	"careerpath/internal/services/api/community/domain"
)

// SeedRooms inserts the default rooms unless they exist
func (r *queries) SeedRooms(ctx context.Context) error {
	_, err := r.q.Exec(ctx, `
INSERT INTO rooms (name, topic)
SELECT x.name, x.topic FROM (VALUES
  ('Python learners', 'Beginner to advanced Python discussions'),
  ('Product Management advice', 'Strategy, roadmapping, stakeholder mgmt')
) AS x(name, topic)
ON CONFLICT DO NOTHING
`)
	return err
}

func (r *queries) Rooms(ctx context.Context, limit int) ([]domain.Room, error) {
	return store.Many(ctx, r.q, func(row store.Row) (domain.Room, error) {
		var rm domain.Room
		err := row.Scan(&rm.ID, &rm.Name, &rm.Topic, &rm.CreatedAt)
		return rm, err
	}, `SELECT id, name, topic, created_at FROM rooms ORDER BY id ASC LIMIT $1`, limit)
}

func (r *queries) CreateRoom(ctx context.Context, in domain.RoomInput) (int64, error) {
	return store.Scalar[int64](ctx, r.q,
		`INSERT INTO rooms (name, topic) VALUES ($1, $2) RETURNING id`, in.Name, in.Topic)
}

func (r *queries) Messages(ctx context.Context, roomID int64, since *time.Time, limit int) ([]domain.Message, error) {
	return store.Many(ctx, r.q, func(row store.Row) (domain.Message, error) {
		var m domain.Message
		err := row.Scan(&m.ID, &m.RoomID, &m.CreatedAt, &m.AuthorID, &m.Body)
		return m, err
	}, `
SELECT id, room_id, created_at, author_id, body
FROM messages
WHERE room_id = $1 AND ($2::timestamptz IS NULL OR created_at > $2)
ORDER BY created_at ASC, id ASC
LIMIT $3
`, roomID, since, limit)
}

func (r *queries) CreateMessage(ctx context.Context, roomID int64, authorID *string, body string) error {
	return store.ExecOne(ctx, r.q,
		`INSERT INTO messages (room_id, author_id, body) VALUES ($1, $2, $3)`, roomID, authorID, body)
}
