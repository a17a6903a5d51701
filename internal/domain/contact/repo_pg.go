package contact

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contactRepoPG struct{ pool *pgxpool.Pool }

func NewContactRepoPG(pool *pgxpool.Pool) Repository {
	return &contactRepoPG{pool: pool}
}

func (r *contactRepoPG) AddMessage(ctx context.Context, m *Message) error {
	m.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO contact_messages (id, name, email, phone, subject, message, status, user_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at`,
		m.ID, m.Name, m.Email, m.Phone, m.Subject, m.Body, m.Status,
		m.UserID).Scan(&m.CreatedAt)
}

func (r *contactRepoPG) AddFeedback(ctx context.Context, f *Feedback) error {
	f.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO feedback (id, message, user_id, user_email)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at`,
		f.ID, f.Body, f.UserID, f.UserEmail).Scan(&f.CreatedAt)
}
