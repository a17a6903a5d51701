package contact

import (
	"time"

	"github.com/google/uuid"
)

// Message is a note sent from the public contact page. UserID is set when
// the sender happened to be signed in, but the page works without it.
type Message struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Subject   string    `db:"subject" json:"subject"`
	Body      string    `db:"message" json:"message"`
	Status    string    `db:"status" json:"status"`
	UserID    *string   `db:"user_id" json:"userId,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Feedback is a quick note from the site footer.
type Feedback struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Body      string    `db:"message" json:"message"`
	UserID    *string   `db:"user_id" json:"userId,omitempty"`
	UserEmail *string   `db:"user_email" json:"userEmail,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
