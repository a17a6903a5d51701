package contact

import "context"

// Repository is write-only: the public pages submit, nothing reads back
// through the API.
type Repository interface {
	AddMessage(ctx context.Context, m *Message) error
	AddFeedback(ctx context.Context, f *Feedback) error
}
