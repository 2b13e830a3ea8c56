package domain

import "context"

// UnitOfWork groups the repositories behind a single transaction boundary.
// Execute runs fn against transactional repository instances and commits or
// rolls back as one.
type UnitOfWork interface {
	Task() TaskRepository
	Subtask() SubtaskRepository
	Outbox() OutboxRepository
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
}
