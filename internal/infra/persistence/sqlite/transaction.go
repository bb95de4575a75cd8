package sqlite

import (
	"context"

	"smokebreak/internal/domain/repository"
	"smokebreak/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db   *gorm.DB
	feed *ChangeFeed
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a GORM transaction and hands out repositories bound to it.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) NewGroupRepository() repository.GroupRepository {
	return NewGroupRepository(f.tx)
}

func (f *gormRepositoryFactory) NewMemberRepository() repository.MemberRepository {
	return NewMemberRepository(f.tx)
}

func (f *gormRepositoryFactory) NewInvitationRepository() repository.InvitationRepository {
	return NewInvitationRepository(f.tx)
}

func (f *gormRepositoryFactory) NewSessionRepository() repository.SessionRepository {
	return NewSessionRepository(f.tx)
}

func (f *gormRepositoryFactory) NewCredentialRepository() repository.CredentialRepository {
	return NewCredentialRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, feed *ChangeFeed) repository.TransactionManager {
	return &gormTransactionManager{db: db, feed: feed}
}

// Execute runs the given function within a single database transaction.
// Change notifications for writes made by fn are published after commit.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	if tm.feed != nil {
		tm.feed.begin(tx.Statement.ConnPool)
	}
	committed := false
	defer func() {
		if tm.feed != nil {
			tm.feed.finish(tx.Statement.ConnPool, committed)
		}
	}()

	// Roll back when fn panics, then let the panic continue.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	committed = true

	return nil
}
