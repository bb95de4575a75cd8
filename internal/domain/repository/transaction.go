package repository

import "context"

// TransactionManager defines the interface for managing local database transactions.
// It spans the local cache only; there is no transaction across the local and remote stores.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewGroupRepository() GroupRepository
	NewMemberRepository() MemberRepository
	NewInvitationRepository() InvitationRepository
	NewSessionRepository() SessionRepository
	NewCredentialRepository() CredentialRepository
}
