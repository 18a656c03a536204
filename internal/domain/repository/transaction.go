package repository

import "context"

// RepositoryFactory creates repository instances bound to one transaction.
// Repositories obtained from the same factory share the same transaction.
type RepositoryFactory interface {
	NewAddressRepository() AddressRepository
	NewCartRepository() CartRepository
}

// TransactionManager runs a unit of work inside a single store transaction.
// The default-address transfer (clear all other defaults, then write the
// new default) runs through this so a concurrent reader never observes two
// defaults.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
