package repositories

import (
	"context"

	"github.com/karyabangun/bizadmin/internal/core/domain"
)

// TransactionReader defines read operations for cash transactions
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, projectID, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByProject retrieves a filtered page of transactions, newest first.
	ListTransactionsByProject(ctx context.Context, projectID string, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListAllTransactionsByProject retrieves every transaction of a project.
	ListAllTransactionsByProject(ctx context.Context, projectID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for cash transactions
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, projectID, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
