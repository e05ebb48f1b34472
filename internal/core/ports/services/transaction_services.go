package services

import (
	"context"

	"github.com/karyabangun/bizadmin/internal/core/domain"
	"github.com/karyabangun/bizadmin/internal/dto"
)

// TransactionReaderSvc defines read operations for cash transactions
type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, companyID, projectID, transactionID, userID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, companyID, projectID, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for cash transactions
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, companyID, projectID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, companyID, projectID, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, companyID, projectID, transactionID, userID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
