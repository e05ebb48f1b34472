package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	portsrepo "github.com/karyabangun/bizadmin/internal/core/ports/repositories"
	portssvc "github.com/karyabangun/bizadmin/internal/core/ports/services"
	"github.com/karyabangun/bizadmin/internal/dto"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	projectScope
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new cash transaction service
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	projectRepo portsrepo.ProjectReader,
	options ...ServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		projectScope:    projectScope{projectRepo: projectRepo},
		transactionRepo: transactionRepo,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) GetTransaction(ctx context.Context, companyID, projectID, transactionID, userID string) (*domain.Transaction, error) {
	if _, err := s.authorizeProject(ctx, userID, companyID, projectID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.findTransaction(ctx, projectID, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, companyID, projectID, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if _, err := s.authorizeProject(ctx, userID, companyID, projectID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	filter := params.Filter()
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, *filter.Type)
	}
	if filter.Category != nil && !filter.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction category %q", apperrors.ErrValidation, *filter.Category)
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, fmt.Errorf("%w: 'to' date must not be before 'from' date", apperrors.ErrValidation)
	}

	txns, nextToken, err := s.transactionRepo.ListTransactionsByProject(ctx, projectID, filter, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return &dto.ListTransactionsResponse{Transactions: txns, NextToken: nextToken}, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, companyID, projectID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if _, err := s.authorizeProject(ctx, userID, companyID, projectID, domain.RoleMember); err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		ProjectID:       projectID,
		CompanyID:       companyID,
		TransactionDate: req.TransactionDate,
		Type:            req.Type,
		Category:        req.Category,
		Amount:          req.Amount,
		Description:     req.Description,
		Reference:       req.Reference,
		AuditFields:     domain.NewAuditFields(userID, s.Now()),
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("project_id", projectID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, companyID, projectID, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	if _, err := s.authorizeProject(ctx, userID, companyID, projectID, domain.RoleMember); err != nil {
		return nil, err
	}

	txn, err := s.findTransaction(ctx, projectID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.TransactionDate != nil {
		txn.TransactionDate = *req.TransactionDate
	}
	if req.Type != nil {
		txn.Type = *req.Type
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Reference != nil {
		txn.Reference = *req.Reference
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}
	txn.Touch(userID, s.Now())

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, companyID, projectID, transactionID, userID string) error {
	if _, err := s.authorizeProject(ctx, userID, companyID, projectID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, projectID, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionService) findTransaction(ctx context.Context, projectID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, projectID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}
