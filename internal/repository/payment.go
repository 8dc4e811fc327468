package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/repository/dao"
)

type PaymentDAO interface {
	Insert(ctx context.Context, tx dao.MobileMoneyTransaction) (dao.MobileMoneyTransaction, error)
	FindByTransactionID(ctx context.Context, transactionID string) (dao.MobileMoneyTransaction, error)
	CompareAndSetStatus(ctx context.Context, transactionID, from, to string) (bool, error)
	ListPendingBefore(ctx context.Context, cutoff time.Time, limit int) ([]dao.MobileMoneyTransaction, error)
	SumAmountByPurpose(ctx context.Context, purpose string) (decimal.Decimal, error)
}

type TransactionDAO interface {
	Insert(ctx context.Context, tx dao.Transaction) (dao.Transaction, error)
	ListByReference(ctx context.Context, reference string) ([]dao.Transaction, error)
}

type DonationDAO interface {
	Insert(ctx context.Context, donation dao.Donation) (dao.Donation, error)
	FindByReference(ctx context.Context, reference string) (dao.Donation, error)
	UpdateStatusByReference(ctx context.Context, reference, status, hash string) error
	ListRecent(ctx context.Context, limit int) ([]dao.Donation, error)
	SumAmount(ctx context.Context) (decimal.Decimal, error)
}

// PaymentRepository owns the money side of the schema: mobile money
// transactions, the generic transaction log and donations.
type PaymentRepository struct {
	dao         PaymentDAO
	txDAO       TransactionDAO
	donationDAO DonationDAO
}

func NewPaymentRepository(dao PaymentDAO, txDAO TransactionDAO, donationDAO DonationDAO) *PaymentRepository {
	return &PaymentRepository{
		dao:         dao,
		txDAO:       txDAO,
		donationDAO: donationDAO,
	}
}

func (r *PaymentRepository) CreateMobileMoney(ctx context.Context, tx domain.MobileMoneyTransaction) (domain.MobileMoneyTransaction, error) {
	created, err := r.dao.Insert(ctx, dao.MobileMoneyTransaction{
		TransactionID: tx.TransactionID,
		UserID:        tx.UserID,
		Provider:      string(tx.Provider),
		PhoneNumber:   tx.PhoneNumber,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		Status:        string(tx.Status),
		Purpose:       string(tx.Purpose),
		FormationID:   tx.FormationID,
		Description:   tx.Description,
		Metadata:      toJSON(tx.Metadata),
	})
	if err != nil {
		return domain.MobileMoneyTransaction{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return mobileMoneyDaoToDomain(created), nil
}

func (r *PaymentRepository) FindMobileMoney(ctx context.Context, transactionID string) (domain.MobileMoneyTransaction, error) {
	found, err := r.dao.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return domain.MobileMoneyTransaction{}, fmt.Errorf("r.dao.FindByTransactionID -> %w", err)
	}

	return mobileMoneyDaoToDomain(found), nil
}

func (r *PaymentRepository) CompareAndSetStatus(ctx context.Context, transactionID string, from, to domain.PaymentStatus) (bool, error) {
	changed, err := r.dao.CompareAndSetStatus(ctx, transactionID, string(from), string(to))
	if err != nil {
		return false, fmt.Errorf("r.dao.CompareAndSetStatus -> %w", err)
	}

	return changed, nil
}

func (r *PaymentRepository) ListPendingBefore(ctx context.Context, cutoff time.Time, limit int) ([]domain.MobileMoneyTransaction, error) {
	found, err := r.dao.ListPendingBefore(ctx, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListPendingBefore -> %w", err)
	}

	txs := make([]domain.MobileMoneyTransaction, 0, len(found))
	for _, tx := range found {
		txs = append(txs, mobileMoneyDaoToDomain(tx))
	}

	return txs, nil
}

func (r *PaymentRepository) SumPayments(ctx context.Context) (decimal.Decimal, error) {
	total, err := r.dao.SumAmountByPurpose(ctx, string(domain.PurposeFormation))
	if err != nil {
		return decimal.Zero, fmt.Errorf("r.dao.SumAmountByPurpose -> %w", err)
	}

	return total, nil
}

// AppendTransaction adds an entry to the generic transaction log.
func (r *PaymentRepository) AppendTransaction(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	created, err := r.txDAO.Insert(ctx, dao.Transaction{
		FromUserID:     tx.FromUserID,
		ToUserID:       tx.ToUserID,
		Amount:         tx.Amount,
		Type:           string(tx.Type),
		Status:         string(tx.Status),
		Description:    tx.Description,
		BlockchainHash: tx.BlockchainHash,
		Reference:      tx.Reference,
	})
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("r.txDAO.Insert -> %w", err)
	}

	return transactionDaoToDomain(created), nil
}

func (r *PaymentRepository) ListTransactions(ctx context.Context, reference string) ([]domain.Transaction, error) {
	found, err := r.txDAO.ListByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("r.txDAO.ListByReference -> %w", err)
	}

	txs := make([]domain.Transaction, 0, len(found))
	for _, tx := range found {
		txs = append(txs, transactionDaoToDomain(tx))
	}

	return txs, nil
}

func (r *PaymentRepository) CreateDonation(ctx context.Context, d domain.Donation) (domain.Donation, error) {
	created, err := r.donationDAO.Insert(ctx, dao.Donation{
		DonorID:         d.DonorID,
		Amount:          d.Amount,
		Currency:        d.Currency,
		Description:     d.Description,
		Status:          string(d.Status),
		TransactionHash: d.TransactionHash,
		Reference:       d.Reference,
		DonatedAt:       d.DonatedAt,
	})
	if err != nil {
		return domain.Donation{}, fmt.Errorf("r.donationDAO.Insert -> %w", err)
	}

	return donationDaoToDomain(created), nil
}

func (r *PaymentRepository) FindDonation(ctx context.Context, reference string) (domain.Donation, error) {
	found, err := r.donationDAO.FindByReference(ctx, reference)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("r.donationDAO.FindByReference -> %w", err)
	}

	return donationDaoToDomain(found), nil
}

func (r *PaymentRepository) UpdateDonationStatus(ctx context.Context, reference string, status domain.PaymentStatus, hash string) error {
	if err := r.donationDAO.UpdateStatusByReference(ctx, reference, string(status), hash); err != nil {
		return fmt.Errorf("r.donationDAO.UpdateStatusByReference -> %w", err)
	}

	return nil
}

func (r *PaymentRepository) ListRecentDonations(ctx context.Context, limit int) ([]domain.Donation, error) {
	found, err := r.donationDAO.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.donationDAO.ListRecent -> %w", err)
	}

	donations := make([]domain.Donation, 0, len(found))
	for _, d := range found {
		donations = append(donations, donationDaoToDomain(d))
	}

	return donations, nil
}

func (r *PaymentRepository) SumDonations(ctx context.Context) (decimal.Decimal, error) {
	total, err := r.donationDAO.SumAmount(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("r.donationDAO.SumAmount -> %w", err)
	}

	return total, nil
}

func mobileMoneyDaoToDomain(tx dao.MobileMoneyTransaction) domain.MobileMoneyTransaction {
	return domain.MobileMoneyTransaction{
		ID:            tx.ID,
		TransactionID: tx.TransactionID,
		UserID:        tx.UserID,
		Provider:      domain.Provider(tx.Provider),
		PhoneNumber:   tx.PhoneNumber,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		Status:        domain.PaymentStatus(tx.Status),
		Purpose:       domain.PaymentPurpose(tx.Purpose),
		FormationID:   tx.FormationID,
		Description:   tx.Description,
		Metadata:      fromJSON(tx.Metadata),
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	}
}

func transactionDaoToDomain(tx dao.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:             tx.ID,
		FromUserID:     tx.FromUserID,
		ToUserID:       tx.ToUserID,
		Amount:         tx.Amount,
		Type:           domain.TransactionType(tx.Type),
		Status:         domain.PaymentStatus(tx.Status),
		Description:    tx.Description,
		BlockchainHash: tx.BlockchainHash,
		Reference:      tx.Reference,
		CreatedAt:      tx.CreatedAt,
		UpdatedAt:      tx.UpdatedAt,
	}
}

func donationDaoToDomain(d dao.Donation) domain.Donation {
	return domain.Donation{
		ID:              d.ID,
		DonorID:         d.DonorID,
		Amount:          d.Amount,
		Currency:        d.Currency,
		Description:     d.Description,
		Status:          domain.PaymentStatus(d.Status),
		TransactionHash: d.TransactionHash,
		Reference:       d.Reference,
		DonatedAt:       d.DonatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}
