package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Raymond9734/parking-customers-backend/internal/models"
	"github.com/Raymond9734/parking-customers-backend/internal/repository"
)

// CustomerService handles customer business logic
type CustomerService interface {
	Create(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	List(ctx context.Context, query models.CustomerQuery) ([]*models.Customer, error)
	ListPage(ctx context.Context, query models.CustomerQuery, page, pageSize int) (*CustomerListResult, error)
	Update(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	Delete(ctx context.Context, id string) error
	PreviewExpiry(ctx context.Context, in ExpiryInput) (ExpiryResult, error)
}

type customerService struct {
	customerRepo  repository.CustomerRepository
	expirySvc     ExpiryService
	collectionSvc CollectionService
	logger        *slog.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	expirySvc ExpiryService,
	collectionSvc CollectionService,
	logger *slog.Logger,
) CustomerService {
	return &customerService{
		customerRepo:  customerRepo,
		expirySvc:     expirySvc,
		collectionSvc: collectionSvc,
		logger:        logger,
	}
}

// Create creates a new customer with a freshly derived expiry date
func (s *customerService) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	customer.ApplyDefaults()
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	// On create the previous expiry is whatever the caller supplied.
	if err := s.refreshExpiry(customer, customer.ExpiryDate); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		s.logger.Error("failed to create customer",
			slog.String("license_plate", customer.LicensePlate),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("customer created",
		slog.String("customer_id", customer.ID),
		slog.String("license_plate", customer.LicensePlate),
		slog.String("expiry_date", customer.ExpiryDate),
	)

	return customer, nil
}

// GetByID retrieves a customer by ID
func (s *customerService) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return customer, nil
}

// List retrieves customers matching the search, in the requested order
func (s *customerService) List(ctx context.Context, query models.CustomerQuery) ([]*models.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	filtered := s.collectionSvc.Filter(customers, query.Search)

	return s.collectionSvc.SortBy(filtered, query.SortBy, query.Order)
}

// ListPage returns one page of the filtered, sorted customers
func (s *customerService) ListPage(ctx context.Context, query models.CustomerQuery, page, pageSize int) (*CustomerListResult, error) {
	page, pageSize = models.NormalizePage(page, pageSize)

	customers, err := s.List(ctx, query)
	if err != nil {
		return nil, err
	}

	return &CustomerListResult{
		Data:       models.Paginate(customers, page, pageSize),
		Pagination: models.NewPaginationResult(page, pageSize, len(customers)),
	}, nil
}

// Update updates an existing customer in place, keeping its ID
func (s *customerService) Update(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	existing, err := s.customerRepo.GetByID(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	customer.ApplyDefaults()
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	previous := customer.ExpiryDate
	if previous == "" {
		previous = existing.ExpiryDate
	}
	if err := s.refreshExpiry(customer, previous); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		s.logger.Error("failed to update customer",
			slog.String("customer_id", customer.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	s.logger.Info("customer updated",
		slog.String("customer_id", customer.ID),
		slog.String("expiry_date", customer.ExpiryDate),
	)

	return customer, nil
}

// Delete removes a customer
func (s *customerService) Delete(ctx context.Context, id string) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete customer",
			slog.String("customer_id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	s.logger.Info("customer deleted",
		slog.String("customer_id", id),
	)

	return nil
}

// PreviewExpiry runs the expiry calculation without storing anything
func (s *customerService) PreviewExpiry(ctx context.Context, in ExpiryInput) (ExpiryResult, error) {
	result, err := s.expirySvc.Calculate(in)
	if err != nil {
		return ExpiryResult{}, models.ErrUnprocessable(err)
	}

	return result, nil
}

// refreshExpiry recomputes the expiry date from one snapshot of the record.
// When the calculation is skipped the previous value is kept.
func (s *customerService) refreshExpiry(customer *models.Customer, previous string) error {
	result, err := s.expirySvc.Calculate(ExpiryInputFromCustomer(customer))
	if err != nil {
		return models.ErrUnprocessable(err)
	}

	if result.Computed {
		customer.ExpiryDate = result.ExpiryDate
	} else {
		customer.ExpiryDate = previous
	}

	return nil
}
