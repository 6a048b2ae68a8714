package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/Raymond9734/parking-customers-backend/internal/models"
)

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	List(ctx context.Context) ([]*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id string) error
}

// customerRepository keeps customers in insertion order for the lifetime
// of the process. Records are copied on the way in and out.
type customerRepository struct {
	mu        sync.RWMutex
	customers []models.Customer
}

// NewCustomerRepository creates a new in-memory customer repository
func NewCustomerRepository() CustomerRepository {
	return &customerRepository{}
}

// Create appends a new customer, assigning an ID when none is set
func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if customer.ID == "" {
		customer.ID = uuid.NewString()
	} else if r.indexOf(customer.ID) >= 0 {
		return models.ErrConflictWithMsg(fmt.Sprintf("customer with ID %s already exists", customer.ID))
	}

	r.customers = append(r.customers, *customer)
	return nil
}

// GetByID retrieves a customer by ID
func (r *customerRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("customer with ID %s not found", id))
	}

	customer := r.customers[i]
	return &customer, nil
}

// List returns all customers in insertion order
func (r *customerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]*models.Customer, len(r.customers))
	for i := range r.customers {
		customer := r.customers[i]
		customers[i] = &customer
	}

	return customers, nil
}

// Update replaces an existing customer in place, keeping its position
func (r *customerRepository) Update(ctx context.Context, customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(customer.ID)
	if i < 0 {
		return models.ErrNotFoundWithMsg(fmt.Sprintf("customer with ID %s not found", customer.ID))
	}

	r.customers[i] = *customer
	return nil
}

// Delete removes a customer
func (r *customerRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.ErrNotFoundWithMsg(fmt.Sprintf("customer with ID %s not found", id))
	}

	r.customers = slices.Delete(r.customers, i, i+1)
	return nil
}

// indexOf must be called with the lock held
func (r *customerRepository) indexOf(id string) int {
	return slices.IndexFunc(r.customers, func(c models.Customer) bool {
		return c.ID == id
	})
}
