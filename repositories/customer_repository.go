package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"dealer-app/database"
	"dealer-app/models"
	"dealer-app/utils"
)

// ErrNotFound reports an update/delete/get against an id that is not in the
// collection. The write is a no-op in that case.
var ErrNotFound = errors.New("record not found")

type CustomerRepository struct {
	store database.RecordStore
}

func NewCustomerRepository(store database.RecordStore) *CustomerRepository {
	return &CustomerRepository{store: store}
}

// All loads the whole customer collection. Missing or corrupt storage is
// replaced with seed data, so the result is never empty on first use.
func (r *CustomerRepository) All() []models.Customer {
	data, ok := r.store.Load(database.KeyCustomers)
	if ok {
		var customers []models.Customer
		if err := json.Unmarshal(data, &customers); err == nil {
			return customers
		} else {
			log.Println("Failed to parse customers record, reseeding:", err)
		}
	}

	customers := database.SeedCustomers()
	r.saveAll(customers)
	return customers
}

func (r *CustomerRepository) saveAll(customers []models.Customer) error {
	data, err := json.Marshal(customers)
	if err != nil {
		return err
	}
	return r.store.Save(database.KeyCustomers, data)
}

func (r *CustomerRepository) GetByID(id string) (models.Customer, error) {
	for _, c := range r.All() {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Customer{}, ErrNotFound
}

// Create assigns the next C-prefixed id and persists the customer.
func (r *CustomerRepository) Create(customer models.Customer) (models.Customer, error) {
	customers := r.All()

	customer.ID = nextCustomerID(customers)
	if customer.AddedDate == "" {
		customer.AddedDate = utils.Today()
	}
	normalizeCustomer(&customer)

	customers = append(customers, customer)
	if err := r.saveAll(customers); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (r *CustomerRepository) Update(id string, customer models.Customer) (models.Customer, error) {
	customers := r.All()
	for i, c := range customers {
		if c.ID == id {
			customer.ID = id
			normalizeCustomer(&customer)
			customers[i] = customer
			if err := r.saveAll(customers); err != nil {
				return models.Customer{}, err
			}
			return customer, nil
		}
	}
	return models.Customer{}, ErrNotFound
}

func (r *CustomerRepository) Delete(id string) error {
	customers := r.All()
	for i, c := range customers {
		if c.ID == id {
			customers = append(customers[:i], customers[i+1:]...)
			return r.saveAll(customers)
		}
	}
	return ErrNotFound
}

// normalizeCustomer applies the derived fields the list views rely on: the
// concatenated address, the dealInfo mirrors and the auction-house shipping
// fee.
func normalizeCustomer(customer *models.Customer) {
	customer.Address = strings.TrimSpace(customer.Address1 + " " + customer.Address2)
	customer.VinNumber = customer.DealInfo.VinNumber
	customer.CarModel = customer.DealInfo.CarModel
	if customer.DealInfo.AuctionHouse != "" {
		if fee, ok := models.ShippingFees[customer.DealInfo.AuctionHouse]; ok {
			customer.DealInfo.ShippingFee = fee
		}
	}
}

// nextCustomerID returns C%03d with the highest existing sequence plus one,
// so ids stay unique after deletions.
func nextCustomerID(customers []models.Customer) string {
	max := 0
	for _, c := range customers {
		if n, err := strconv.Atoi(strings.TrimPrefix(c.ID, "C")); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("C%03d", max+1)
}
