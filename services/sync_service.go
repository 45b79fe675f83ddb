package services

import (
	"errors"
	"log"

	"dealer-app/models"
	"dealer-app/repositories"
	"dealer-app/utils"
)

// SyncService keeps the customer and inventory collections consistent. It is
// the only writer of inventory status, customerId, reservedDate and
// soldDate; every customer write path must run through it.
type SyncService struct {
	customers *repositories.CustomerRepository
	inventory *repositories.InventoryRepository
}

func NewSyncService(customers *repositories.CustomerRepository, inventory *repositories.InventoryRepository) *SyncService {
	return &SyncService{customers: customers, inventory: inventory}
}

// DeriveInventoryStatus maps a customer's delivery status to the inventory
// status of the bound vehicle. Total over all inputs: unknown values fall
// back to available.
func DeriveInventoryStatus(deliveryStatus string) string {
	switch deliveryStatus {
	case models.DeliveryNegotiating:
		return models.StatusNegotiating
	case models.DeliveryAwaiting, models.DeliveryDelivered:
		return models.StatusSold
	default:
		return models.StatusAvailable
	}
}

// ApplyCustomerBinding reconciles inventory after a customer save. If the
// bound VIN changed, the old item is released first. A VIN with no matching
// item is tolerated: the customer keeps its manually entered vehicle fields
// and no inventory is touched.
func (s *SyncService) ApplyCustomerBinding(customer models.Customer, previousVin string) {
	vin := customer.VinNumber

	if previousVin != "" && previousVin != vin {
		s.inventory.Release(previousVin)
	}

	if vin == "" {
		return
	}
	if _, ok := s.inventory.FindByVin(vin); !ok {
		return
	}

	status := DeriveInventoryStatus(customer.DeliveryStatus)
	soldDate := ""
	if status == models.StatusSold {
		soldDate = utils.FirstNonEmpty(customer.ContractDate, utils.Today())
	}
	reservedDate := utils.FirstNonEmpty(customer.ContractDate, utils.Today())

	s.inventory.SetBinding(vin, status, customer.ID, reservedDate, soldDate)
}

// ReleaseInventory is the single un-binding operation, shared by VIN change,
// customer delete and explicit release.
func (s *SyncService) ReleaseInventory(vin string) bool {
	return s.inventory.Release(vin)
}

// ReleaseCustomerBinding clears the VIN link on the customer bound to a
// deleted inventory item. Only the VIN fields are touched; the rest of the
// deal stays as entered.
func (s *SyncService) ReleaseCustomerBinding(item models.InventoryItem) {
	if item.CustomerID == nil {
		return
	}

	customer, err := s.customers.GetByID(*item.CustomerID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			log.Println("Failed to load bound customer:", err)
		}
		return
	}

	customer.VinNumber = ""
	customer.DealInfo.VinNumber = ""
	if _, err := s.customers.Update(customer.ID, customer); err != nil {
		log.Println("Failed to clear customer binding:", err)
	}
}

// VehicleSnapshot copies the vehicle and price fields of an inventory item
// onto a deal. Used by the explicit pick and by the 17-character VIN
// auto-complete; the binding itself is only established at save time.
func VehicleSnapshot(deal models.DealInfo, item models.InventoryItem) models.DealInfo {
	deal.VinNumber = item.VehicleInfo.VinNumber
	deal.CarModel = item.VehicleInfo.CarModel
	deal.Maker = item.VehicleInfo.Maker
	deal.Color = item.VehicleInfo.Color
	deal.Grade = item.VehicleInfo.Grade
	deal.Year = item.VehicleInfo.Year
	deal.Mileage = item.VehicleInfo.Mileage
	deal.ModelType = item.VehicleInfo.ModelType
	deal.SalesPrice = item.SalesInfo.SalesPrice
	return deal
}
