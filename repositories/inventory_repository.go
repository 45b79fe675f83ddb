package repositories

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"dealer-app/database"
	"dealer-app/models"
)

type InventoryRepository struct {
	store database.RecordStore
}

func NewInventoryRepository(store database.RecordStore) *InventoryRepository {
	return &InventoryRepository{store: store}
}

// All loads the whole inventory collection, seeding on missing or corrupt
// storage. Loaded items without a status come from a schema before the
// status lifecycle existed and are replaced with seed data.
func (r *InventoryRepository) All() []models.InventoryItem {
	data, ok := r.store.Load(database.KeyInventory)
	if ok {
		var items []models.InventoryItem
		if err := json.Unmarshal(data, &items); err == nil {
			if len(items) > 0 && items[0].Status == "" {
				items = database.SeedInventory()
				r.saveAll(items)
			}
			return items
		} else {
			log.Println("Failed to parse inventory record, reseeding:", err)
		}
	}

	items := database.SeedInventory()
	r.saveAll(items)
	return items
}

func (r *InventoryRepository) saveAll(items []models.InventoryItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.store.Save(database.KeyInventory, data)
}

func (r *InventoryRepository) GetByID(id string) (models.InventoryItem, error) {
	for _, item := range r.All() {
		if item.ID == id {
			return item, nil
		}
	}
	return models.InventoryItem{}, ErrNotFound
}

// FindByVin returns the first item carrying the VIN. VIN uniqueness is not
// enforced; first match wins.
func (r *InventoryRepository) FindByVin(vin string) (models.InventoryItem, bool) {
	if vin == "" {
		return models.InventoryItem{}, false
	}
	for _, item := range r.All() {
		if item.VehicleInfo.VinNumber == vin {
			return item, true
		}
	}
	return models.InventoryItem{}, false
}

// Available returns items that can still be offered to a customer.
func (r *InventoryRepository) Available() []models.InventoryItem {
	available := []models.InventoryItem{}
	for _, item := range r.All() {
		if item.Status == models.StatusAvailable {
			available = append(available, item)
		}
	}
	return available
}

// Search does a case-insensitive substring match across model, maker, VIN,
// year, color and display location.
func (r *InventoryRepository) Search(query string) []models.InventoryItem {
	items := r.All()
	if query == "" {
		return items
	}

	q := strings.ToLower(query)
	matched := []models.InventoryItem{}
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.VehicleInfo.CarModel), q) ||
			strings.Contains(strings.ToLower(item.VehicleInfo.Maker), q) ||
			strings.Contains(strings.ToLower(item.VehicleInfo.VinNumber), q) ||
			strings.Contains(item.VehicleInfo.Year, query) ||
			strings.Contains(strings.ToLower(item.VehicleInfo.Color), q) ||
			strings.Contains(strings.ToLower(item.SalesInfo.DisplayLocation), q) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Create assigns the next INV-prefixed id. New items always start with no
// binding.
func (r *InventoryRepository) Create(item models.InventoryItem) (models.InventoryItem, error) {
	items := r.All()

	item.ID = nextInventoryID(items)
	if item.Status == "" {
		item.Status = models.StatusAvailable
	}
	item.CustomerID = nil
	item.ReservedDate = ""
	item.SoldDate = ""

	items = append(items, item)
	if err := r.saveAll(items); err != nil {
		return models.InventoryItem{}, err
	}
	return item, nil
}

// Update replaces an item's editable fields. status, customerId,
// reservedDate and soldDate are preserved from the stored item: those are
// owned by the binding synchronizer and cannot be set through a form save.
func (r *InventoryRepository) Update(id string, item models.InventoryItem) (models.InventoryItem, error) {
	items := r.All()
	for i, existing := range items {
		if existing.ID == id {
			item.ID = id
			item.Status = existing.Status
			item.CustomerID = existing.CustomerID
			item.ReservedDate = existing.ReservedDate
			item.SoldDate = existing.SoldDate
			items[i] = item
			if err := r.saveAll(items); err != nil {
				return models.InventoryItem{}, err
			}
			return item, nil
		}
	}
	return models.InventoryItem{}, ErrNotFound
}

func (r *InventoryRepository) Delete(id string) error {
	items := r.All()
	for i, item := range items {
		if item.ID == id {
			items = append(items[:i], items[i+1:]...)
			return r.saveAll(items)
		}
	}
	return ErrNotFound
}

// SetBinding writes the binding fields of the first item matching the VIN.
// Empty reservedDate/soldDate keep the stored values. Only the sync service
// calls this.
func (r *InventoryRepository) SetBinding(vin, status, customerID, reservedDate, soldDate string) bool {
	if vin == "" {
		return false
	}
	items := r.All()
	for i, item := range items {
		if item.VehicleInfo.VinNumber != vin {
			continue
		}
		item.Status = status
		if customerID != "" {
			item.CustomerID = &customerID
		} else {
			item.CustomerID = nil
		}
		if reservedDate != "" {
			item.ReservedDate = reservedDate
		}
		if soldDate != "" {
			item.SoldDate = soldDate
		}
		items[i] = item
		r.saveAll(items)
		return true
	}
	return false
}

// Release puts the item matching the VIN back to available and clears its
// binding. Releasing an already-available item leaves it unchanged.
func (r *InventoryRepository) Release(vin string) bool {
	if vin == "" {
		return false
	}
	items := r.All()
	for i, item := range items {
		if item.VehicleInfo.VinNumber != vin {
			continue
		}
		item.Status = models.StatusAvailable
		item.CustomerID = nil
		item.ReservedDate = ""
		item.SoldDate = ""
		items[i] = item
		r.saveAll(items)
		return true
	}
	return false
}

func nextInventoryID(items []models.InventoryItem) string {
	max := 0
	for _, item := range items {
		if n, err := strconv.Atoi(strings.TrimPrefix(item.ID, "INV")); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("INV%03d", max+1)
}
