package models

// StoredRecord holds one named collection as a serialized blob. Every save
// rewrites the whole blob; there are no partial updates.
type StoredRecord struct {
	Key  string `json:"key" gorm:"primaryKey;size:64"`
	Data []byte `json:"data"`
}
