// Package cartrepo provides the data transfer objects and mapping functions
// for cart persistence. A cart is stored in a single slot row holding the
// serialized line item collection; the mapping layer also migrates payloads
// written under the legacy item schema to the current one.
package cartrepo

import (
	"encoding/json"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartSlotDTO represents the database row for one cart slot.
// The payload column holds the serialized line item collection; the row is
// overwritten wholesale on every cart mutation.
type CartSlotDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Payload   []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "cart_slots".
func (CartSlotDTO) TableName() string {
	return "cart_slots"
}

// lineItemRecord is the persisted JSON form of one line item. The canonical
// fields carry the current schema. The legacy fields appear only in payloads
// written before line items had keys; they are never written back.
//
// The variant field deliberately has no omitempty: a migrated legacy record
// carries an empty variant, and dropping the field would make the payload
// look legacy again on the next read.
type lineItemRecord struct {
	Key         string `json:"key,omitempty"`
	ProductID   string `json:"productId,omitempty"`
	Variant     string `json:"variant"`
	Quantity    int    `json:"quantity,omitempty"`
	UnitPrice   int64  `json:"unitPrice,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	ImageRef    string `json:"imageRef,omitempty"`

	LegacyID    string  `json:"id,omitempty"`
	LegacyShade string  `json:"shade,omitempty"`
	LegacyQty   int     `json:"qty,omitempty"`
	LegacyPrice float64 `json:"price,omitempty"`
	LegacyName  string  `json:"name,omitempty"`
	LegacyImage string  `json:"image,omitempty"`
}

// itemsFromPayload deserializes a slot payload into line items, migrating
// legacy records and skipping records that cannot be repaired. The dirty
// flag reports whether the payload differs from its canonical form and
// should be re-persisted. Only a payload that is not valid JSON at all is
// an error.
func itemsFromPayload(payload []byte) ([]*cart.LineItem, bool, error) {
	var records []lineItemRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, false, err
	}

	dirty := false
	items := make([]*cart.LineItem, 0, len(records))
	index := make(map[string]int, len(records))

	for _, record := range records {
		item, recordDirty := toLineItem(record)
		dirty = dirty || recordDirty
		if item == nil {
			continue
		}

		// Migration may surface duplicate keys; merge them, keeping the
		// first occurrence's snapshot.
		if i, ok := index[item.Key().String()]; ok {
			merged, err := cart.RestoreLineItem(
				item.Key(),
				items[i].Quantity()+item.Quantity(),
				items[i].UnitPrice(),
				items[i].DisplayName(),
				items[i].ImageRef(),
			)
			if err != nil {
				continue
			}
			items[i] = merged
			dirty = true
			continue
		}

		index[item.Key().String()] = len(items)
		items = append(items, item)
	}

	return items, dirty, nil
}

// toLineItem converts one stored record to a domain line item. A nil item
// means the record was skipped. The dirty flag is set when the record was
// legacy or unrepairable, so the caller knows the payload must be rewritten.
func toLineItem(record lineItemRecord) (*cart.LineItem, bool) {
	if record.ProductID != "" {
		key, err := kernel.NewLineItemKey(record.ProductID, record.Variant)
		if err != nil {
			return nil, true
		}

		item, err := cart.RestoreLineItem(
			key, record.Quantity, kernel.Price(record.UnitPrice), record.DisplayName, record.ImageRef)
		if err != nil {
			return nil, true
		}
		return item, false
	}

	// Legacy record: the key is derived from the id and shade fields.
	// A record without an id cannot be given an identity and is dropped.
	if record.LegacyID == "" {
		return nil, true
	}

	key, err := kernel.NewLineItemKey(record.LegacyID, record.LegacyShade)
	if err != nil {
		return nil, true
	}

	unitPrice, err := kernel.NewPriceFromFloat(record.LegacyPrice)
	if err != nil {
		return nil, true
	}

	quantity := record.LegacyQty
	if quantity < 1 {
		quantity = 1
	}

	item, err := cart.RestoreLineItem(key, quantity, unitPrice, record.LegacyName, record.LegacyImage)
	if err != nil {
		return nil, true
	}

	return item, true
}

// payloadFromItems serializes line items into the canonical payload form.
func payloadFromItems(items []*cart.LineItem) ([]byte, error) {
	records := make([]lineItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, lineItemRecord{
			Key:         item.Key().String(),
			ProductID:   item.ProductID(),
			Variant:     item.Variant(),
			Quantity:    item.Quantity(),
			UnitPrice:   int64(item.UnitPrice()),
			DisplayName: item.DisplayName(),
			ImageRef:    item.ImageRef(),
		})
	}

	return json.Marshal(records)
}

// fromDomain converts a cart aggregate to its database representation.
// UpdatedAt is stamped at conversion time so stale-slot purging sees the
// moment of the last write.
func fromDomain(aggregate *cart.Cart) (CartSlotDTO, error) {
	payload, err := payloadFromItems(aggregate.Items())
	if err != nil {
		return CartSlotDTO{}, err
	}

	return CartSlotDTO{
		ID:        aggregate.ID().Bytes(),
		Payload:   payload,
		UpdatedAt: time.Now(),
	}, nil
}
