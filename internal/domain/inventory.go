package domain

// InventoryCapacity - по одной ячейке на каждую выбираемую букву a..z.
const InventoryCapacity = 26

// Inventory - упорядоченная коллекция сущностей, снятых с карты.
type Inventory struct {
	Items    []*Entity `json:"items"`
	Capacity int       `json:"capacity"`
}

func NewInventory(capacity int) *Inventory {
	return &Inventory{
		Items:    make([]*Entity, 0, capacity),
		Capacity: capacity,
	}
}

// Add добавляет предмет в конец. При переполнении возвращает CapacityError:
// это восстановимая ситуация, предмет остается на карте.
func (inv *Inventory) Add(e *Entity) error {
	if len(inv.Items) >= inv.Capacity {
		return &CapacityError{Capacity: inv.Capacity}
	}
	inv.Items = append(inv.Items, e)
	return nil
}

// At возвращает предмет по индексу или nil, если индекс вне диапазона.
func (inv *Inventory) At(index int) *Entity {
	if index < 0 || index >= len(inv.Items) {
		return nil
	}
	return inv.Items[index]
}

// Remove убирает предмет по индексу, сохраняя порядок остальных.
func (inv *Inventory) Remove(index int) *Entity {
	item := inv.At(index)
	if item == nil {
		return nil
	}
	inv.Items = append(inv.Items[:index], inv.Items[index+1:]...)
	return item
}

func (inv *Inventory) Len() int {
	return len(inv.Items)
}

func (inv *Inventory) IsFull() bool {
	return len(inv.Items) >= inv.Capacity
}
