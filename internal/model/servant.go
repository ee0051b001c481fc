package model

type Servant struct {
	ID          string
	Name        string
	BasePrice   int
	Description string
	Effect      Effect
}

// OneTime расходуется при активации и не остается в активном составе
func (s Servant) OneTime() bool {
	return s.Effect != nil && s.Effect.Kind().OneTime()
}

// ShopEntry слот магазина. Price - цена с учетом скидок на момент снимка.
type ShopEntry struct {
	Servant Servant
	Price   int
}

// QueuedAutoPattern авто-фигура, ожидающая выбора хода
type QueuedAutoPattern struct {
	ServantID string
	Patterns  []PatternType
	Count     int
}
