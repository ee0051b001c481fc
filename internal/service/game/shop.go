package game

import (
	"quantum_slots/internal/model"
	"quantum_slots/internal/service"
	"quantum_slots/internal/service/effect"
	"quantum_slots/pkg/rng"
)

// refreshShop заново набирает магазин из слуг, которых нет в составе и инвентаре
func (s *Session) refreshShop() {
	available := make([]model.Servant, 0)
	for _, sv := range s.cat.Servants() {
		if !s.owns(sv.ID) {
			available = append(available, sv)
		}
	}
	rng.Shuffle(s.rng, len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})
	if len(available) > s.rules.ShopSize {
		available = available[:s.rules.ShopSize]
	}
	s.shop = available
}

// restock добавляет в магазин слугу той же базовой цены, если такой есть
func (s *Session) restock(price int) {
	var candidates []model.Servant
	for _, sv := range s.cat.ServantsByPrice(price) {
		if !s.owns(sv.ID) && indexOf(s.shop, sv.ID) < 0 {
			candidates = append(candidates, sv)
		}
	}
	if len(candidates) == 0 {
		return
	}
	s.shop = append(s.shop, candidates[s.rng.IntN(len(candidates))])
}

// price цена найма с учетом ступени и постоянной скидки
func (s *Session) price(sv model.Servant) int {
	return effect.Price(sv.BasePrice, s.active, s.priceReduction, s.rules.PriceTiers)
}

// BuyServant покупка слуги из магазина
func (s *Session) BuyServant(id string) ([]model.Transition, error) {
	if err := s.ensureLive(); err != nil {
		return nil, err
	}
	if _, known := s.cat.Servant(id); !known {
		return nil, service.ErrUnknownServant
	}
	idx := indexOf(s.shop, id)
	if idx < 0 {
		return nil, service.ErrServantNotInShop
	}
	sv := s.shop[idx]
	price := s.price(sv)
	if s.saintQuartz < price {
		return nil, service.ErrInsufficientQuartz
	}
	s.begin()

	s.saintQuartz -= price

	// Слуга обновления магазина срабатывает сразу и в инвентарь не попадает
	if sv.Effect != nil && sv.Effect.Kind() == model.EffectRefreshShop {
		s.refreshShop()
		s.shop = removeAll(s.shop, id)
		return s.flush(), nil
	}

	s.inventory = append(s.inventory, sv)
	s.shop = append(s.shop[:idx], s.shop[idx+1:]...)
	if len(s.shop) < s.rules.ShopSize {
		s.restock(sv.BasePrice)
	}
	return s.flush(), nil
}

// RefreshShopWithQuartz платное обновление магазина
func (s *Session) RefreshShopWithQuartz() ([]model.Transition, error) {
	if err := s.ensureLive(); err != nil {
		return nil, err
	}
	if s.saintQuartz < s.rules.RefreshCost {
		return nil, service.ErrInsufficientQuartz
	}
	s.begin()
	s.saintQuartz -= s.rules.RefreshCost
	s.refreshShop()
	return s.flush(), nil
}

// ActivateServant переводит слугу из инвентаря в активный состав и применяет эффект
func (s *Session) ActivateServant(id string) ([]model.Transition, error) {
	if err := s.ensureLive(); err != nil {
		return nil, err
	}
	if _, known := s.cat.Servant(id); !known {
		return nil, service.ErrUnknownServant
	}
	if len(s.active) >= s.rules.MaxActiveServants {
		return nil, service.ErrRosterFull
	}
	idx := indexOf(s.inventory, id)
	if idx < 0 {
		return nil, service.ErrNotInInventory
	}
	s.begin()

	sv := s.inventory[idx]
	s.inventory = append(s.inventory[:idx], s.inventory[idx+1:]...)
	s.active = append(s.active, sv)

	act := s.effects.Activate(effectTarget{s: s}, sv)
	if act.AutoPattern != nil {
		s.autoPatterns = append(s.autoPatterns, *act.AutoPattern)
	}
	return s.flush(), nil
}

//---------- ВСПОМОГАТЕЛЬНЫЕ МЕТОДЫ ----------

func (s *Session) owns(id string) bool {
	return indexOf(s.active, id) >= 0 || indexOf(s.inventory, id) >= 0
}

func indexOf(list []model.Servant, id string) int {
	for i, sv := range list {
		if sv.ID == id {
			return i
		}
	}
	return -1
}

func removeAll(list []model.Servant, id string) []model.Servant {
	res := list[:0]
	for _, sv := range list {
		if sv.ID != id {
			res = append(res, sv)
		}
	}
	return res
}
