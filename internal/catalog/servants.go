package catalog

import "quantum_slots/internal/model"

func boost(symbol string) model.SymbolBoost {
	return model.SymbolBoost{Symbol: symbol, ValueMult: 1.0, WeightMult: 1.0}
}

func boostDesc(name string) string {
	return name + " symbols: base value +100%, weight +100%"
}

// DefaultServants 33 слуги. Цены только из ступеней 0/3/6/9.
func DefaultServants() []model.Servant {
	return []model.Servant{
		{ID: "bb", Name: "BB", BasePrice: 6,
			Description: "Quantum from every source is doubled",
			Effect:      model.QuantumDouble{}},
		{ID: "enkidu", Name: "Enkidu", BasePrice: 3,
			Description: boostDesc("Gilgamesh"),
			Effect:      boost(SymbolGilgamesh)},
		{ID: "hokusai", Name: "Katsushika Hokusai", BasePrice: 6,
			Description: "One extra spin every turn",
			Effect:      model.ExtraSpin{Spins: 1}},
		{ID: "scathach", Name: "Scathach-Skadi", BasePrice: 9,
			Description: "At turn start settles top V and bottom V once for the best symbol",
			Effect:      model.AutoPattern{Patterns: []model.PatternType{model.PatternTopV, model.PatternBottomV}, Count: 1}},
		{ID: "barvan", Name: "Barghest", BasePrice: 3,
			Description: "Negative symbols: base value and weight halved",
			Effect:      model.NegativeSymbolReduce{ValueMult: -0.5, WeightMult: -0.5}},
		{ID: "morgan", Name: "Morgan", BasePrice: 3,
			Description: boostDesc("Artoria"),
			Effect:      boost(SymbolArtoria)},
		{ID: "caster", Name: "Caster", BasePrice: 9,
			Description: "Saint quartz gained from turns +100%",
			Effect:      model.SaintQuartzDouble{Multiplier: 1.0}},
		{ID: "karen", Name: "Karen", BasePrice: 6,
			Description: "At turn start settles horizontal 3 and vertical 3 twice for the best symbol",
			Effect:      model.AutoPattern{Patterns: []model.PatternType{model.PatternHorizontal3, model.PatternVertical3}, Count: 2}},
		{ID: "ere", Name: "Ereshkigal", BasePrice: 6,
			Description: "Quantum from top V and bottom V +100%",
			Effect:      model.PatternBoost{Patterns: []model.PatternType{model.PatternTopV, model.PatternBottomV}, Multiplier: 1.0}},
		{ID: "oberon", Name: "Oberon", BasePrice: 6,
			Description: "Round start: quantum -50%. Level end: quantum +200%",
			Effect:      model.Oberon{StartMult: -0.5, EndMult: 2.0}},
		{ID: "aozaki", Name: "Aozaki Aoko", BasePrice: 6,
			Description: "One extra round per level",
			Effect:      model.ExtraRound{Rounds: 1}},
		{ID: "emiya", Name: "EMIYA", BasePrice: 3,
			Description: boostDesc("Senji Muramasa"),
			Effect:      boost(SymbolMuramasa)},
		{ID: "bride_nero", Name: "Nero Bride", BasePrice: 3,
			Description: boostDesc("Nero"),
			Effect:      boost(SymbolNero)},
		{ID: "quetzalcoatl", Name: "Quetzalcoatl", BasePrice: 6,
			Description: "At turn start settles horizontal 5 three times for the best symbol",
			Effect:      model.AutoPattern{Patterns: []model.PatternType{model.PatternHorizontal5}, Count: 3}},
		{ID: "lilith", Name: "Lilith", BasePrice: 9,
			Description: "One extra event choice per level",
			Effect:      model.ExtraEvent{Events: 1}},
		{ID: "douman", Name: "Ashiya Douman", BasePrice: 3,
			Description: boostDesc("Negative"),
			Effect:      boost(SymbolSolomon)},
		{ID: "romulus", Name: "Romulus-Quirinus", BasePrice: 9,
			Description: "At turn start settles the full board once for the best symbol",
			Effect:      model.AutoPattern{Patterns: []model.PatternType{model.PatternFull}, Count: 1}},
		{ID: "melusine", Name: "Melusine", BasePrice: 9,
			Description: "Servant prices drop one tier: 9 to 6, 6 to 3, 3 to free",
			Effect:      model.PriceReduction{Tiers: 1}},
		{ID: "ciel", Name: "Ciel", BasePrice: 3,
			Description: boostDesc("Phantasmoon"),
			Effect:      boost(SymbolPhantasmoon)},
		{ID: "demon_king_nobunaga", Name: "Demon King Nobunaga", BasePrice: 3,
			Description: boostDesc("Oda Nobunaga"),
			Effect:      boost(SymbolNobunaga)},
		{ID: "qin_shi_huang", Name: "Qin Shi Huang", BasePrice: 9,
			Description: "Level target -25%",
			Effect:      model.TargetReduction{Fraction: 0.25}},
		{ID: "sei_shonagon", Name: "Sei Shonagon", BasePrice: 0,
			Description: "Refreshes the servant shop once (one-time)",
			Effect:      model.RefreshShop{}},
		{ID: "reines", Name: "Reines", BasePrice: 3,
			Description: "Servant prices permanently -1",
			Effect:      model.PermanentPriceReduction{Amount: 1}},
		{ID: "tai_gong_wang", Name: "Taikoubou", BasePrice: 3,
			Description: "Turns into a random servant (one-time)",
			Effect:      model.RandomServant{}},
		{ID: "space_ishtar", Name: "Space Ishtar", BasePrice: 3,
			Description: boostDesc("Ishtar"),
			Effect:      boost(SymbolIshtar)},
		{ID: "tezcatlipoca", Name: "Tezcatlipoca", BasePrice: 6,
			Description: "Turns into a random 9 quartz servant (one-time)",
			Effect:      model.RandomServantPrice{TargetPrice: 9}},
		{ID: "king_hassan", Name: "King Hassan", BasePrice: 3,
			Description: "Immune to the negative symbol quantum loss",
			Effect:      model.ImmuneNegative{}},
		{ID: "musashi", Name: "Miyamoto Musashi", BasePrice: 0,
			Description: "Turns into a random 3 quartz servant (one-time)",
			Effect:      model.RandomServantPrice{TargetPrice: 3}},
		{ID: "osakabehime", Name: "Osakabehime", BasePrice: 3,
			Description: boostDesc("Meltryllis"),
			Effect:      boost(SymbolMelt)},
		{ID: "arthur", Name: "Arthur Pendragon", BasePrice: 6,
			Description: "Negative symbols no longer score or wipe the turn",
			Effect:      model.DisableNegative{}},
		{ID: "edmond", Name: "Edmond Dantes", BasePrice: 3,
			Description: boostDesc("Jeanne Alter"),
			Effect:      boost(SymbolJeanneAlter)},
		{ID: "yang_guifei", Name: "Yang Guifei", BasePrice: 3,
			Description: "Turns into a random 6 quartz servant (one-time)",
			Effect:      model.RandomServantPrice{TargetPrice: 6}},
		{ID: "elizabeth", Name: "Elisabeth Bathory", BasePrice: 9,
			Description: "Turns into two random servants (one-time)",
			Effect:      model.RandomServants{Count: 2}},
	}
}
