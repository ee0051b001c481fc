package catalog

import "quantum_slots/internal/model"

const (
	SymbolArtoria     = "artoria"
	SymbolGilgamesh   = "gilgamesh"
	SymbolNobunaga    = "nobunaga"
	SymbolJeanneAlter = "jeanne_alter"
	SymbolIshtar      = "ishtar"
	SymbolNero        = "nero"
	SymbolMuramasa    = "muramasa"
	SymbolPhantasmoon = "phantasmoon"
	SymbolMelt        = "melt"
	SymbolSolomon     = "solomon"
)

const (
	baseSymbolValue  = 1000
	baseSymbolWeight = 1
)

func DefaultSymbols() []model.Symbol {
	sym := func(id, name string, negative bool) model.Symbol {
		return model.Symbol{
			ID:         id,
			Name:       name,
			BaseValue:  baseSymbolValue,
			BaseWeight: baseSymbolWeight,
			IsNegative: negative,
		}
	}

	return []model.Symbol{
		sym(SymbolArtoria, "Artoria", false),
		sym(SymbolGilgamesh, "Gilgamesh", false),
		sym(SymbolNobunaga, "Oda Nobunaga", false),
		sym(SymbolJeanneAlter, "Jeanne Alter", false),
		sym(SymbolIshtar, "Ishtar", false),
		sym(SymbolNero, "Nero", false),
		sym(SymbolMuramasa, "Senji Muramasa", false),
		sym(SymbolPhantasmoon, "Phantasmoon", false),
		sym(SymbolMelt, "Meltryllis", false),
		// Единственный отрицательный символ
		sym(SymbolSolomon, "Solomon", true),
	}
}
