package model

// Symbol статическое описание символа барабана
type Symbol struct {
	ID         string
	Name       string
	BaseValue  float64
	BaseWeight float64
	IsNegative bool
}

// SymbolState текущие значение и вес символа внутри сессии
type SymbolState struct {
	ID            string
	BaseValue     float64
	BaseWeight    float64
	CurrentValue  float64
	CurrentWeight float64
	IsNegative    bool
}

// Probability нормированный вес символа для отображения клиенту
type Probability struct {
	SymbolID    string
	Probability float64
	Value       float64
	Weight      float64
	IsNegative  bool
}
