package rng

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source источник случайности для генерации поля, событий и магазина
type Source interface {
	Float64() float64 // [0, 1)
	IntN(n int) int   // [0, n)
}

// NewDefault PCG, засеянный из crypto/rand
func NewDefault() Source {
	var buf [16]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// откат на глобальный генератор math/rand/v2
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(binary.BigEndian.Uint64(buf[:8]), binary.BigEndian.Uint64(buf[8:])))
}

// NewSeeded воспроизводимый генератор (тесты, симуляции)
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, 0))
}

// Seeded фабрика воспроизводимых генераторов: каждый вызов начинает с того же seed
func Seeded(seed uint64) func() Source {
	return func() Source {
		return NewSeeded(seed)
	}
}

// Shuffle перемешивание Фишера-Йетса поверх Source
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		swap(i, j)
	}
}

// Scripted отдает заранее заданные значения по кругу.
// Пустая последовательность всегда дает 0.
type Scripted struct {
	floats []float64
	ints   []int
	fi, ii int
}

func NewScripted(floats []float64, ints []int) *Scripted {
	return &Scripted{floats: floats, ints: ints}
}

func (s *Scripted) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *Scripted) IntN(n int) int {
	if len(s.ints) == 0 || n <= 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	if v < 0 {
		v = -v
	}
	return v % n
}
