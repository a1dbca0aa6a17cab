package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// BoardSize количество клеток на поле
	BoardSize = 16
	// PrizeStep шаг призовых значений 5, 10, ..., 75
	PrizeStep = 5
	// PrizeCount количество призовых клеток
	PrizeCount = BoardSize - 1

	bonusMarker = "bonus"
)

var ErrInvalidBoard = errors.New("invalid board")

// Cell - клетка поля: либо денежный приз, либо бонус-маркер
type Cell struct {
	Bonus bool
	Value int
}

func PrizeCell(value int) Cell {
	return Cell{Value: value}
}

func BonusCell() Cell {
	return Cell{Bonus: true}
}

func (c Cell) String() string {
	if c.Bonus {
		return bonusMarker
	}
	return fmt.Sprintf("%d", c.Value)
}

// MarshalJSON кодирует бонус как строку "bonus", приз как число
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.Bonus {
		return json.Marshal(bonusMarker)
	}
	return json.Marshal(c.Value)
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	var value int
	if err := json.Unmarshal(data, &value); err == nil {
		*c = Cell{Value: value}
		return nil
	}

	var marker string
	if err := json.Unmarshal(data, &marker); err != nil {
		return fmt.Errorf("cell must be a number or %q: %w", bonusMarker, err)
	}
	if marker != bonusMarker {
		return fmt.Errorf("unknown cell marker %q", marker)
	}
	*c = BonusCell()
	return nil
}

// Board - игровое поле из 16 клеток
type Board []Cell

// Clone возвращает независимую копию поля
func (b Board) Clone() Board {
	if b == nil {
		return nil
	}
	out := make(Board, len(b))
	copy(out, b)
	return out
}

// PrizeValues возвращает призовой ряд 5, 10, ..., 75
func PrizeValues() []int {
	values := make([]int, PrizeCount)
	for i := range values {
		values[i] = (i + 1) * PrizeStep
	}
	return values
}

// Validate проверяет инвариант обычного поля:
// 16 клеток, ровно один бонус, остальные - перестановка 5..75
func (b Board) Validate() error {
	if len(b) != BoardSize {
		return fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidBoard, BoardSize, len(b))
	}

	expected := make(map[int]bool, PrizeCount)
	for _, v := range PrizeValues() {
		expected[v] = true
	}

	bonuses := 0
	for i, cell := range b {
		if cell.Bonus {
			bonuses++
			continue
		}
		if !expected[cell.Value] {
			return fmt.Errorf("%w: unexpected or duplicate value %d at cell %d", ErrInvalidBoard, cell.Value, i)
		}
		delete(expected, cell.Value)
	}

	if bonuses != 1 {
		return fmt.Errorf("%w: expected exactly one bonus cell, got %d", ErrInvalidBoard, bonuses)
	}
	return nil
}
