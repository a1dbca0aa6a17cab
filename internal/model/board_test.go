package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func validBoard() Board {
	board := Board{BonusCell()}
	for _, v := range PrizeValues() {
		board = append(board, PrizeCell(v))
	}
	return board
}

func TestPrizeValues(t *testing.T) {
	values := PrizeValues()
	if len(values) != 15 {
		t.Fatalf("expected 15 values, got %d", len(values))
	}
	if values[0] != 5 || values[14] != 75 {
		t.Fatalf("unexpected range %d..%d", values[0], values[14])
	}
}

func TestBoardValidate(t *testing.T) {
	tests := []struct {
		name    string
		board   func() Board
		wantErr bool
	}{
		{name: "valid", board: validBoard},
		{name: "short", board: func() Board { return validBoard()[:15] }, wantErr: true},
		{name: "two bonuses", board: func() Board {
			b := validBoard()
			b[5] = BonusCell()
			return b
		}, wantErr: true},
		{name: "no bonus", board: func() Board {
			b := validBoard()
			b[0] = PrizeCell(80)
			return b
		}, wantErr: true},
		{name: "duplicate value", board: func() Board {
			b := validBoard()
			b[2] = b[1]
			return b
		}, wantErr: true},
		{name: "scaled bonus board", board: func() Board {
			b := validBoard()
			for i := range b {
				b[i].Value *= 10
			}
			return b
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.board().Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBoard) {
					t.Fatalf("expected ErrInvalidBoard, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCellJSON(t *testing.T) {
	board := Board{BonusCell(), PrizeCell(25)}
	data, err := json.Marshal(board)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `["bonus",25]` {
		t.Fatalf("unexpected json %s", data)
	}

	var decoded Board
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded[0].Bonus || decoded[1].Value != 25 {
		t.Fatalf("unexpected decoded board %v", decoded)
	}
}

func TestCellJSONRejectsUnknownMarker(t *testing.T) {
	var c Cell
	if err := json.Unmarshal([]byte(`"jackpot"`), &c); err == nil {
		t.Fatal("expected error for unknown marker")
	}
	if err := json.Unmarshal([]byte(`true`), &c); err == nil {
		t.Fatal("expected error for boolean cell")
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := validBoard()
	c := b.Clone()
	c[1] = PrizeCell(999)
	if b[1].Value == 999 {
		t.Fatal("clone shares storage with original")
	}
}
