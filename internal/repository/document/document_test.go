package document

import (
	"board_backend/internal/model"
	"board_backend/internal/repository"
	"errors"
	"testing"
)

func testBoard() model.Board {
	board := model.Board{}
	for _, v := range model.PrizeValues() {
		board = append(board, model.PrizeCell(v))
	}
	return append(board, model.BonusCell())
}

func bonusBoard() model.Board {
	out := make(model.Board, model.BoardSize)
	for i := range out {
		out[i] = model.PrizeCell((i + 1) * 50)
	}
	return out
}

func TestEncodeDecodeBonusState(t *testing.T) {
	prize := model.BonusCell()
	dice := model.DiceRoll{6, 5}
	state := &model.GameState{
		Balance:   50,
		Position:  11,
		Bonus:     &model.BonusRound{Board: bonusBoard(), FreeSpins: 3},
		LastPrize: &prize,
		LastDice:  &dice,
	}

	boardJSON, stateJSON, err := Encode(testBoard(), state)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	board, decoded, err := Decode(boardJSON, stateJSON)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(board) != model.BoardSize || !board[15].Bonus {
		t.Fatalf("unexpected board %v", board)
	}
	if decoded.Mode() != model.ModeBonus || decoded.FreeSpins() != 3 || decoded.Position != 11 {
		t.Fatalf("unexpected state %+v", decoded)
	}
	if decoded.LastPrize == nil || !decoded.LastPrize.Bonus {
		t.Fatalf("bonus prize lost: %+v", decoded.LastPrize)
	}
	if *decoded.LastDice != dice {
		t.Fatalf("dice lost: %v", decoded.LastDice)
	}
}

func TestDecodeCorruptDocuments(t *testing.T) {
	goodBoard, _, err := Encode(testBoard(), model.NewGameState(100))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	tests := []struct {
		name  string
		board string
		state string
	}{
		{name: "board not json", board: "{", state: `{"balance":1,"position":0,"mode":"REGULAR"}`},
		{name: "board too short", board: `[5,10,"bonus"]`, state: `{"balance":1,"position":0,"mode":"REGULAR"}`},
		{name: "missing mode", board: string(goodBoard), state: `{"balance":1,"position":0}`},
		{name: "missing balance", board: string(goodBoard), state: `{"position":0,"mode":"REGULAR"}`},
		{name: "unknown mode", board: string(goodBoard), state: `{"balance":1,"position":0,"mode":"TURBO"}`},
		{name: "position out of range", board: string(goodBoard), state: `{"balance":1,"position":16,"mode":"REGULAR"}`},
		{name: "regular with bonus spins", board: string(goodBoard), state: `{"balance":1,"position":0,"mode":"REGULAR","freespin_amount":2}`},
		{name: "bonus without board", board: string(goodBoard), state: `{"balance":1,"position":0,"mode":"BONUS","freespin_amount":2}`},
		{name: "bad dice", board: string(goodBoard), state: `{"balance":1,"position":0,"mode":"REGULAR","last_dice_result":[0,7]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode([]byte(tt.board), []byte(tt.state))
			if !errors.Is(err, repository.ErrCorruptState) {
				t.Fatalf("expected ErrCorruptState, got %v", err)
			}
		})
	}
}

func TestEncodeRejectsNilState(t *testing.T) {
	if _, _, err := Encode(testBoard(), nil); err == nil {
		t.Fatal("expected error for nil state")
	}
}
