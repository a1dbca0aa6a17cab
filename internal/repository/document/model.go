package document

import "board_backend/internal/model"

// State - JSON документ состояния сессии, как он лежит в хранилище.
// available_to_spin не хранится - он вычисляется.
type State struct {
	Balance        int             `json:"balance"`
	Position       int             `json:"position"`
	Mode           model.Mode      `json:"mode"`
	FreespinAmount int             `json:"freespin_amount"`
	BonusBoard     model.Board     `json:"bonus_board,omitempty"`
	LastPrizeWon   *model.Cell     `json:"last_prize_won,omitempty"`
	LastDiceResult *model.DiceRoll `json:"last_dice_result,omitempty"`
}
