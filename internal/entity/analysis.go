package entity

// Analysis - engine view of an arbitrary position. Value is from X's side.
type Analysis struct {
	Board      Board   `json:"board"`
	Mover      Mark    `json:"mover"`
	Outcome    Outcome `json:"outcome"`
	LegalMoves []int   `json:"legal_moves"`
	Value      int     `json:"value"`
	BestMove   *int    `json:"best_move"`
}
