package model

// Request payloads shared by the REST and WebSocket surfaces.

type MoveRequest struct {
	From      Position  `json:"from"`
	To        Position  `json:"to"`
	Promotion PieceType `json:"promotion"`
}

type SelectRequest struct {
	Square Position `json:"square"`
}

type PromoteRequest struct {
	Piece PieceType `json:"piece"`
}

type PlaceRequest struct {
	Piece  PieceType `json:"piece"`
	Color  Color     `json:"color"`
	Square Position  `json:"square"`
}

// ClearRequest with a nil Square clears the whole board.
type ClearRequest struct {
	Square *Position `json:"square"`
}

type FENRequest struct {
	FEN string `json:"fen"`
}
