package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/castlegate/chess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// Castling-rights indices per color.
const (
	castleKingside  = 0
	castleQueenside = 1
)

var (
	ErrOutOfBounds        = errors.New("square out of bounds")
	ErrNoPiece            = errors.New("no piece at square")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrIllegalMove        = errors.New("invalid move, not legal")
	ErrPromotionPending   = errors.New("promotion pending")
	ErrNoPendingPromotion = errors.New("no promotion pending")
	ErrBadPromotion       = errors.New("invalid promotion piece")
	ErrBadColor           = errors.New("invalid piece color")
)

// Terminal classifies a finished position.
type Terminal string

const (
	TerminalNone      Terminal = ""
	TerminalCheckmate Terminal = "checkmate"
	TerminalStalemate Terminal = "stalemate"
)

type SimpleMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// GameState is the complete rules-engine state: board, turn, castling
// rights, en-passant target, clocks and the transient selection/promotion
// bookkeeping the UI consumes. It is mutated exclusively by ApplyMove,
// ResolvePromotion, LoadFEN and the board-editing entry points.
type GameState struct {
	Board           *BoardState `json:"boardState"`
	ToMove          Color       `json:"toMove"`
	IsCheck         bool        `json:"isCheck"`
	CastlingRights  [2][2]bool  `json:"castlingRights"` // [color][kingside,queenside]
	EnPassantTarget *Position   `json:"enPassantTarget"`
	HalfmoveClock   int         `json:"halfmoveClock"`
	FullmoveNumber  int         `json:"fullmoveNumber"`
	SelectedSquare  *Position   `json:"selectedSquare"`
	LegalDests      []Position  `json:"legalMoves"`
	PromotionSquare *Position   `json:"promotionSquare"`
	Resolve         Terminal    `json:"resolve,omitempty"`
	LastMove        *SimpleMove `json:"lastMove"`
}

func newGameState() GameState {
	return GameState{
		Board:          newBoardState(),
		ToMove:         White,
		CastlingRights: [2][2]bool{{true, true}, {true, true}},
		HalfmoveClock:  0,
		FullmoveNumber: 1,
	}
}

// IsInCheck reports whether side's king square is attacked.
func (gs *GameState) IsInCheck(side Color) bool {
	return gs.Board.isAttacked(gs.Board.KingCoords[side], side.Other())
}

// PlacePiece puts a piece on the board directly, bypassing move legality
// (board-editing entry point). Placing a king moves that side's tracked
// king coordinate and forfeits its castling rights.
func (gs *GameState) PlacePiece(p PieceType, c Color, pos Position) error {
	if !boundaryCheck(pos) {
		return ErrOutOfBounds
	}
	if p == Empty {
		return gs.ClearSquare(pos)
	}
	if c != White && c != Black {
		return ErrBadColor
	}
	gs.Board.placePiece(p, c, pos)
	if p == King {
		gs.CastlingRights[c] = [2]bool{false, false}
	}
	gs.afterEdit()
	return nil
}

// ClearSquare empties a square (board-editing entry point). Removing a king
// forfeits that side's castling rights; the tracked king coordinate keeps
// its last value until a king is placed again.
func (gs *GameState) ClearSquare(pos Position) error {
	if !boundaryCheck(pos) {
		return ErrOutOfBounds
	}
	if sq := gs.Board.at(pos); sq.Piece == King {
		gs.CastlingRights[sq.Color] = [2]bool{false, false}
	}
	gs.Board.clearSquare(pos)
	gs.afterEdit()
	return nil
}

// ClearBoard empties all 64 squares.
func (gs *GameState) ClearBoard() {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			gs.Board.clearSquare(Position{X: x, Y: y})
		}
	}
	gs.CastlingRights = [2][2]bool{}
	gs.afterEdit()
}

func (gs *GameState) afterEdit() {
	gs.SelectedSquare = nil
	gs.LegalDests = nil
	gs.PromotionSquare = nil
	gs.EnPassantTarget = nil
	gs.Resolve = TerminalNone
	gs.IsCheck = gs.IsInCheck(gs.ToMove)
}

// The connections for a specific game.
type GameConnections struct {
	connections map[string]*websocket.Conn // clientID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game is a single board session: the engine state plus the UI clients
// observing it. All access is serialized by the mutex.
type Game struct {
	ID          string
	mu          sync.Mutex
	state       GameState
	connections *GameConnections
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		state:       newGameState(),
		connections: NewGameConnections(),
	}
}

// NewGameFromFEN starts a session from a FEN position.
func NewGameFromFEN(id, fen string) (*Game, error) {
	gs, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{
		ID:          id,
		state:       *gs,
		connections: NewGameConnections(),
	}, nil
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// LegalMoves runs the selection cycle: computes the legal destinations for
// the piece at pos and records the selection in the broadcast state so the
// UI can highlight it.
func (g *Game) LegalMoves(pos Position) ([]Position, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	moves, err := g.state.LegalMoves(pos)
	if err != nil {
		return nil, err
	}
	sel := pos
	g.state.SelectedSquare = &sel
	g.state.LegalDests = moves
	go g.broadcastState()
	return moves, nil
}

// MakeMove applies a move for the side to move. A pawn reaching the last
// rank without a promotion choice leaves the turn suspended until Promote
// is called.
func (g *Game) MakeMove(from, to Position, promotion PieceType) (MoveOutcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	outcome, err := g.state.ApplyMove(from, to, promotion)
	if err != nil {
		return MoveOutcome{}, err
	}
	go g.broadcastState()
	return outcome, nil
}

// Promote supplies the piece choice for a suspended promotion.
func (g *Game) Promote(p PieceType) (MoveOutcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	outcome, err := g.state.ResolvePromotion(p)
	if err != nil {
		return MoveOutcome{}, err
	}
	go g.broadcastState()
	return outcome, nil
}

func (g *Game) IsInCheck(side Color) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.IsInCheck(side)
}

func (g *Game) FEN() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.FEN()
}

func (g *Game) LoadFEN(fen string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.state.LoadFEN(fen); err != nil {
		return err
	}
	go g.broadcastState()
	return nil
}

func (g *Game) PlacePiece(p PieceType, c Color, pos Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.state.PlacePiece(p, c, pos); err != nil {
		return err
	}
	go g.broadcastState()
	return nil
}

func (g *Game) ClearSquare(pos Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.state.ClearSquare(pos); err != nil {
		return err
	}
	go g.broadcastState()
	return nil
}

func (g *Game) ClearBoard() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state.ClearBoard()
	go g.broadcastState()
}

func (g *Game) RegisterConnection(clientID string, conn *websocket.Conn) error {
	g.connections.mu.Lock()
	if _, exists := g.connections.connections[clientID]; exists {
		// Keep the healthy connection and reject the duplicate.
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"connection already exists",
			),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[clientID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(clientID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	delete(g.connections.connections, clientID)
}

func (g *Game) broadcastState() {
	g.mu.Lock()
	payload, err := json.Marshal(g.state)
	g.mu.Unlock()
	if err != nil {
		fmt.Println("failed to marshal state:", err)
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for clientID, conn := range g.connections.connections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			fmt.Println("failed to send state to client", clientID, err)
			delete(g.connections.connections, clientID)
		}
	}
}
