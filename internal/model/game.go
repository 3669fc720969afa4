package model

import (
	"errors"
	"fmt"
	"sync"

	"github.com/benbeisheim/chessbee-backend/internal/engine"
	"github.com/benbeisheim/chessbee-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"
)

var (
	ErrNotYourTurn = errors.New("not your turn")
	ErrGameOver    = errors.New("game is over")

	ErrDuplicateConnection = errors.New("client already connected")
)

// Conn is the part of a websocket connection a game writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// The connections for a specific game
type GameConnections struct {
	connections map[string]Conn // clientID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
	}
}

// Game hosts one board and the clients watching it. All board access goes through mu,
// which also keeps legality queries from interleaving. State snapshots are queued on
// updates under mu and sent by a single broadcaster, so clients see them in move order.
type Game struct {
	ID          string
	Name        string
	mu          sync.Mutex
	board       *engine.Board
	history     []Move
	captured    CapturedPieces
	lastMove    *SimpleMove
	status      engine.GameStatus
	connections *GameConnections
	log         zerolog.Logger

	updates   chan GameState
	done      chan struct{}
	closeOnce sync.Once
}

type GameState struct {
	Name           string            `json:"name,omitempty"`
	Board          *BoardState       `json:"boardState"`
	ToMove         engine.Color      `json:"toMove"`
	MoveCount      int               `json:"moveCount"`
	MoveHistory    []Move            `json:"moveHistory"`
	CapturedPieces CapturedPieces    `json:"capturedPieces"`
	IsCheck        bool              `json:"isCheck"`
	Status         engine.GameStatus `json:"status"`
	Material       Material          `json:"material"`
	LastMove       *SimpleMove       `json:"lastMove"`
}

// CapturedPieces lists the pieces each side has taken.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

type Material struct {
	White int `json:"white"`
	Black int `json:"black"`
}

func NewGame(id string, log zerolog.Logger) *Game {
	g := &Game{
		ID:          id,
		board:       engine.NewBoard(),
		history:     make([]Move, 0),
		captured:    newCapturedPieces(),
		status:      engine.InProgress,
		connections: NewGameConnections(),
		log:         log.With().Str("game", id).Logger(),
		updates:     make(chan GameState, 16),
		done:        make(chan struct{}),
	}
	go g.runBroadcaster()
	return g
}

// Close stops the broadcaster. Queued states that were not sent yet are dropped.
func (g *Game) Close() {
	g.closeOnce.Do(func() { close(g.done) })
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]Piece, 0),
		Black: make([]Piece, 0),
	}
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshot()
}

// snapshot copies the current state. Callers hold mu.
func (g *Game) snapshot() GameState {
	history := make([]Move, len(g.history))
	copy(history, g.history)
	captured := CapturedPieces{
		White: append([]Piece(nil), g.captured.White...),
		Black: append([]Piece(nil), g.captured.Black...),
	}
	if captured.White == nil {
		captured.White = []Piece{}
	}
	if captured.Black == nil {
		captured.Black = []Piece{}
	}
	return GameState{
		Name:           g.Name,
		Board:          newBoardState(g.board),
		ToMove:         g.board.Turn(),
		MoveCount:      g.board.MoveCount(),
		MoveHistory:    history,
		CapturedPieces: captured,
		IsCheck:        g.board.InCheck(g.board.Turn()),
		Status:         g.status,
		Material: Material{
			White: g.board.Material(engine.White),
			Black: g.board.Material(engine.Black),
		},
		LastMove: g.lastMove,
	}
}

// LegalMoves returns the destinations for the piece on square. An empty square has none.
func (g *Game) LegalMoves(square string) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	sq, err := g.board.Lookup(square)
	if err != nil {
		return nil, err
	}
	moves := g.board.LegalMoves(sq)
	out := make([]string, 0, len(moves))
	for _, to := range moves {
		out = append(out, to.String())
	}
	return out, nil
}

func (g *Game) MakeMove(move WSMove) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.log.Debug().Str("from", move.From).Str("to", move.To).Msg("making move")

	if g.status != engine.InProgress {
		return fmt.Errorf("%s: %w", g.status, ErrGameOver)
	}
	from, err := g.board.Lookup(move.From)
	if err != nil {
		return err
	}
	to, err := g.board.Lookup(move.To)
	if err != nil {
		return err
	}
	if p := from.Piece(); p != nil && p.Color != g.board.Turn() {
		return ErrNotYourTurn
	}

	var mover Piece
	if p := from.Piece(); p != nil {
		mover = newPiece(p, from)
	}
	m, err := g.board.MovePiece(from, to)
	if err != nil {
		return err
	}
	g.board.ChangeTurn()

	ply := makePly(m, mover)
	g.recordPly(ply, m.Piece.Color)
	g.lastMove = &SimpleMove{From: ply.From, To: ply.To}
	g.status = g.board.Status()

	event := g.log.Info().Str("from", ply.From).Str("to", ply.To).Int("moveCount", g.board.MoveCount())
	if ply.CapturedPiece != nil {
		event = event.Str("captured", string(ply.CapturedPiece.Type))
	}
	event.Stringer("status", g.status).Msg("move played")

	g.publish(g.snapshot())
	return nil
}

func (g *Game) recordPly(ply Ply, mover engine.Color) {
	if ply.CapturedPiece != nil {
		switch mover {
		case engine.White:
			g.captured.White = append(g.captured.White, *ply.CapturedPiece)
		case engine.Black:
			g.captured.Black = append(g.captured.Black, *ply.CapturedPiece)
		}
	}
	if mover == engine.White || len(g.history) == 0 {
		g.history = append(g.history, Move{})
	}
	last := &g.history[len(g.history)-1]
	switch mover {
	case engine.White:
		last.WhitePly = &ply
	case engine.Black:
		last.BlackPly = &ply
	}
}

// Reset puts the game back to the starting position and clears its history.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.board.Reset()
	g.history = make([]Move, 0)
	g.captured = newCapturedPieces()
	g.lastMove = nil
	g.status = engine.InProgress
	g.log.Info().Msg("game reset")

	g.publish(g.snapshot())
}

// RegisterConnection attaches conn for clientID and queues the current state for it.
// A second connection for a client that is already attached is closed and
// ErrDuplicateConnection returned; the first one stays.
func (g *Game) RegisterConnection(clientID string, conn Conn) error {
	g.connections.mu.Lock()
	if _, exists := g.connections.connections[clientID]; exists {
		g.connections.mu.Unlock()
		g.log.Warn().Str("client", clientID).Msg("rejecting duplicate connection")
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Connection already exists"),
		)
		conn.Close()
		return ErrDuplicateConnection
	}
	g.connections.connections[clientID] = conn
	g.connections.mu.Unlock()
	g.log.Info().Str("client", clientID).Msg("registered connection")

	g.mu.Lock()
	g.publish(g.snapshot())
	g.mu.Unlock()
	return nil
}

// UnregisterConnection detaches clientID, but only while conn is the connection
// registered for it.
func (g *Game) UnregisterConnection(clientID string, conn Conn) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if current, exists := g.connections.connections[clientID]; exists && current == conn {
		g.log.Info().Str("client", clientID).Msg("unregistered connection")
		delete(g.connections.connections, clientID)
	}
}

// Connections reports how many clients are attached.
func (g *Game) Connections() int {
	g.connections.mu.RLock()
	defer g.connections.mu.RUnlock()
	return len(g.connections.connections)
}

// publish queues state for the broadcaster. Callers hold mu.
func (g *Game) publish(state GameState) {
	select {
	case g.updates <- state:
	case <-g.done:
	}
}

func (g *Game) runBroadcaster() {
	for {
		select {
		case state := <-g.updates:
			g.broadcastState(state)
		case <-g.done:
			return
		}
	}
}

// broadcastState pushes state to every attached client, dropping the ones that fail.
func (g *Game) broadcastState(state GameState) {
	g.connections.mu.RLock()
	active := make(map[string]Conn, len(g.connections.connections))
	for clientID, conn := range g.connections.connections {
		active[clientID] = conn
	}
	g.connections.mu.RUnlock()

	msg, err := ws.NewMessage(ws.MessageTypeGameState, state)
	if err != nil {
		g.log.Error().Err(err).Msg("failed to marshal state")
		return
	}
	for clientID, conn := range active {
		if err := conn.WriteJSON(msg); err != nil {
			g.log.Warn().Err(err).Str("client", clientID).Msg("failed to send state, dropping connection")
			g.UnregisterConnection(clientID, conn)
			continue
		}
		g.log.Debug().Str("client", clientID).Msg("sent state")
	}
}
