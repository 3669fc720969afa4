package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/benbeisheim/chessbee-backend/internal/model"
	"github.com/benbeisheim/chessbee-backend/internal/service"
	"github.com/benbeisheim/chessbee-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"
)

type WebSocketController struct {
	gameService *service.GameService
	log         zerolog.Logger
}

func NewWebSocketController(gameService *service.GameService, log zerolog.Logger) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
		log:         log,
	}
}

// syncConn serializes writes; broadcasts and replies reach the same socket from different goroutines.
type syncConn struct {
	mu   sync.Mutex
	conn model.Conn
}

func (s *syncConn) WriteJSON(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

func (s *syncConn) WriteMessage(messageType int, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteMessage(messageType, data)
}

func (s *syncConn) Close() error {
	return s.conn.Close()
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	clientID, _ := c.Locals("clientID").(string)
	log := wsc.log.With().Str("game", gameID).Str("client", clientID).Logger()
	conn := &syncConn{conn: c}

	if err := wsc.gameService.RegisterConnection(gameID, clientID, conn); err != nil {
		log.Warn().Err(err).Msg("failed to register connection")
		if !errors.Is(err, model.ErrDuplicateConnection) {
			wsc.sendError(conn, err)
			c.Close()
		}
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, clientID, conn)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debug().Err(err).Msg("read loop ended")
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		wsc.dispatch(gameID, conn, message)
	}
}

// dispatch handles one inbound frame and writes any reply or error to conn.
func (wsc *WebSocketController) dispatch(gameID string, conn model.Conn, data []byte) {
	var msg ws.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		wsc.sendError(conn, fmt.Errorf("malformed message: %w", err))
		return
	}

	reply, err := wsc.handleMessage(gameID, msg)
	if err != nil {
		wsc.log.Debug().Err(err).Str("game", gameID).Str("type", string(msg.Type)).Msg("message rejected")
		wsc.sendError(conn, err)
		return
	}
	if reply != nil {
		if err := conn.WriteJSON(*reply); err != nil {
			wsc.log.Warn().Err(err).Str("game", gameID).Msg("failed to send reply")
		}
	}
}

// handleMessage applies msg to the game. State changes reach clients through the
// game's broadcast, so only queries produce a direct reply.
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) (*ws.Message, error) {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.WSMove
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return nil, fmt.Errorf("malformed move: %w", err)
		}
		_, err := wsc.gameService.HandleMove(gameID, move)
		return nil, err

	case ws.MessageTypeLegalMoves:
		var req ws.LegalMovesRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return nil, fmt.Errorf("malformed legal moves request: %w", err)
		}
		moves, err := wsc.gameService.LegalMoves(gameID, req.Square)
		if err != nil {
			return nil, err
		}
		reply, err := ws.NewMessage(ws.MessageTypeLegalMoves, ws.LegalMovesResponse{
			Square: req.Square,
			Moves:  moves,
		})
		if err != nil {
			return nil, err
		}
		return &reply, nil

	case ws.MessageTypeReset:
		_, err := wsc.gameService.ResetGame(gameID)
		return nil, err

	default:
		return nil, fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(conn model.Conn, err error) {
	msg, mErr := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()})
	if mErr != nil {
		return
	}
	if wErr := conn.WriteJSON(msg); wErr != nil {
		wsc.log.Warn().Err(wErr).Msg("failed to send error")
	}
}
