package http

import (
	"encoding/json"

	"github.com/avetisov/matchroom-server/internal/core"
	"github.com/avetisov/matchroom-server/internal/proto"
)

func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeCreateRoom:
		var data proto.CreateRoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.PlayerName == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "playerName is required"}, nil
		}
		return &core.Command{
			Kind:       core.CommandCreateRoom,
			PlayerName: data.PlayerName,
		}, nil, nil
	case proto.InboundTypeJoinRoom:
		var data proto.JoinRoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.RoomCode == "" || data.PlayerName == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "roomCode and playerName are required"}, nil
		}
		return &core.Command{
			Kind:       core.CommandJoinRoom,
			Room:       data.RoomCode,
			PlayerName: data.PlayerName,
		}, nil, nil
	case proto.InboundTypeStartGame, proto.InboundTypeResetGame:
		var data proto.RoomCodeData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.RoomCode == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "roomCode is required"}, nil
		}
		kind := core.CommandStartGame
		if inbound.Type == proto.InboundTypeResetGame {
			kind = core.CommandResetGame
		}
		return &core.Command{Kind: kind, Room: data.RoomCode}, nil, nil
	case proto.InboundTypeMakeMove:
		var data proto.MakeMoveData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.RoomCode == "" || data.Position == nil {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "roomCode and position are required"}, nil
		}
		return &core.Command{
			Kind:     core.CommandMakeMove,
			Room:     data.RoomCode,
			Position: *data.Position,
		}, nil, nil
	case proto.InboundTypeSendMessage:
		var data proto.SendMessageData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, nil, err
		}
		if data.RoomCode == "" || data.Message == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "roomCode and message are required"}, nil
		}
		return &core.Command{
			Kind:       core.CommandSendMessage,
			Room:       data.RoomCode,
			PlayerName: data.PlayerName,
			Text:       data.Message,
		}, nil, nil
	default:
		return nil, &proto.Error{Code: "invalid_message", Msg: "unknown message type"}, nil
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventRoomCreated:
		room := wireRoom(*event.Room)
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventRoomCreated,
			Data:  proto.RoomCreatedData{RoomCode: room.Code, Room: room},
		}
	case core.EventRoomUpdated:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventRoomUpdated,
			Data:  proto.RoomUpdatedData{Room: wireRoom(*event.Room)},
		}
	case core.EventGameStarted:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventGameStarted,
			Data:  wireRoom(*event.Room),
		}
	case core.EventGameUpdated:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventGameUpdated,
			Data:  wireGame(*event.Game),
		}
	case core.EventGameReset:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventGameReset,
			Data:  wireGame(*event.Game),
		}
	case core.EventNewMessage:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNewMessage,
			Data: proto.ChatMessage{
				ID:         event.Message.ID,
				PlayerName: event.Message.PlayerName,
				Message:    event.Message.Text,
				Timestamp:  event.Message.Timestamp,
			},
		}
	case core.EventRoomError:
		return wireError(proto.ErrorEventRoom, event.Error)
	case core.EventGameError:
		return wireError(proto.ErrorEventGame, event.Error)
	case core.EventChatError:
		return wireError(proto.ErrorEventChat, event.Error)
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}

func wireError(eventName string, cerr *core.CoreError) proto.Outbound {
	if cerr == nil {
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Event: eventName,
			Error: &proto.Error{Code: "unknown", Msg: "unknown error"},
		}
	}
	return proto.Outbound{
		Type:  proto.OutboundTypeError,
		Event: eventName,
		Error: &proto.Error{Code: cerr.Code, Msg: cerr.Message},
	}
}

func wireRoom(view core.RoomView) proto.Room {
	players := make([]proto.Player, 0, len(view.Players))
	for _, p := range view.Players {
		players = append(players, proto.Player{
			ID:     p.ID,
			Name:   p.Name,
			Symbol: string(p.Symbol),
		})
	}
	return proto.Room{
		Code:      view.Code,
		Players:   players,
		GameState: wireGame(view.Game),
	}
}

func wireGame(game core.GameState) proto.GameState {
	board := make([]*string, len(game.Board))
	for i, cell := range game.Board {
		board[i] = wireSymbol(cell)
	}
	return proto.GameState{
		Board:         board,
		CurrentPlayer: string(game.Turn),
		Winner:        wireSymbol(game.Winner),
		IsDraw:        game.Draw,
		GameStarted:   game.Started,
	}
}

// wireSymbol maps the empty symbol to JSON null.
func wireSymbol(s core.Symbol) *string {
	if s == core.SymbolNone {
		return nil
	}
	v := string(s)
	return &v
}
