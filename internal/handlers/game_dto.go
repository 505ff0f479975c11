package handlers

import (
	"errors"
	"net/url"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-engine/internal/commands"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/sessions"
)

var ErrBadGameParams = errors.New("query must contain either preset or both size and mine_count")

type CreateNewGameDTO struct {
	Preset    string `schema:"preset"`
	Size      int    `schema:"size"`
	MineCount int    `schema:"mine_count"`
	Custom    bool   `schema:"-"`
}

func ParseCreateNewGameDTO(src map[string][]string) (CreateNewGameDTO, error) {
	var dto CreateNewGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&dto, src); err != nil {
		return dto, err
	}
	query := url.Values(src)
	hasSize, hasMines := query.Has("size"), query.Has("mine_count")
	if hasSize != hasMines || (hasSize && dto.Preset != "") {
		return dto, ErrBadGameParams
	}
	dto.Custom = hasSize
	return dto, nil
}

// Params resolves the requested board, falling back to the named default
// preset when the query names none.
func (dto CreateNewGameDTO) Params(defaultPreset string) (mines.GameParams, error) {
	switch {
	case dto.Custom:
		return mines.GameParams{Size: dto.Size, MineCount: dto.MineCount}, nil
	case dto.Preset != "":
		return mines.ParsePreset(dto.Preset)
	default:
		return mines.ParsePreset(defaultPreset)
	}
}

type MoveDTO struct {
	Move    commands.Op      `json:"move"`
	X       int              `json:"x"`
	Y       int              `json:"y"`
	Applied bool             `json:"applied"`
	Outcome *mines.Outcome   `json:"outcome,omitempty"`
	Mark    *mines.CellState `json:"mark,omitempty"`
}

func NewMoveDTO(res commands.Result) *MoveDTO {
	dto := &MoveDTO{
		Move:    res.Command.Op,
		X:       res.Command.Point.X,
		Y:       res.Command.Point.Y,
		Applied: res.Applied,
	}
	switch res.Command.Op {
	case commands.Open, commands.Chord:
		outcome := res.Outcome
		dto.Outcome = &outcome
	case commands.Flag:
		mark := res.Mark
		dto.Mark = &mark
	}
	return dto
}

type GameSessionDTO struct {
	GameSessionId string             `json:"game_session_id"`
	Ticket        string             `json:"ticket,omitempty"`
	Grid          [][]mines.CellView `json:"grid"`
	Size          int                `json:"size"`
	MineCount     int                `json:"mine_count"`
	Preset        string             `json:"preset"`
	Status        mines.Status       `json:"status"`
	Remaining     int                `json:"remaining"`
	StartedAt     int64              `json:"started_at"`
	Move          *MoveDTO           `json:"move,omitempty"`
}

// NewGameSessionDTO must be called while holding the session, i.e. from
// inside Session.Do.
func NewGameSessionDTO(s *sessions.Session, g *mines.Game) *GameSessionDTO {
	return &GameSessionDTO{
		GameSessionId: s.ID,
		Grid:          g.View(),
		Size:          g.Size,
		MineCount:     g.MineCount,
		Preset:        g.Preset(),
		Status:        g.Status(),
		Remaining:     g.Remaining(),
		StartedAt:     s.StartedAt.UnixMilli(),
	}
}

type PresetDTO struct {
	Name      string `json:"name"`
	Size      int    `json:"size"`
	MineCount int    `json:"mine_count"`
}

type BatchErrorDTO struct {
	Loc   int    `json:"loc"`
	Error string `json:"error"`
}
