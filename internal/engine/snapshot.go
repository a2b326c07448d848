package engine

import (
	"github.com/sir-pinecone/rusty-roguelike/pkg/api"
)

// Snapshot собирает снимок мира для рендер-коллаборатора:
// флаги всех тайлов, позиция/живость/отображение каждой сущности,
// инвентарь и сообщения, появившиеся после отметки logMark.
// Снимок только для чтения - он собирается копированием.
func (s *Session) Snapshot(msgType string, res TickResult, logMark int) api.ServerResponse {
	resp := api.ServerResponse{
		Type:      msgType,
		Outcome:   res.Outcome.String(),
		Grid:      &api.GridMeta{Width: s.Map.Width, Height: s.Map.Height},
		Selection: res.Selection,
		LookNames: res.LookNames,
	}

	resp.Map = make([]api.TileView, 0, len(s.Map.Tiles))
	for y := 0; y < s.Map.Height; y++ {
		for x := 0; x < s.Map.Width; x++ {
			t := s.Map.At(x, y)
			resp.Map = append(resp.Map, api.TileView{
				X:           x,
				Y:           y,
				Passable:    t.Passable,
				BlocksSight: t.BlocksSight,
				Visible:     t.Visible,
				Explored:    t.Explored,
			})
		}
	}

	resp.Entities = make([]api.EntityView, 0, len(s.Entities))
	for _, e := range s.Entities {
		view := api.EntityView{
			ID:    e.ID.String(),
			Type:  e.Type,
			Name:  e.Name,
			Alive: e.Alive,
		}
		view.Pos.X = e.Pos.X
		view.Pos.Y = e.Pos.Y
		if e.Render != nil {
			view.Render.Symbol = e.Render.Symbol
			view.Render.Color = e.Render.Color
		}
		if e == s.Player && e.Combat != nil {
			view.Stats = &api.StatsView{
				HP:      e.Combat.HP,
				MaxHP:   e.Combat.MaxHP,
				Defense: e.Combat.Defense,
				Power:   e.Combat.Power,
			}
			player := view
			resp.Player = &player
		}
		resp.Entities = append(resp.Entities, view)
	}

	for i, item := range s.Inventory.Items {
		view := api.ItemView{Index: i, Name: item.Name}
		if item.Render != nil {
			view.Symbol = item.Render.Symbol
			view.Color = item.Render.Color
		}
		resp.Inventory = append(resp.Inventory, view)
	}

	for _, entry := range s.Log.Since(logMark) {
		resp.Logs = append(resp.Logs, api.LogView{Text: entry.Text, Type: entry.Type})
	}

	return resp
}
