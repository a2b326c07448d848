package domain

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile - одна клетка карты.
// Инвариант: стена это Passable=false И BlocksSight=true, пол - точное отрицание.
// Passable/BlocksSight фиксируются генератором и после этого не меняются;
// мутируют только Explored и Visible.
type Tile struct {
	Passable    bool `json:"passable"`
	BlocksSight bool `json:"blocksSight"`

	// Explored монотонен: однажды выставленный, он никогда не сбрасывается.
	Explored bool `json:"explored"`
	// Visible пересчитывается целиком при каждом пересчете FOV.
	Visible bool `json:"visible"`
}

// GameMap - карта уровня. Плоский слайс с row-major индексацией y*Width+x.
type GameMap struct {
	Tiles  []Tile `json:"tiles"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// NewGameMap создает карту, целиком заполненную стенами.
// Комнаты и коридоры потом "вырезает" генератор.
func NewGameMap(width, height int) *GameMap {
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = Tile{Passable: false, BlocksSight: true}
	}
	return &GameMap{Tiles: tiles, Width: width, Height: height}
}

// Index возвращает индекс тайла в плоском слайсе.
func (m *GameMap) Index(x, y int) int {
	return y*m.Width + x
}

// InBounds проверяет, что координаты внутри карты.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// At возвращает указатель на тайл. Паникует при выходе за границы,
// вызывающий обязан проверить InBounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[m.Index(x, y)]
}

// IsWall возвращает true, если клетка непроходима (или вне карты).
func (m *GameMap) IsWall(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return !m.Tiles[m.Index(x, y)].Passable
}

// Carve превращает клетку в пол.
func (m *GameMap) Carve(x, y int) {
	t := m.At(x, y)
	t.Passable = true
	t.BlocksSight = false
}
