package model

type Table struct {
	ID        string `json:"id"`
	Phase     int    `json:"phase"`
	PhaseDesc string `json:"phaseDesc"`
	Players   int    `json:"players"`
	Round     int    `json:"round"`
	Turn      int    `json:"turn"`
	Seats     []Seat `json:"seats"`
}

type Seat struct {
	Seat   int `json:"seat"`
	Cards  int `json:"cards"`
	Played int `json:"played"`
	Tricks int `json:"tricks"`
	Total  int `json:"total"`
}

type Login struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
