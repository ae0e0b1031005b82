package spinner

type OptionRequest struct {
	Text string `json:"text"` // Текст опции, обрезается по краям
}

type OptionResponse struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Active bool   `json:"active"`
}

type AddOptionResponse struct {
	Option *OptionResponse `json:"option"` // nil, если опция не добавлена
	Added  bool            `json:"added"`
}

type OptionsResponse struct {
	Options     []OptionResponse `json:"options"`
	ActiveCount int              `json:"active_count"`
	TotalCount  int              `json:"total_count"`
}

type ResultResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"` // Unix-миллисекунды
}

type ResultsResponse struct {
	Results []ResultResponse `json:"results"`
}

type SpinResponse struct {
	Winner        OptionResponse `json:"winner"`
	Index         int            `json:"index"`          // Индекс среди активных опций
	ActiveCount   int            `json:"active_count"`   // Кол-во секторов на момент спина
	ExtraSpins    int            `json:"extra_spins"`    // Полные обороты
	StartRotation float64        `json:"start_rotation"` // Градусы
	FinalRotation float64        `json:"final_rotation"` // Градусы
	DurationMs    int64          `json:"duration_ms"`
	StartedAt     int64          `json:"started_at"` // Unix-миллисекунды
}

type SegmentResponse struct {
	OptionID   string  `json:"option_id"`
	Text       string  `json:"text"`
	Label      string  `json:"label"` // Укороченный текст для сектора
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Color      string  `json:"color"` // hsl(...)
}

type WheelResponse struct {
	Rotation    float64           `json:"rotation"`
	Spinning    bool              `json:"spinning"`
	Winner      *string           `json:"winner"`
	ShowWinner  bool              `json:"show_winner"`
	Segments    []SegmentResponse `json:"segments"`
	ActiveCount int               `json:"active_count"`
	TotalCount  int               `json:"total_count"`
	AllDone     bool              `json:"all_done"`
}

type ThemeRequest struct {
	DarkMode *bool `json:"dark_mode"`
}

type ThemeResponse struct {
	DarkMode bool `json:"dark_mode"`
}

type ImportResponse struct {
	Options int `json:"options"` // Кол-во опций после импорта
	Results int `json:"results"` // Кол-во записей истории после импорта
}

type HealthResponse struct {
	Status string `json:"status"`
}
