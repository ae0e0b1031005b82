package model

// Snapshot документ экспорта/импорта
type Snapshot struct {
	Options []Option `json:"options"`
	Results []Result `json:"results"`
}

// ImportDocument разобранный файл импорта; nil означает, что ключа в файле не было
type ImportDocument struct {
	Options *[]Option `json:"options"`
	Results *[]Result `json:"results"`
}
