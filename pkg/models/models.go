package models

// VehicleReport представляет диагностический отчет по автомобилю
type VehicleReport struct {
	VehicleID         string            `json:"vehicleId"`
	Status            string            `json:"status"` // OK, ALERT, UNKNOWN
	IsServiceNeeded   bool              `json:"isServiceNeeded"`
	Predictions       []PredictionEntry `json:"predictions"`
	RecommendedAction string            `json:"recommendedAction"`
	LastUpdated       string            `json:"lastUpdated"`
}

// PredictionEntry представляет прогноз отказа одного компонента
type PredictionEntry struct {
	Component  string     `json:"component"`
	Issue      string     `json:"issue"`
	Prediction Prediction `json:"prediction"`
}

// Prediction содержит оценку времени до отказа
type Prediction struct {
	FailureTimeEstimateDays int `json:"failureTimeEstimate_days"`
	CertaintyPercent        int `json:"certainty_percent"`
}

// SpeechRequest представляет запрос на озвучивание текста
type SpeechRequest struct {
	Text string `json:"text"`
}

// SpeechError описывает ошибку синтеза речи, возвращаемую клиенту
type SpeechError struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// VoiceSettings параметры голоса для синтеза
type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// VehicleList список известных автомобилей парка
type VehicleList struct {
	Vehicles []string `json:"vehicles"`
}

// Статусы отчета
const (
	StatusOK      = "OK"
	StatusAlert   = "ALERT"
	StatusUnknown = "UNKNOWN"
)
