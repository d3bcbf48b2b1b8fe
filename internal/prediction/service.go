package prediction

import (
	"fmt"

	"vehicle-assist/pkg/models"

	"go.uber.org/zap"
)

// UnknownAction рекомендация для нераспознанного автомобиля
const UnknownAction = "Vehicle ID not recognized."

const unknownLastUpdated = "2025-12-16T21:15:00Z"

// fleet порядок автомобилей парка, как он показывается в дашборде
var fleet = []string{"XYZ789", "LMN456", "PQR999"}

// reports статическая таблица отчетов. Только для чтения после инициализации.
var reports = map[string]models.VehicleReport{
	"XYZ789": {
		VehicleID:       "XYZ789",
		Status:          models.StatusAlert,
		IsServiceNeeded: true,
		Predictions: []models.PredictionEntry{
			{
				Component: "Front Brake Pads",
				Issue:     "Brake Pad Wear",
				Prediction: models.Prediction{
					FailureTimeEstimateDays: 14,
					CertaintyPercent:        92,
				},
			},
		},
		RecommendedAction: "Schedule service for listed components.",
		LastUpdated:       "2025-12-16T21:00:00Z",
	},
	"LMN456": {
		VehicleID:         "LMN456",
		Status:            models.StatusOK,
		IsServiceNeeded:   false,
		Predictions:       []models.PredictionEntry{},
		RecommendedAction: "All systems functioning normally.",
		LastUpdated:       "2025-12-16T21:05:00Z",
	},
	"PQR999": {
		VehicleID:       "PQR999",
		Status:          models.StatusAlert,
		IsServiceNeeded: true,
		Predictions: []models.PredictionEntry{
			{
				Component: "Battery",
				Issue:     "Low Charge Capacity",
				Prediction: models.Prediction{
					FailureTimeEstimateDays: 10,
					CertaintyPercent:        85,
				},
			},
		},
		RecommendedAction: "Battery health check advised.",
		LastUpdated:       "2025-12-16T21:10:00Z",
	},
}

// Service выдает диагностические отчеты по идентификатору автомобиля
type Service struct {
	logger *zap.Logger
}

// NewService создает новый сервис прогнозов
func NewService(logger *zap.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Predict возвращает отчет для автомобиля. Сравнение точное, без нормализации.
// Для неизвестного идентификатора возвращается отчет со статусом UNKNOWN.
func (s *Service) Predict(vehicleID string) models.VehicleReport {
	report, ok := Lookup(vehicleID)
	if !ok {
		s.logger.Debug("автомобиль не найден в таблице прогнозов",
			zap.String("vehicle_id", vehicleID))
		return report
	}

	s.logger.Debug("найден отчет по автомобилю",
		zap.String("vehicle_id", vehicleID),
		zap.String("status", report.Status),
		zap.Int("predictions", len(report.Predictions)))

	return report
}

// KnownVehicles возвращает список автомобилей парка
func (s *Service) KnownVehicles() []string {
	out := make([]string, len(fleet))
	copy(out, fleet)
	return out
}

// Lookup ищет отчет в таблице. Второе значение false, если вернулся отчет по умолчанию.
func Lookup(vehicleID string) (models.VehicleReport, bool) {
	report, ok := reports[vehicleID]
	if !ok {
		return unknownReport(vehicleID), false
	}
	return clone(report), true
}

// Announcement формирует фразу для озвучивания отчета
func Announcement(report models.VehicleReport) string {
	if report.Status == models.StatusOK {
		return fmt.Sprintf("Vehicle %s is functioning normally.", report.VehicleID)
	}
	return fmt.Sprintf("Alert for vehicle %s. %s", report.VehicleID, report.RecommendedAction)
}

func unknownReport(vehicleID string) models.VehicleReport {
	return models.VehicleReport{
		VehicleID:         vehicleID,
		Status:            models.StatusUnknown,
		IsServiceNeeded:   false,
		Predictions:       []models.PredictionEntry{},
		RecommendedAction: UnknownAction,
		LastUpdated:       unknownLastUpdated,
	}
}

// clone копирует отчет, чтобы вызывающий код не мог изменить таблицу
func clone(report models.VehicleReport) models.VehicleReport {
	predictions := make([]models.PredictionEntry, len(report.Predictions))
	copy(predictions, report.Predictions)
	report.Predictions = predictions
	return report
}
