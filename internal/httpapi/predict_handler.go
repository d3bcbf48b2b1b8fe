package httpapi

import (
	"net/http"

	"vehicle-assist/pkg/models"
)

// handlePredict всегда отвечает 200. Отсутствующий vehicleId равен пустой строке
// и попадает в отчет UNKNOWN.
func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	vehicleID := r.URL.Query().Get("vehicleId")

	report := s.predictor.Predict(vehicleID)
	s.metrics.RecordPrediction(report.Status)

	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleVehicles(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, models.VehicleList{Vehicles: s.predictor.KnownVehicles()})
}
