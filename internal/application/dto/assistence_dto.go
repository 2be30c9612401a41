package dto

// MarcarLlegadaRequest entrada para marcar llegada por ID de trabajadora.
type MarcarLlegadaRequest struct {
	WorkerID int64 `json:"worker_id" validate:"required,gt=0"`
}

// MarcarLlegadaCodigoRequest entrada para marcar llegada con el código de
// barras del carnet.
type MarcarLlegadaCodigoRequest struct {
	ReferenceID string `json:"reference_id" validate:"required,min=1,max=50"`
}

// MarcarSalidaRequest entrada para marcar salida de un registro de asistencia.
type MarcarSalidaRequest struct {
	AssistenceID int64 `json:"assistence_id" validate:"required,gt=0"`
}

// AssistenceResponse salida de un registro de asistencia. Fecha y horas vienen
// ya formateadas en hora de Bogotá para las vistas.
type AssistenceResponse struct {
	ID              int64    `json:"id_assistence"`
	WorkerID        int64    `json:"worker_id"`
	Worker          string   `json:"worker"`
	ArrivalTime     string   `json:"arrival_time"`
	DepartureTime   *string  `json:"departure_time"`
	Fecha           string   `json:"fecha"`
	HoraLlegada     string   `json:"hora_llegada"`
	HoraSalida      string   `json:"hora_salida"`
	HorasTrabajadas *float64 `json:"horas_trabajadas"`
	Estado          string   `json:"estado"`
}

// AsistenciasDiaResponse listado del día con total y fecha civil.
type AsistenciasDiaResponse struct {
	Asistencias []AssistenceResponse `json:"data"`
	Total       int                  `json:"total"`
	Fecha       string               `json:"fecha"`
}
