package dto

// HealthResponse - состояние сервиса и его хранилищ
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}
