package dto

type AppointmentListDTO struct {
	ID          uint   `json:"id"`
	PublicCode  string `json:"public_code"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
	ClientName  string `json:"client_name"`
	ServiceName string `json:"service_name"`
}
