package request_models

type CreateNoticeRequest struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Audience string `json:"audience"`
}

type CreateHomeworkRequest struct {
	ClassID     string `json:"class_id"`
	Subject     string `json:"subject"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueAt       int64  `json:"due_at"`
}

type CreateFeeRequest struct {
	StudentID string `json:"student_id" binding:"required,uuid4"`
	Period    string `json:"period" binding:"required"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
}

type CollectFeeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

type CreateVehicleRequest struct {
	RegistrationNo string `json:"registration_no" binding:"required"`
	DriverName     string `json:"driver_name"`
	DriverPhone    string `json:"driver_phone"`
	Route          string `json:"route"`
	Capacity       int    `json:"capacity"`
}

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Venue       string `json:"venue"`
	StartsAt    int64  `json:"starts_at" binding:"required"`
	EndsAt      int64  `json:"ends_at"`
}
