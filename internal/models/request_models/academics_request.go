package request_models

type CreateClassRequest struct {
	Name      string `json:"name" binding:"required"`
	Section   string `json:"section"`
	TeacherID string `json:"teacher_id"`
	Capacity  int    `json:"capacity"`
}

type CreateStudentRequest struct {
	Name          string `json:"name" binding:"required"`
	ClassID       string `json:"class_id"`
	AdmissionNo   string `json:"admission_no"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
}

type CreateTeacherRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
}
