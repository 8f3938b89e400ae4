package dto

type CreateCourseRequestDTO struct {
	ID    string  `json:"id" validate:"required,max=100" example:"go-fundamentals"`
	Title string  `json:"title" validate:"required,max=255" example:"Go Fundamentals"`
	Price float64 `json:"price" validate:"gte=0" example:"100"`
}

type CourseResponseDTO struct {
	ID              string  `json:"id" example:"go-fundamentals"`
	Title           string  `json:"title" example:"Go Fundamentals"`
	Price           float64 `json:"price" example:"100"`
	EnrollmentCount int     `json:"enrollment_count" example:"42"`
}
