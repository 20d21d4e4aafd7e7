package requests

type RegisterPatient struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,password"`
	RetypePassword string `json:"retype_password" validate:"required"`
	FullName       string `json:"full_name" validate:"required"`
}

type RegisterPractitioner struct {
	Email             string   `json:"email" validate:"required,email"`
	Password          string   `json:"password" validate:"required,password"`
	RetypePassword    string   `json:"retype_password" validate:"required"`
	FullName          string   `json:"full_name" validate:"required"`
	Specialty         string   `json:"specialty" validate:"required"`
	Credentials       string   `json:"credentials"`
	ConsultationTypes []string `json:"consultation_types" validate:"required,min=1,dive,consultation_type"`
	Bio               string   `json:"bio"`
	ProfileImage      string   `json:"profile_image,omitempty" validate:"omitempty,base64"`
	IDImage           string   `json:"id_image,omitempty" validate:"omitempty,base64"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
