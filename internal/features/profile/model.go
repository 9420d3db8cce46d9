package profile

// Form is the edit-form seed: the stored phone with the country's
// calling code stripped off so the code is edited as its own selector.
type Form struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Avatar      string `json:"avatar"`
	CountryCode string `json:"countryCode"`
	Phone       string `json:"phone"`
	Country     string `json:"country"`
	Bio         string `json:"bio"`
}

// UpdateRequest is the multipart save payload; the avatar file part is
// optional and handled separately.
type UpdateRequest struct {
	Username string `form:"username"`
	Phone    string `form:"phone"`
	Country  string `form:"country"`
	Bio      string `form:"bio"`
}
