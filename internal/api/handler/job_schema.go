package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type jobLocationRequest struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address" validate:"required"`
}

type createJobRequest struct {
	Title       string             `json:"title"       validate:"required"`
	Description string             `json:"description" validate:"required"`
	Price       string             `json:"price"       validate:"required"`
	Location    jobLocationRequest `json:"location"    validate:"required"`
	Category    string             `json:"category"    validate:"required"`
	Image       string             `json:"image"`
}

type updateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
}

type jobListResponse struct {
	Data  []jobResponse `json:"data"`
	Count int           `json:"count"`
}
