package models

// EstimateRequest is the JSON body posted to the estimation service.
type EstimateRequest struct {
	Age               int `json:"Age"`
	Gender            int `json:"Gender"`
	EducationLevel    int `json:"Education_Level"`
	YearsOfExperience int `json:"Years_of_Experience"`
}

// EstimateResponse mirrors the service reply. Salary is left untyped so that
// numeric strings can be coerced the same way numbers are.
type EstimateResponse struct {
	Salary   any     `json:"Salary"`
	Currency *string `json:"currency"`
	Status   *bool   `json:"status,omitempty"`
	Error    string  `json:"error,omitempty"`
	Detail   any     `json:"detail,omitempty"`
}

// EstimateResult is the salary shown to the user after a successful call.
type EstimateResult struct {
	Salary   float64 `json:"salary"`
	Currency string  `json:"currency"`
}

// Estimate pairs the submitted inputs with the returned result.
type Estimate struct {
	Input  EstimateRequest `json:"input"`
	Result EstimateResult  `json:"result"`
}

// HelloResponse is returned by the service health endpoint.
type HelloResponse struct {
	Message string `json:"message"`
}
