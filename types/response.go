package types

type UploadLawResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Chunks      int    `json:"chunks"`
	Type        string `json:"type"`
	TotalChunks int    `json:"totalChunks"`
}

type UploadContractResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Chunks      int    `json:"chunks"`
	TotalChunks int    `json:"totalChunks"`
}

type OCRResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	TextSnippet string `json:"textSnippet"`
	Text        string `json:"text"`
}

// UploadErrorResponse is the failure shape shared by the upload endpoints.
type UploadErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type ChatResponse struct {
	Response string   `json:"response"`
	Sources  []Source `json:"sources"`
}

type DocumentsResponse struct {
	LawDocuments      int `json:"lawDocuments"`
	ContractDocuments int `json:"contractDocuments"`
}

type DeleteDocumentsResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Law      int    `json:"law"`
	Contract int    `json:"contract"`
	Ts       string `json:"ts"`
}

// ErrorResponse is the generic failure payload for the JSON endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
