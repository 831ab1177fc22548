package dto

// ---------- generateContent request ----------

type VisionGenerateRequest struct {
	Contents         []VisionContent        `json:"contents"`
	GenerationConfig VisionGenerationConfig `json:"generationConfig"`
}

type VisionContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []VisionPart `json:"parts"`
}

// VisionPart carries either text or an inline image, never both
type VisionPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *VisionInlineData `json:"inline_data,omitempty"`
}

type VisionInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type VisionGenerationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
	TopK        int     `json:"topK"`
}

// ---------- generateContent response ----------

type VisionGenerateResponse struct {
	Candidates     []VisionCandidate     `json:"candidates"`
	PromptFeedback *VisionPromptFeedback `json:"promptFeedback,omitempty"`
}

type VisionCandidate struct {
	Content      VisionContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

type VisionPromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

type VisionErrorResponse struct {
	Error VisionErrorDetail `json:"error"`
}

type VisionErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
