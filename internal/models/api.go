package models

type MessageRequest struct {
	Message string `json:"message"`
}

type SessionResponse struct {
	ID       string   `json:"id"`
	Stage    string   `json:"stage"`
	Messages []string `json:"messages"`
}

type MessageResponse struct {
	ID        string   `json:"id"`
	Stage     string   `json:"stage"`
	Replies   []string `json:"replies"`
	Questions []string `json:"questions,omitempty"`
}

type TranscriptResponse struct {
	ID         string            `json:"id"`
	Stage      string            `json:"stage"`
	Transcript []TranscriptEntry `json:"transcript"`
}
