package models

import "time"

type Stage string

const (
	StageGreet     Stage = "greet"
	StageCollect   Stage = "collect"
	StageQuestions Stage = "questions"
	StageEnd       Stage = "end"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MaxQuestions caps the interview question list regardless of how many the
// model returns.
const MaxQuestions = 10

type TranscriptEntry struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type RoleSuggestion struct {
	Role      string   `json:"role"`
	Companies []string `json:"companies"`
}

// Candidate is the aggregate filled in across conversation turns. It is owned
// by exactly one session and only mutated by the conversation service.
type Candidate struct {
	FullName         string
	EmailHash        string
	PhoneHash        string
	YearsExperience  string
	DesiredPositions string
	CurrentLocation  string
	TechStack        string
	Transcript       []TranscriptEntry
	Questions        []string
	Roles            []RoleSuggestion
	SentimentNotes   []string
}

func NewCandidate() *Candidate {
	return &Candidate{}
}

func (c *Candidate) AppendTranscript(role, text string) {
	c.Transcript = append(c.Transcript, TranscriptEntry{Role: role, Text: text})
}

// CandidateRecord is the persisted and exported shape of a finished session.
// The transcript stays in session memory only; the record carries derived and
// structured fields.
type CandidateRecord struct {
	Timestamp        string           `json:"timestamp"`
	FullName         string           `json:"full_name"`
	EmailHash        string           `json:"email_hash"`
	PhoneHash        string           `json:"phone_hash"`
	YearsExperience  string           `json:"years_experience"`
	DesiredPositions string           `json:"desired_positions"`
	CurrentLocation  string           `json:"current_location"`
	TechStack        string           `json:"tech_stack"`
	Questions        []string         `json:"questions"`
	Roles            []RoleSuggestion `json:"roles"`
	Sentiments       []string         `json:"sentiments"`
}

// ToRecord snapshots the candidate into its persisted shape. Slices are never
// nil so the JSON always carries arrays.
func (c *Candidate) ToRecord() *CandidateRecord {
	record := &CandidateRecord{
		Timestamp:        time.Now().Format("2006-01-02 15:04:05"),
		FullName:         c.FullName,
		EmailHash:        c.EmailHash,
		PhoneHash:        c.PhoneHash,
		YearsExperience:  c.YearsExperience,
		DesiredPositions: c.DesiredPositions,
		CurrentLocation:  c.CurrentLocation,
		TechStack:        c.TechStack,
		Questions:        c.Questions,
		Roles:            c.Roles,
		Sentiments:       c.SentimentNotes,
	}

	if record.Questions == nil {
		record.Questions = []string{}
	}
	if record.Roles == nil {
		record.Roles = []RoleSuggestion{}
	}
	if record.Sentiments == nil {
		record.Sentiments = []string{}
	}

	return record
}
