package types

import "time"

// QuestionType classifies interview questions
type QuestionType string

const (
	QuestionBehavioral   QuestionType = "behavioral"
	QuestionTechnical    QuestionType = "technical"
	QuestionCoding       QuestionType = "coding"
	QuestionSystemDesign QuestionType = "system-design"
)

// Difficulty is the question difficulty band, selected once per session
// from candidate experience
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// SkillLevel is the seniority level inferred for a job requirement
type SkillLevel string

const (
	LevelJunior SkillLevel = "junior"
	LevelMid    SkillLevel = "mid"
	LevelSenior SkillLevel = "senior"
)

// SessionStatus tracks the interview session state machine
type SessionStatus string

const (
	StatusSetup      SessionStatus = "setup"
	StatusInProgress SessionStatus = "in-progress"
	StatusCompleted  SessionStatus = "completed"
)

// CandidateProfile holds the fields extracted from a resume.
// It is created once from extraction and immutable within a session.
type CandidateProfile struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Skills        []string `json:"skills"`
	Experience    int      `json:"experience"` // years
	Education     string   `json:"education"`
	PreviousRoles []string `json:"previousRoles"`
	ResumeText    string   `json:"resumeText"`
}

// JobRequirement is a single skill requirement derived from a job description
type JobRequirement struct {
	Skill    string     `json:"skill"`
	Level    SkillLevel `json:"level"`
	Required bool       `json:"required"`
}

// JobDescription is the submitted job posting plus derived requirements.
// Immutable once submitted.
type JobDescription struct {
	Title        string           `json:"title"`
	Company      string           `json:"company"`
	Description  string           `json:"description"`
	Requirements []JobRequirement `json:"requirements"`
}

// Question is one generated interview prompt
type Question struct {
	ID               string       `json:"id"`
	Type             QuestionType `json:"type"`
	Difficulty       Difficulty   `json:"difficulty"`
	Content          string       `json:"content"`
	FollowUp         string       `json:"followUp,omitempty"`
	ExpectedDuration int          `json:"expectedDuration"` // minutes
	Tags             []string     `json:"tags"`
}

// Answer is a submitted response to a question, immutable once created
type Answer struct {
	QuestionID string    `json:"questionId"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Duration   int       `json:"duration"` // seconds
	Confidence *float64  `json:"confidence,omitempty"`
}

// ScoreCategory identifies one of the scored dimensions. Using a typed
// constant instead of string-keyed maps gives exhaustive switches in the
// scoring engine.
type ScoreCategory int

const (
	CategoryTechnical ScoreCategory = iota
	CategoryBehavioral
	CategoryCommunication
	CategoryProblemSolving
	CategoryOverall
)

// String returns the JSON-facing name of the category
func (c ScoreCategory) String() string {
	switch c {
	case CategoryTechnical:
		return "technical"
	case CategoryBehavioral:
		return "behavioral"
	case CategoryCommunication:
		return "communication"
	case CategoryProblemSolving:
		return "problemSolving"
	case CategoryOverall:
		return "overall"
	default:
		return "unknown"
	}
}

// CategoryScore is one category's contribution from a single answer
type CategoryScore struct {
	Category ScoreCategory `json:"category"`
	Value    float64       `json:"value"`
}

// PartialScore holds only the categories relevant to one answered question
type PartialScore struct {
	Entries []CategoryScore `json:"entries"`
}

// Get returns the value for a category and whether it is present
func (p PartialScore) Get(c ScoreCategory) (float64, bool) {
	for _, e := range p.Entries {
		if e.Category == c {
			return e.Value, true
		}
	}
	return 0, false
}

// Score is the aggregated session score. All fields are in [0,1].
type Score struct {
	Technical      float64 `json:"technical"`
	Behavioral     float64 `json:"behavioral"`
	Communication  float64 `json:"communication"`
	ProblemSolving float64 `json:"problemSolving"`
	Overall        float64 `json:"overall"`
}

// InterviewSession is one end-to-end interview attempt
type InterviewSession struct {
	ID                   string           `json:"id"`
	CandidateProfile     CandidateProfile `json:"candidateProfile"`
	JobDescription       JobDescription   `json:"jobDescription"`
	Questions            []Question       `json:"questions"`
	Answers              []Answer         `json:"answers"`
	CurrentQuestionIndex int              `json:"currentQuestionIndex"`
	Score                Score            `json:"score"`
	Status               SessionStatus    `json:"status"`
	StartTime            time.Time        `json:"startTime"`
	EndTime              *time.Time       `json:"endTime,omitempty"`
}
