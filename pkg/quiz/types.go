package quiz

// Question is one entry of a quiz's presentation sequence: a station the
// player is asked about, flagged as a true answer or a distractor.
type Question struct {
	Station   string `json:"station"`
	IsCorrect bool   `json:"is_correct"`
}

// Quiz is a finished puzzle record. It is created once by Generate and never
// mutated afterwards; external tooling persists it as-is.
//
// Questions holds the full presentation sequence. Distractors sit at random
// positions; the correct entries keep the relative order assigned by the
// reveal-order scheduler, so filtering Questions down to IsCorrect recovers
// the scheduled answer sequence.
type Quiz struct {
	ID                     string     `json:"id"`
	Area                   string     `json:"area,omitempty"`
	StartStations          []string   `json:"start_stations"`
	Questions              []Question `json:"questions"`
	MaxConnectedComponents int        `json:"max_connected_components"`
}

// Answers returns the correct stations in their scheduled reveal order.
func (q *Quiz) Answers() []string {
	var answers []string
	for _, question := range q.Questions {
		if question.IsCorrect {
			answers = append(answers, question.Station)
		}
	}
	return answers
}

// Distractors returns the false-answer stations in presentation order.
func (q *Quiz) Distractors() []string {
	var distractors []string
	for _, question := range q.Questions {
		if !question.IsCorrect {
			distractors = append(distractors, question.Station)
		}
	}
	return distractors
}
