package content

import "github.com/lintang-b-s/ir-lab/pkg/datastructure"

// QuestionResult model info
// @Description grading of one answered question.
type QuestionResult struct {
	QuestionID   string `json:"question_id"`
	Chosen       int    `json:"chosen"` // -1 when unanswered
	CorrectIndex int    `json:"correct_index"`
	Correct      bool   `json:"correct"`
	Explanation  string `json:"explanation,omitempty"`
}

// GradeResult model info
// @Description score of an assessment attempt with the topics to revisit.
type GradeResult struct {
	Title    string           `json:"title"`
	Correct  int              `json:"correct"`
	Total    int              `json:"total"`
	Percent  float64          `json:"percent"`
	Results  []QuestionResult `json:"results"`
	Remedial []string         `json:"remedial"`
}

// Grade scores answers (question id -> chosen option index) against assessment.
// Unanswered questions count as wrong. Remedial topics of wrong answers are
// listed once, in question order.
func Grade(assessment datastructure.Assessment, answers map[string]int) GradeResult {
	res := GradeResult{
		Title:    assessment.Title,
		Total:    len(assessment.Questions),
		Results:  make([]QuestionResult, 0, len(assessment.Questions)),
		Remedial: []string{},
	}

	seen := make(map[string]struct{})
	for _, q := range assessment.Questions {
		chosen, ok := answers[q.ID]
		if !ok {
			chosen = -1
		}
		correct := ok && chosen == q.CorrectIndex
		res.Results = append(res.Results, QuestionResult{
			QuestionID:   q.ID,
			Chosen:       chosen,
			CorrectIndex: q.CorrectIndex,
			Correct:      correct,
			Explanation:  q.Explanation,
		})

		if correct {
			res.Correct++
			continue
		}
		if q.Remedial == "" {
			continue
		}
		if _, dup := seen[q.Remedial]; !dup {
			seen[q.Remedial] = struct{}{}
			res.Remedial = append(res.Remedial, q.Remedial)
		}
	}

	if res.Total > 0 {
		res.Percent = 100 * float64(res.Correct) / float64(res.Total)
	}
	return res
}
