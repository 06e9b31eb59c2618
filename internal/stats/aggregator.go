package stats

import "github.com/nao1215/stackstats/internal/model"

// TopN is the number of highest scored answers whose comments are counted.
const TopN = 10

// Aggregate builds the summary for answers, which must be in the order the
// API returned them (descending score). counts holds the comment counts of
// TopIDs(answers, TopN), positionally; if it is shorter, the comment count
// mapping is truncated to the same length.
func Aggregate(answers []model.Answer, counts []int) *model.Summary {
	accepted, acceptedScore := 0, 0
	for _, a := range answers {
		if a.IsAccepted {
			accepted++
			acceptedScore += a.Score
		}
	}

	return &model.Summary{
		TotalAcceptedAnswers:        accepted,
		AcceptedAnswersAverageScore: model.NewAverage(acceptedScore, accepted),
		AverageAnswersPerQuestion:   AnswersPerQuestion(answers),
		TopTenAnswersCommentCount:   model.NewCommentCounts(TopIDs(answers, TopN), counts),
	}
}

// AnswersPerQuestion is the mean number of answers per distinct question id.
func AnswersPerQuestion(answers []model.Answer) model.Average {
	perQuestion := make(map[int64]int)
	for _, a := range answers {
		perQuestion[a.QuestionID]++
	}
	// The per-question counts always sum to len(answers).
	return model.NewAverage(len(answers), len(perQuestion))
}

// TopIDs returns the ids of the first n answers.
func TopIDs(answers []model.Answer, n int) []int64 {
	if n > len(answers) {
		n = len(answers)
	}
	ids := make([]int64, 0, n)
	for _, a := range answers[:n] {
		ids = append(ids, a.AnswerID)
	}
	return ids
}
