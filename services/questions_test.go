package services

import (
	"testing"
)

func TestDefaultDifficultyForLevel(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{1, "easy"},
		{3, "easy"},
		{4, "medium"},
		{6, "medium"},
		{7, "hard"},
		{20, "hard"},
	}
	for _, tc := range cases {
		if got := DefaultDifficultyForLevel(tc.level); got != tc.want {
			t.Errorf("DefaultDifficultyForLevel(%d) = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestLoadQuestionsFallsBackToDemoSet(t *testing.T) {
	t.Setenv("QUESTIONS_FILE", "does_not_exist.json")

	questions := LoadQuestions()
	if len(questions) != 5 {
		t.Fatalf("demo set size = %d, want 5", len(questions))
	}
	for _, q := range questions {
		if q.Question == "" || len(q.Options) != 4 {
			t.Errorf("question %d malformed: %q with %d options", q.ID, q.Question, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			t.Errorf("question %d has correct_answer %d out of range", q.ID, q.CorrectAnswer)
		}
	}
}

func TestSelectQuestionsFiltersByDifficulty(t *testing.T) {
	bank := make([]QuizQuestion, 0, 12)
	for i := 0; i < 6; i++ {
		bank = append(bank, QuizQuestion{ID: i, Difficulty: "easy"})
	}
	for i := 6; i < 12; i++ {
		bank = append(bank, QuizQuestion{ID: i, Difficulty: "hard"})
	}

	got := SelectQuestions(bank, "easy")
	if len(got) != 5 {
		t.Fatalf("selected %d questions, want 5", len(got))
	}
	for _, q := range got {
		if q.Difficulty != "easy" {
			t.Errorf("question %d has difficulty %q, want easy", q.ID, q.Difficulty)
		}
	}
}

func TestSelectQuestionsMatchesUzbekLabels(t *testing.T) {
	bank := []QuizQuestion{
		{ID: 1, Difficulty: "oson"},
		{ID: 2, Difficulty: "oson"},
		{ID: 3, Difficulty: "qiyin"},
	}

	got := SelectQuestions(bank, "easy")
	for _, q := range got {
		if q.Difficulty == "qiyin" {
			t.Errorf("hard question %d selected for easy request", q.ID)
		}
	}
	if len(got) != 2 {
		t.Errorf("selected %d questions, want the 2 easy ones", len(got))
	}
}

func TestSelectQuestionsBackfillsFromMedium(t *testing.T) {
	bank := []QuizQuestion{
		{ID: 1, Difficulty: "hard"},
		{ID: 2, Difficulty: "hard"},
		{ID: 3, Difficulty: "medium"},
		{ID: 4, Difficulty: "medium"},
		{ID: 5, Difficulty: "medium"},
		{ID: 6, Difficulty: "easy"},
	}

	got := SelectQuestions(bank, "hard")
	if len(got) != 5 {
		t.Fatalf("selected %d questions, want 5", len(got))
	}
	for _, q := range got {
		if q.Difficulty == "easy" {
			t.Errorf("easy question %d selected for hard request", q.ID)
		}
	}
}

func TestSelectQuestionsUnknownDifficultyUsesWholeBank(t *testing.T) {
	bank := []QuizQuestion{
		{ID: 1, Difficulty: "easy"},
		{ID: 2, Difficulty: "medium"},
		{ID: 3, Difficulty: "hard"},
	}

	got := SelectQuestions(bank, "nonsense")
	if len(got) != 3 {
		t.Errorf("selected %d questions, want all 3", len(got))
	}
}
