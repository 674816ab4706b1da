package services

import (
	"errors"
	"strings"
	"testing"

	"ecoverse/models"
)

func TestCompleteTaskAppliesReward(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, 100, 100)
	task := createTask(t, db, models.TaskTypeDaily, 40, 10)

	reward, err := CompleteTask(db, user.ID, task.ID)
	if err != nil {
		t.Fatalf("CompleteTask failed: %v", err)
	}

	if reward.NewCoins != 140 {
		t.Errorf("new coins = %d, want 140", reward.NewCoins)
	}
	if reward.NewEnergy != 90 {
		t.Errorf("new energy = %d, want 90", reward.NewEnergy)
	}
	if reward.NewExperience != 20 { // half the coin reward
		t.Errorf("new experience = %d, want 20", reward.NewExperience)
	}

	var progress models.DailyProgress
	if err := db.Where("user_id = ?", user.ID).First(&progress).Error; err != nil {
		t.Fatalf("daily progress row missing: %v", err)
	}
	if progress.TasksCompleted != 1 || progress.CoinsEarned != 40 {
		t.Errorf("progress = %d tasks / %d coins, want 1 / 40", progress.TasksCompleted, progress.CoinsEarned)
	}
}

func TestCompleteTaskTwiceFails(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, 0, 100)
	task := createTask(t, db, models.TaskTypeDaily, 40, 10)

	if _, err := CompleteTask(db, user.ID, task.ID); err != nil {
		t.Fatalf("first completion failed: %v", err)
	}

	_, err := CompleteTask(db, user.ID, task.ID)
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("second completion error = %v, want ErrAlreadyCompleted", err)
	}

	after := reloadUser(t, db, user.ID)
	if after.Coins != 40 || after.Energy != 90 {
		t.Errorf("balances changed on rejected completion: %d coins / %d energy", after.Coins, after.Energy)
	}
}

func TestCompleteTaskInsufficientEnergy(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, 0, 5)
	task := createTask(t, db, models.TaskTypeDaily, 40, 10)

	_, err := CompleteTask(db, user.ID, task.ID)
	if !errors.Is(err, ErrInsufficientEnergy) {
		t.Fatalf("error = %v, want ErrInsufficientEnergy", err)
	}
	if !strings.Contains(err.Error(), "yetarli emas") {
		t.Errorf("error text = %q, want it to mention yetarli emas", err.Error())
	}

	after := reloadUser(t, db, user.ID)
	if after.Coins != 0 || after.Energy != 5 {
		t.Errorf("balances changed on rejected completion: %d coins / %d energy", after.Coins, after.Energy)
	}
}

func TestCompleteUnknownTask(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, 0, 100)

	_, err := CompleteTask(db, user.ID, 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestLevelUpCarriesExperience(t *testing.T) {
	user := &models.User{Level: 1, Experience: 350}

	levels, bonus := applyLevelUps(user)

	// 350 exp: level 1 needs 100 (leaves 250), level 2 needs 200 (leaves 50).
	if user.Level != 3 {
		t.Errorf("level = %d, want 3", user.Level)
	}
	if user.Experience != 50 {
		t.Errorf("experience = %d, want 50", user.Experience)
	}
	if levels != 2 {
		t.Errorf("levels gained = %d, want 2", levels)
	}
	if bonus != 250 { // 2*50 + 3*50
		t.Errorf("bonus = %d, want 250", bonus)
	}
}

func TestLevelUpBelowThresholdDoesNothing(t *testing.T) {
	user := &models.User{Level: 2, Experience: 150}

	levels, bonus := applyLevelUps(user)

	if levels != 0 || bonus != 0 {
		t.Errorf("gained %d levels / %d bonus, want none", levels, bonus)
	}
	if user.Level != 2 || user.Experience != 150 {
		t.Errorf("user mutated: level %d, exp %d", user.Level, user.Experience)
	}
}

func TestQuizTiers(t *testing.T) {
	cases := []struct {
		difficulty string
		correct    int
		coins      int
		energy     int
		exp        int
	}{
		{"easy", 4, 28, 15, 20},
		{"medium", 4, 32, 20, 32},
		{"hard", 4, 40, 25, 48},
		{"unknown", 3, 26, 15, 15}, // falls back to easy
	}

	for _, tc := range cases {
		coins, energy, exp := quizTier(tc.difficulty, tc.correct)
		if coins != tc.coins || energy != tc.energy || exp != tc.exp {
			t.Errorf("quizTier(%q, %d) = %d/%d/%d, want %d/%d/%d",
				tc.difficulty, tc.correct, coins, energy, exp, tc.coins, tc.energy, tc.exp)
		}
	}
}

func TestSubmitQuizAppliesReward(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, 0, 100)

	reward, err := SubmitQuiz(db, user.ID, QuizSubmission{
		Score:          80,
		CorrectCount:   4,
		TotalQuestions: 5,
		Difficulty:     "medium",
	})
	if err != nil {
		t.Fatalf("SubmitQuiz failed: %v", err)
	}

	if reward.CoinsEarned != 32 { // 20 base + 4*3
		t.Errorf("coins earned = %d, want 32", reward.CoinsEarned)
	}
	if reward.EnergyUsed != 20 {
		t.Errorf("energy used = %d, want 20", reward.EnergyUsed)
	}
	if reward.NewEnergy != 80 {
		t.Errorf("new energy = %d, want 80", reward.NewEnergy)
	}

	var result models.QuizResult
	if err := db.Where("user_id = ?", user.ID).First(&result).Error; err != nil {
		t.Fatalf("quiz result row missing: %v", err)
	}
	if result.CorrectAnswers != 4 || result.TotalQuestions != 5 {
		t.Errorf("stored result = %d/%d, want 4/5", result.CorrectAnswers, result.TotalQuestions)
	}
}

func TestSubmitQuizInsufficientEnergy(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, 0, 10)

	_, err := SubmitQuiz(db, user.ID, QuizSubmission{
		CorrectCount:   5,
		TotalQuestions: 5,
		Difficulty:     "hard",
	})
	if !errors.Is(err, ErrInsufficientEnergy) {
		t.Fatalf("error = %v, want ErrInsufficientEnergy", err)
	}

	after := reloadUser(t, db, user.ID)
	if after.Coins != 0 || after.Energy != 10 {
		t.Errorf("balances changed on rejected quiz: %d coins / %d energy", after.Coins, after.Energy)
	}

	var count int64
	db.Model(&models.QuizResult{}).Count(&count)
	if count != 0 {
		t.Errorf("quiz result rows = %d, want 0", count)
	}
}

func TestSubmitQuizWithLinkedTask(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, 0, 100)
	task := createTask(t, db, models.TaskTypeQuiz, 30, 0)

	reward, err := SubmitQuiz(db, user.ID, QuizSubmission{
		CorrectCount:   5,
		TotalQuestions: 5,
		TaskID:         &task.ID,
		Difficulty:     "easy",
	})
	if err != nil {
		t.Fatalf("SubmitQuiz failed: %v", err)
	}

	// 20 base + 5*2 correct + 30 task reward + 10 easy bonus.
	if reward.CoinsEarned != 70 {
		t.Errorf("coins earned = %d, want 70", reward.CoinsEarned)
	}
	if !reward.TaskCompleted {
		t.Error("task_completed not set")
	}

	var userTask models.UserTask
	if err := db.Where("user_id = ? AND task_id = ?", user.ID, task.ID).First(&userTask).Error; err != nil {
		t.Fatalf("user task row missing: %v", err)
	}
	if !userTask.Completed {
		t.Error("linked task not marked completed")
	}
}
