package services

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"ecoverse/models"
)

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	for i := 0; i < 4; i++ {
		createTask(t, db, models.TaskTypeDaily, 20, 5)
	}
	createTask(t, db, models.TaskTypeQuiz, 30, 0)
}

func TestEnsureTodayRotationIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)

	first, err := EnsureTodayRotation(db)
	if err != nil {
		t.Fatalf("first rotation failed: %v", err)
	}
	second, err := EnsureTodayRotation(db)
	if err != nil {
		t.Fatalf("second rotation failed: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("rotation recreated: id %d then %d", first.ID, second.ID)
	}

	var count int64
	db.Model(&models.DailyTask{}).Count(&count)
	if count != 1 {
		t.Errorf("rotation rows = %d, want 1", count)
	}

	ids := map[uint]bool{first.Task1ID: true, first.Task2ID: true, first.Task3ID: true}
	if len(ids) != 3 {
		t.Errorf("rotation tasks not distinct: %d/%d/%d", first.Task1ID, first.Task2ID, first.Task3ID)
	}
}

func TestRotationFailsOnSmallCatalog(t *testing.T) {
	db := openTestDB(t)
	createTask(t, db, models.TaskTypeDaily, 20, 5)
	createTask(t, db, models.TaskTypeDaily, 20, 5)
	createTask(t, db, models.TaskTypeQuiz, 30, 0)

	_, err := EnsureTodayRotation(db)
	if !errors.Is(err, ErrRotationUnavailable) {
		t.Fatalf("error = %v, want ErrRotationUnavailable", err)
	}
}

func TestRotationIgnoresInactiveTasks(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)

	inactive := createTask(t, db, models.TaskTypeDaily, 99, 1)
	if err := db.Model(inactive).Update("is_active", false).Error; err != nil {
		t.Fatalf("failed to deactivate task: %v", err)
	}

	rotation, err := EnsureTodayRotation(db)
	if err != nil {
		t.Fatalf("rotation failed: %v", err)
	}

	for _, id := range []uint{rotation.Task1ID, rotation.Task2ID, rotation.Task3ID} {
		if id == inactive.ID {
			t.Errorf("inactive task %d ended up in the rotation", inactive.ID)
		}
	}
}

func TestRunDailyResetCreditsEnergyOnce(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	user := createUser(t, db, 0, 30)

	if err := RunDailyReset(db); err != nil {
		t.Fatalf("first reset failed: %v", err)
	}

	after := reloadUser(t, db, user.ID)
	if after.Energy != 80 {
		t.Errorf("energy after reset = %d, want 80", after.Energy)
	}
	if after.LastDailyReset == nil {
		t.Fatal("last_daily_reset not stamped")
	}

	// A second run on the same day must be a no-op for this user.
	if err := RunDailyReset(db); err != nil {
		t.Fatalf("second reset failed: %v", err)
	}
	again := reloadUser(t, db, user.ID)
	if again.Energy != 80 {
		t.Errorf("energy after repeat reset = %d, want 80", again.Energy)
	}

	var progressCount int64
	db.Model(&models.DailyProgress{}).Where("user_id = ?", user.ID).Count(&progressCount)
	if progressCount != 1 {
		t.Errorf("progress rows = %d, want 1", progressCount)
	}
}

func TestRunDailyResetCapsEnergy(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	user := createUser(t, db, 0, 90)

	if err := RunDailyReset(db); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	after := reloadUser(t, db, user.ID)
	if after.Energy != MaxEnergy {
		t.Errorf("energy = %d, want capped at %d", after.Energy, MaxEnergy)
	}
}

func TestRearmUserTasksClearsStaleCompletions(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	user := createUser(t, db, 0, 100)

	rotation, err := EnsureTodayRotation(db)
	if err != nil {
		t.Fatalf("rotation failed: %v", err)
	}

	// Simulate a completion from yesterday.
	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	stale := models.UserTask{
		UserID:      user.ID,
		TaskID:      rotation.Task1ID,
		Completed:   true,
		CompletedAt: &yesterday,
	}
	if err := db.Create(&stale).Error; err != nil {
		t.Fatalf("failed to seed stale completion: %v", err)
	}

	if err := RearmUserTasks(db, user.ID); err != nil {
		t.Fatalf("RearmUserTasks failed: %v", err)
	}

	var rearmed models.UserTask
	if err := db.Where("user_id = ? AND task_id = ?", user.ID, rotation.Task1ID).First(&rearmed).Error; err != nil {
		t.Fatalf("user task row missing: %v", err)
	}
	if rearmed.Completed {
		t.Error("yesterday's completion not cleared")
	}

	var rows int64
	db.Model(&models.UserTask{}).Where("user_id = ?", user.ID).Count(&rows)
	if rows != 4 {
		t.Errorf("user task rows = %d, want 4 (three tasks and the quiz)", rows)
	}
}

func TestRearmKeepsTodaysCompletion(t *testing.T) {
	db := openTestDB(t)
	seedCatalog(t, db)
	user := createUser(t, db, 0, 100)

	rotation, err := EnsureTodayRotation(db)
	if err != nil {
		t.Fatalf("rotation failed: %v", err)
	}

	if _, err := CompleteTask(db, user.ID, rotation.Task1ID); err != nil {
		t.Fatalf("completion failed: %v", err)
	}

	if err := RearmUserTasks(db, user.ID); err != nil {
		t.Fatalf("RearmUserTasks failed: %v", err)
	}

	var userTask models.UserTask
	if err := db.Where("user_id = ? AND task_id = ?", user.ID, rotation.Task1ID).First(&userTask).Error; err != nil {
		t.Fatalf("user task row missing: %v", err)
	}
	if !userTask.Completed {
		t.Error("today's completion was cleared by rearm")
	}
}

func TestDateOnlyTruncatesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	local := time.Date(2025, 3, 10, 2, 30, 0, 0, loc) // 2025-03-09 21:30 UTC

	got := DateOnly(local)
	want := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOnly = %v, want %v", got, want)
	}
}
