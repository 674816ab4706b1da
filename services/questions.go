// services/questions.go - Quiz question bank (side JSON file with demo fallback)
package services

import (
	"encoding/json"
	"log"
	"math/rand"
	"os"
)

const questionsPerQuiz = 5

// QuizQuestion matches one entry of the eco_questions file.
type QuizQuestion struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	Explanation   string   `json:"explanation"`
}

type questionFile struct {
	EcoQuestions []QuizQuestion `json:"eco_questions"`
}

// The file uses a mix of English and Uzbek difficulty labels.
var difficultySynonyms = map[string][]string{
	"easy":   {"easy", "oson", "oddiy"},
	"medium": {"medium", "o'rta", "ortacha", "middle"},
	"hard":   {"hard", "qiyin", "murakkab", "difficult"},
}

// LoadQuestions reads the question bank from QUESTIONS_FILE (default
// ml_questions.json). A missing or malformed file falls back to the built-in
// demo set.
func LoadQuestions() []QuizQuestion {
	path := os.Getenv("QUESTIONS_FILE")
	if path == "" {
		path = "ml_questions.json"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️ %s topilmadi, demo savollar ishlatiladi", path)
		return demoQuestions()
	}

	var file questionFile
	if err := json.Unmarshal(data, &file); err != nil || len(file.EcoQuestions) == 0 {
		log.Printf("⚠️ %s o'qishda xatolik, demo savollar ishlatiladi", path)
		return demoQuestions()
	}

	return file.EcoQuestions
}

// DefaultDifficultyForLevel maps a user level to a quiz difficulty when the
// request does not pin one: levels 1-3 easy, 4-6 medium, above hard.
func DefaultDifficultyForLevel(level int) string {
	switch {
	case level <= 3:
		return "easy"
	case level <= 6:
		return "medium"
	default:
		return "hard"
	}
}

func matchesDifficulty(q QuizQuestion, difficulty string) bool {
	labels, ok := difficultySynonyms[difficulty]
	if !ok {
		labels = []string{difficulty}
	}
	for _, label := range labels {
		if q.Difficulty == label {
			return true
		}
	}
	return false
}

func filterByDifficulty(all []QuizQuestion, difficulty string) []QuizQuestion {
	var out []QuizQuestion
	for _, q := range all {
		if matchesDifficulty(q, difficulty) {
			out = append(out, q)
		}
	}
	return out
}

// SelectQuestions picks up to questionsPerQuiz random questions of the given
// difficulty. When the tier is short the neighbouring tiers backfill: easy
// and hard borrow from medium, medium borrows one easy and one hard. An empty
// pool after filtering falls back to the whole bank.
func SelectQuestions(all []QuizQuestion, difficulty string) []QuizQuestion {
	pool := filterByDifficulty(all, difficulty)

	if len(pool) < questionsPerQuiz {
		switch difficulty {
		case "easy", "hard":
			extra := filterByDifficulty(all, "medium")
			need := questionsPerQuiz - len(pool)
			if need > len(extra) {
				need = len(extra)
			}
			pool = append(pool, extra[:need]...)
		case "medium":
			if len(pool) > 4 {
				pool = pool[:4]
			}
			if easy := filterByDifficulty(all, "easy"); len(easy) > 0 {
				pool = append(pool, easy[0])
			}
			if hard := filterByDifficulty(all, "hard"); len(hard) > 0 {
				pool = append(pool, hard[0])
			}
		}
	}

	if len(pool) == 0 {
		pool = all
	}

	count := questionsPerQuiz
	if count > len(pool) {
		count = len(pool)
	}

	selected := make([]QuizQuestion, 0, count)
	for _, i := range rand.Perm(len(pool))[:count] {
		selected = append(selected, pool[i])
	}
	return selected
}

func demoQuestions() []QuizQuestion {
	return []QuizQuestion{
		{
			ID:            1,
			Question:      "Plastik idishlarni qayta ishlash qaysi atrof-muhit muammosini yechishga yordam beradi?",
			Options:       []string{"Havo ifloslanishi", "Suv ifloslanishi", "Tuproq ifloslanishi", "Shovqin ifloslanishi"},
			CorrectAnswer: 1,
			Category:      "qayta ishlash",
			Difficulty:    "easy",
			Explanation:   "Plastik idishlar suv manbalarini ifloslantiradi, qayta ishlash bu muammoni kamaytiradi.",
		},
		{
			ID:            2,
			Question:      "Quyosh energiyasidan foydalanish qanday afzalliklarga ega?",
			Options:       []string{"Havoni ifloslantiradi", "Qayta tiklanmaydigan manba", "Toza va bepul energiya", "Faqat kunduzi ishlaydi"},
			CorrectAnswer: 2,
			Category:      "energy",
			Difficulty:    "easy",
			Explanation:   "Quyosh energiyasi toza, bepul va qayta tiklanadigan energiya manbaidir.",
		},
		{
			ID:            3,
			Question:      "Daraxtlar qanday ekologik ahamiyatga ega?",
			Options:       []string{"Havoni ifloslantiradi", "Karbonat angidridni yutadi", "Suvni ifloslantiradi", "Tuproqni quriydi"},
			CorrectAnswer: 1,
			Category:      "planting",
			Difficulty:    "medium",
			Explanation:   "Daraxtlar karbonat angidridni yutib, kislorod chiqaradi va havoni tozalaydi.",
		},
		{
			ID:            4,
			Question:      "Qaysi chiqindilar kompost qilish mumkin?",
			Options:       []string{"Plastik idishlar", "Oziq-ovqat chiqindilari", "Metall bankalar", "Shisha idishlar"},
			CorrectAnswer: 1,
			Category:      "composting",
			Difficulty:    "medium",
			Explanation:   "Oziq-ovqat chiqindilari kompost qilinishi mumkin, bu organik o'g'it hosil qiladi.",
		},
		{
			ID:            5,
			Question:      "Energiya tejashning eng samarali usuli qaysi?",
			Options:       []string{"Har doim chiroqlarni yoqib qo'yish", "Energiya tejovchi qurilmalardan foydalanish", "Konditsionerni doim ishlatish", "Elektron qurilmalarni uxlatish rejimida qoldirish"},
			CorrectAnswer: 1,
			Category:      "energy",
			Difficulty:    "hard",
			Explanation:   "Energiya tejovchi qurilmalar elektr energiyasini samarali ishlatishga yordam beradi.",
		},
	}
}
