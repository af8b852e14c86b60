package memory

import "github.com/fitquest/FitQuest_Go/internal/domain"

// Seed loads the starter catalog: a small exercise library, two community
// challenges and the first three quest tiers. Challenges always start with
// zero participants; counts only move through join and leave.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range seedExercises {
		s.createExerciseLocked(e)
	}

	today := s.now()
	s.createChallengeLocked(domain.NewChallenge{
		Name:        "Summer Shred Challenge",
		Description: "Complete 20 workouts in 30 days and earn the Summer Warrior badge",
		Difficulty:  "intermediate",
		StartDate:   today,
		EndDate:     today.AddDate(0, 0, 30),
		Goal:        "Complete 20 workouts",
		Reward:      "Summer Warrior Badge",
		IsFeatured:  true,
	})
	s.createChallengeLocked(domain.NewChallenge{
		Name:        "1000 lb Club Challenge",
		Description: "Reach a combined 1000 lb total for squat, bench press, and deadlift",
		Difficulty:  "advanced",
		StartDate:   today,
		EndDate:     today.AddDate(0, 0, 60),
		Goal:        "1000 lb combined total",
		Reward:      "Strength Master Badge",
		IsFeatured:  false,
	})

	for _, q := range seedQuests {
		s.createQuestLocked(q)
	}
}

var seedExercises = []domain.NewExercise{
	{
		Name:         "Bench Press",
		Type:         "strength",
		MuscleGroup:  "chest",
		Difficulty:   "intermediate",
		Equipment:    "barbell, bench",
		Description:  "A compound exercise that primarily targets the chest muscles.",
		Instructions: "Lie on a bench, grip the barbell with hands slightly wider than shoulder-width, lower the bar to your chest, then push it back up.",
	},
	{
		Name:         "Incline Dumbbell Press",
		Type:         "strength",
		MuscleGroup:  "chest",
		Difficulty:   "intermediate",
		Equipment:    "dumbbells, incline bench",
		Description:  "A variation of the chest press that emphasizes the upper chest muscles.",
		Instructions: "Lie on an incline bench set to 30-45 degrees, hold a dumbbell in each hand at shoulder level, press the weights up until arms are extended, then lower them back down.",
	},
	{
		Name:         "Cable Flyes",
		Type:         "strength",
		MuscleGroup:  "chest",
		Difficulty:   "intermediate",
		Equipment:    "cable machine",
		Description:  "An isolation exercise that targets the chest muscles through horizontal adduction.",
		Instructions: "Stand between cable stations with cables set at shoulder height, grab handles with palms facing forward, step forward and bring hands together in front of you with a slight bend in the elbows.",
	},
	{
		Name:         "Tricep Pushdowns",
		Type:         "strength",
		MuscleGroup:  "arms",
		Difficulty:   "beginner",
		Equipment:    "cable machine",
		Description:  "An isolation exercise for the triceps muscles.",
		Instructions: "Stand facing a cable machine with a rope or bar attachment at shoulder height, grip the attachment with hands close together, keep elbows at your sides, and push the attachment down until arms are fully extended.",
	},
	{
		Name:         "Squats",
		Type:         "strength",
		MuscleGroup:  "legs",
		Difficulty:   "intermediate",
		Equipment:    "barbell, squat rack",
		Description:  "A compound exercise that targets the quadriceps, hamstrings, and glutes.",
		Instructions: "Stand with feet shoulder-width apart, barbell across upper back, bend knees and lower hips until thighs are parallel to the floor, then stand back up.",
	},
	{
		Name:         "Deadlifts",
		Type:         "strength",
		MuscleGroup:  "back",
		Difficulty:   "advanced",
		Equipment:    "barbell",
		Description:  "A compound exercise that works multiple muscle groups including the back, legs, and core.",
		Instructions: "Stand with feet hip-width apart, barbell over midfoot, bend at hips and knees to grip the bar, keep back straight, and lift the bar by extending hips and knees.",
	},
}

var seedQuests = []domain.NewQuest{
	{Title: "First Steps", Description: "Complete a 10-minute walk.", Tier: "F"},
	{Title: "Awakening", Description: "Do a 20-minute full-body session.", Tier: "E"},
	{Title: "Iron Will", Description: "Finish a 30-minute strength workout.", Tier: "D"},
}
