package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-booking-api/internal/models"
	"github.com/noah-isme/tutor-booking-api/internal/repository"
	"github.com/noah-isme/tutor-booking-api/internal/service"
	"github.com/noah-isme/tutor-booking-api/pkg/config"
)

var departmentSubjects = map[string][]string{
	"Mathematics":      {"Calculus", "Linear Algebra", "Statistics", "Discrete Math"},
	"Computer Science": {"Data Structures", "Algorithms", "Operating Systems", "Databases"},
	"Physics":          {"Mechanics", "Electromagnetism", "Thermodynamics"},
	"Chemistry":        {"Organic Chemistry", "Physical Chemistry"},
	"Economics":        {"Microeconomics", "Macroeconomics", "Econometrics"},
}

var departments = []string{"Mathematics", "Computer Science", "Physics", "Chemistry", "Economics"}

var programs = []string{"Computer Science", "Mathematics", "Physics", "Economics", "Biology"}

// Stores bundles the in-memory stores populated by the demo fixture.
type Stores struct {
	Tutors   *repository.TutorStore
	Students *repository.StudentStore
	Patterns *repository.PatternStore
	Slots    *repository.SlotStore
	Sessions *repository.SessionStore
}

// Load populates the stores with demo data. The fixture is random by
// default; a non-zero RandomSeed makes it reproducible. Randomized
// booked counts are applied here, in the demo layer only; slot
// generation itself stays deterministic.
func Load(ctx context.Context, cfg config.SeedConfig, stores Stores, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	faker := gofakeit.New(uint64(cfg.RandomSeed))

	tutorCount := cfg.Tutors
	if tutorCount <= 0 {
		tutorCount = 12
	}
	studentCount := cfg.Students
	if studentCount <= 0 {
		studentCount = 30
	}

	tutors := make([]models.Tutor, 0, tutorCount)
	var patterns []models.WeeklyPattern
	for i := 0; i < tutorCount; i++ {
		tutor := buildTutor(faker, i)
		tutors = append(tutors, tutor)
		patterns = append(patterns, buildPatterns(faker, tutor)...)
	}

	students := make([]models.Student, 0, studentCount)
	for i := 0; i < studentCount; i++ {
		students = append(students, buildStudent(faker, i))
	}

	now := time.Now()
	sessions := buildSessions(faker, tutors, students, now)

	stores.Tutors.Initialize(ctx, tutors)
	stores.Students.Initialize(ctx, students)
	stores.Patterns.Initialize(ctx, patterns)
	stores.Sessions.Initialize(ctx, sessions)

	booked := 0
	if cfg.RandomizeBooked {
		booked = randomizeBookedCounts(ctx, faker, patterns, stores.Slots, now)
	}

	logger.Info("demo fixture loaded",
		zap.Int("tutors", len(tutors)),
		zap.Int("students", len(students)),
		zap.Int("patterns", len(patterns)),
		zap.Int("sessions", len(sessions)),
		zap.Int("prebooked_slots", booked))
}

func buildTutor(faker *gofakeit.Faker, i int) models.Tutor {
	department := departments[faker.Number(0, len(departments)-1)]
	pool := departmentSubjects[department]
	subjectCount := faker.Number(1, len(pool))
	subjects := append([]string(nil), pool[:subjectCount]...)

	modalities := []models.Modality{models.ModalityOnline, models.ModalityInPerson}
	if faker.Number(0, 3) == 0 {
		modalities = modalities[:1]
	}

	name := faker.Name()
	return models.Tutor{
		ID:            fmt.Sprintf("tutor-%d", i+1),
		Name:          name,
		Email:         faker.Email(),
		Department:    department,
		Subjects:      subjects,
		Rating:        float64(faker.Number(30, 50)) / 10,
		TotalSessions: faker.Number(0, 250),
		Bio:           faker.Sentence(12),
		Modalities:    modalities,
	}
}

func buildStudent(faker *gofakeit.Faker, i int) models.Student {
	return models.Student{
		ID:            fmt.Sprintf("student-%d", i+1),
		Name:          faker.Name(),
		Email:         faker.Email(),
		StudentNumber: fmt.Sprintf("S%06d", faker.Number(100000, 999999)),
		Program:       programs[faker.Number(0, len(programs)-1)],
		Year:          faker.Number(1, 4),
	}
}

func buildPatterns(faker *gofakeit.Faker, tutor models.Tutor) []models.WeeklyPattern {
	count := faker.Number(1, 2)
	patterns := make([]models.WeeklyPattern, 0, count)
	for i := 0; i < count; i++ {
		startHour := faker.Number(8, 14)
		modality := tutor.Modalities[faker.Number(0, len(tutor.Modalities)-1)]
		patterns = append(patterns, models.WeeklyPattern{
			ID:              faker.UUID(),
			TutorID:         tutor.ID,
			Label:           fmt.Sprintf("%s office hours", tutor.Department),
			Days:            pickDays(faker),
			StartHour:       startHour,
			EndHour:         startHour + faker.Number(2, 4),
			DurationMinutes: []int{30, 45, 60}[faker.Number(0, 2)],
			Modality:        modality,
			Capacity:        faker.Number(1, 4),
			Active:          true,
		})
	}
	return patterns
}

func pickDays(faker *gofakeit.Faker) []int {
	options := [][]int{{1, 3}, {2, 4}, {1, 3, 5}, {2, 4, 6}, {0, 6}}
	return options[faker.Number(0, len(options)-1)]
}

func buildSessions(faker *gofakeit.Faker, tutors []models.Tutor, students []models.Student, now time.Time) []models.Session {
	var sessions []models.Session
	for i := 0; i < len(students)/2; i++ {
		tutor := tutors[faker.Number(0, len(tutors)-1)]
		student := students[faker.Number(0, len(students)-1)]
		subject := tutor.Subjects[faker.Number(0, len(tutor.Subjects)-1)]
		modality := tutor.Modalities[faker.Number(0, len(tutor.Modalities)-1)]

		// Half upcoming, half completed and awaiting wrap-up or feedback.
		var start time.Time
		status := models.SessionUpcoming
		attendance := models.AttendancePending
		if i%2 == 0 {
			start = now.AddDate(0, 0, faker.Number(2, 14)).Truncate(time.Hour)
		} else {
			start = now.AddDate(0, 0, -faker.Number(1, 14)).Truncate(time.Hour)
			status = models.SessionCompleted
			if faker.Number(0, 1) == 0 {
				attendance = models.AttendancePresent
			}
		}

		session := models.Session{
			ID:         faker.UUID(),
			TutorID:    tutor.ID,
			StudentIDs: []string{student.ID},
			CourseCode: fmt.Sprintf("%s-%d", subject[:3], faker.Number(100, 499)),
			CourseName: subject,
			Modality:   modality,
			Status:     status,
			Start:      start,
			End:        start.Add(time.Hour),
			Attendance: attendance,
		}
		if modality == models.ModalityOnline {
			session.MeetingURL = faker.URL()
		} else {
			session.Location = fmt.Sprintf("Library room %d", faker.Number(100, 320))
		}
		if status == models.SessionCompleted && attendance == models.AttendancePresent {
			session.FeedbackSubmitted = faker.Number(0, 1) == 0
			session.TutorNotes = faker.Sentence(8)
		}
		sessions = append(sessions, session)
	}
	return sessions
}

// randomizeBookedCounts materializes a random subset of this week's
// generated slots with demo booking counts.
func randomizeBookedCounts(ctx context.Context, faker *gofakeit.Faker, patterns []models.WeeklyPattern, slots *repository.SlotStore, now time.Time) int {
	weekStart := service.MondayOf(now)
	booked := 0
	for _, p := range patterns {
		for _, slot := range p.GenerateSlotsForWeek(weekStart) {
			if faker.Number(0, 2) != 0 {
				continue
			}
			slot.Booked = faker.Number(0, slot.Capacity)
			slots.Save(ctx, slot)
			booked++
		}
	}
	return booked
}
