package main

import (
	"context"
	"database/sql"
	"time"

	"burokrat-site/config"
	"burokrat-site/domain/contact"
	"burokrat-site/pkg/logger"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logger.Get().Fatal("Failed to load config", err)
	}
	logger.Init(logger.Config{Level: logger.LevelInfo, Environment: cfg.Env})
	log := logger.Get().WithComponent("seeder")

	db, err := config.InitDB(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	repo := contact.NewRepository(db)
	ctx := context.Background()

	// Seed submissions
	submissions := []contact.Submission{
		{Name: "Иван Петров", Email: "ivan.petrov@example.ru", Phone: "+7 (913) 555-01-01", Subject: "Печать для ООО", Message: "Нужна круглая печать для новой организации. Сколько займёт изготовление?", CreatedAt: time.Now().Add(-2 * time.Hour), EmailSent: true},
		{Name: "Мария Смирнова", Email: "m.smirnova@example.ru", Message: "Подскажите, есть ли в наличии оснастка Trodat 4642?", CreatedAt: time.Now().Add(-26 * time.Hour), EmailSent: true},
		{Name: "ООО «Вектор»", Email: "office@vector.example", Phone: "+7 (3852) 55-00-00", Company: "ООО «Вектор»", Subject: "Счёт на канцтовары", Message: "Просим выставить счёт на бумагу A4, 20 пачек.", CreatedAt: time.Now().Add(-3 * 24 * time.Hour), EmailSent: false, EmailError: sql.NullString{String: "dial tcp: i/o timeout", Valid: true}},
		{Name: "Алексей", Email: "alex@example.com", Message: "Делаете гравировку на металле?", CreatedAt: parseDate("10 Sep 2024"), EmailSent: true},
		{Name: "Екатерина Орлова", Email: "e.orlova@example.ru", Subject: "Факсимиле", Message: "Хочу заказать факсимиле подписи, какие нужны документы?", CreatedAt: parseDate("02 Oct 2024"), EmailSent: false, EmailError: sql.NullString{String: "535 Authentication failed", Valid: true}},
	}

	for _, s := range submissions {
		s.CreatedAt = s.CreatedAt.UTC()
		id, err := repo.Insert(ctx, &s)
		if err != nil {
			log.Fatal("Failed to seed submission", err, logger.Email(s.Email))
		}
		log.Info("Seeded submission", logger.SubmissionID(id), logger.Email(s.Email))
	}

	log.Info("Seeding completed", logger.Count(len(submissions)))
}

func parseDate(dateStr string) time.Time {
	layout := "02 Jan 2006"
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		logger.Get().Fatal("Failed to parse date", err, logger.String("date", dateStr))
	}
	return t
}
