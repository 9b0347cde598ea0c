package main

import (
	"fmt"
	"log"
	"time"

	"cinebook/internal/catalog"
	"cinebook/internal/seats"
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/database"
	"cinebook/internal/users"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Cinebook Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"payments",
		"booking_items",
		"bookings",
		"seat_holds",
		"seats",
		"showtimes",
		"seat_variants",
		"auditoriums",
		"theaters",
		"addresses",
		"films",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return err
	}

	for _, table := range tables {
		if err := tx.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to clean table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

func (s *Seeder) SeedAll() error {
	seededUsers, err := s.seedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	fmt.Printf("  👤 %d users\n", len(seededUsers))

	films, err := s.seedFilms()
	if err != nil {
		return fmt.Errorf("failed to seed films: %w", err)
	}
	fmt.Printf("  🎬 %d films\n", len(films))

	auditorium, variants, err := s.seedTheater()
	if err != nil {
		return fmt.Errorf("failed to seed theater: %w", err)
	}

	seatCount, err := s.seedSeats(auditorium, variants)
	if err != nil {
		return fmt.Errorf("failed to seed seats: %w", err)
	}
	fmt.Printf("  💺 %d seats\n", seatCount)

	showtimeCount, err := s.seedShowTimes(films, auditorium)
	if err != nil {
		return fmt.Errorf("failed to seed showtimes: %w", err)
	}
	fmt.Printf("  🕗 %d showtimes\n", showtimeCount)

	return nil
}

func (s *Seeder) seedUsers() ([]users.User, error) {
	seededUsers := []users.User{
		{Email: "admin@cinebook.local", Username: "admin", Role: string(users.RoleAdmin)},
		{Email: "alice@example.com", Username: "alice", Role: string(users.RoleUser)},
		{Email: "bob@example.com", Username: "bob", Role: string(users.RoleUser)},
	}
	if err := s.db.PostgreSQL.Create(&seededUsers).Error; err != nil {
		return nil, err
	}
	return seededUsers, nil
}

func (s *Seeder) seedFilms() ([]catalog.Film, error) {
	films := []catalog.Film{
		{
			Name:        "The Long Night",
			Director:    "Minh Tran",
			Genre:       "Thriller",
			Duration:    128,
			Price:       50000,
			ReleaseDate: time.Now().AddDate(0, -1, 0),
		},
		{
			Name:        "Paper Planes",
			Director:    "Ha Le",
			Genre:       "Romance",
			Duration:    104,
			Price:       45000,
			ReleaseDate: time.Now().AddDate(0, 0, -10),
		},
	}
	if err := s.db.PostgreSQL.Create(&films).Error; err != nil {
		return nil, err
	}
	return films, nil
}

func (s *Seeder) seedTheater() (*catalog.Auditorium, []catalog.SeatVariant, error) {
	address := catalog.Address{
		StreetNumber: "12",
		StreetName:   "Nguyen Hue",
		City:         "Ho Chi Minh City",
	}
	if err := s.db.PostgreSQL.Create(&address).Error; err != nil {
		return nil, nil, err
	}

	theater := catalog.Theater{
		Name:      "Cinebook Central",
		AddressID: address.ID,
	}
	if err := s.db.PostgreSQL.Create(&theater).Error; err != nil {
		return nil, nil, err
	}

	auditorium := catalog.Auditorium{
		Number:    1,
		TheaterID: theater.ID,
	}
	if err := s.db.PostgreSQL.Create(&auditorium).Error; err != nil {
		return nil, nil, err
	}

	variants := []catalog.SeatVariant{
		{SeatType: "STANDARD", BasePrice: 100000, Bonus: 0},
		{SeatType: "VIP", BasePrice: 100000, Bonus: 10000},
	}
	if err := s.db.PostgreSQL.Create(&variants).Error; err != nil {
		return nil, nil, err
	}

	return &auditorium, variants, nil
}

// seedSeats lays out rows A-E with 10 seats each; the back row is VIP
func (s *Seeder) seedSeats(auditorium *catalog.Auditorium, variants []catalog.SeatVariant) (int, error) {
	standard, vip := variants[0], variants[1]

	rows := []string{"A", "B", "C", "D", "E"}
	var allSeats []seats.Seat
	for _, row := range rows {
		variant := standard
		if row == "E" {
			variant = vip
		}
		for number := 1; number <= 10; number++ {
			allSeats = append(allSeats, seats.Seat{
				AuditoriumID:  auditorium.ID,
				SeatVariantID: variant.ID,
				Row:           row,
				Number:        number,
			})
		}
	}

	if err := s.db.PostgreSQL.Create(&allSeats).Error; err != nil {
		return 0, err
	}
	return len(allSeats), nil
}

func (s *Seeder) seedShowTimes(films []catalog.Film, auditorium *catalog.Auditorium) (int, error) {
	var showtimes []catalog.ShowTime
	slots := []int{14, 17, 20}

	for day := 0; day < 3; day++ {
		date := time.Now().AddDate(0, 0, day)
		for i, hour := range slots {
			film := films[i%len(films)]
			start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, time.Local)
			showtimes = append(showtimes, catalog.ShowTime{
				FilmID:       film.ID,
				AuditoriumID: auditorium.ID,
				Date:         start.Truncate(24 * time.Hour),
				StartTime:    start,
				EndTime:      start.Add(time.Duration(film.Duration) * time.Minute),
			})
		}
	}

	if err := s.db.PostgreSQL.Create(&showtimes).Error; err != nil {
		return 0, err
	}
	return len(showtimes), nil
}
