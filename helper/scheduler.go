package helper

import (
	"cinema_api/config"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

var (
	ticketScheduler    gocron.Scheduler
	screeningScheduler *cron.Cron
)

func expireTicketsJob(db *gorm.DB) {
	n, err := ExpireTickets(db, time.Now())
	if err != nil {
		log.Printf("[CRON] expire tickets: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[CRON] %d tickets expired", n)
	}
}

func startScreeningsJob(db *gorm.DB) {
	n, err := StartScreenings(db, time.Now())
	if err != nil {
		log.Printf("[CRON] start screenings: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[CRON] %d screenings started", n)
	}
}

func StartTicketExpiryScheduler(db *gorm.DB) error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	interval := config.ConfigDuration("TICKET_EXPIRY_INTERVAL", time.Minute)
	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(expireTicketsJob, db),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}
	ticketScheduler = s
	s.Start()
	log.Printf("Ticket expiry scheduler started (every %s)", interval)
	return nil
}

func StartScreeningStatusScheduler(db *gorm.DB) error {
	screeningScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	if _, err := screeningScheduler.AddFunc("*/5 * * * *", func() { startScreeningsJob(db) }); err != nil {
		return err
	}
	screeningScheduler.Start()
	log.Println("Screening status scheduler started (every 5 minutes)")
	return nil
}

func StopSchedulers() {
	if ticketScheduler != nil {
		if err := ticketScheduler.Shutdown(); err != nil {
			log.Printf("ticket scheduler shutdown: %v", err)
		}
	}
	if screeningScheduler != nil {
		<-screeningScheduler.Stop().Done()
	}
	log.Println("Schedulers stopped")
}
