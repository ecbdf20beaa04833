package helper

import (
	"cinema_api/constants"
	"cinema_api/model"
	"cinema_api/repository"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tickets expire this long after their screening started.
const TicketGracePeriod = 30 * time.Minute

// freeSeatsQuery selects up to n unreserved seat rows of a screening. Rows
// locked by a concurrent booking are skipped so each booking takes different
// seats.
func freeSeatsQuery(tx *gorm.DB, screeningId uint, n int) *gorm.DB {
	return tx.Model(&model.ScreeningSeat{}).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("screening_id = ? AND reserved = ?", screeningId, false).
		Order("id").
		Limit(n)
}

// BookTicket reserves numSeats free seat rows of the screening for the
// customer.
func BookTicket(db *gorm.DB, customerId, screeningId uint, numSeats int) (*model.Ticket, error) {
	var ticket *model.Ticket
	err := db.Transaction(func(tx *gorm.DB) error {
		customer, err := repository.New[model.Customer](tx).GetById(customerId)
		if err != nil {
			return err
		}
		if customer == nil {
			return ErrCustomerNotFound
		}
		screening, err := repository.New[model.Screening](tx).GetById(screeningId)
		if err != nil {
			return err
		}
		if screening == nil {
			return ErrScreeningNotFound
		}

		var free []model.ScreeningSeat
		if err := freeSeatsQuery(tx, screeningId, numSeats).Find(&free).Error; err != nil {
			return err
		}
		if len(free) < numSeats {
			return &SeatsError{ScreeningId: screeningId, Free: len(free)}
		}

		ticket = &model.Ticket{
			TicketCode:  "TKT-" + uuid.New().String()[:10],
			NumSeats:    numSeats,
			Status:      constants.TICKET_BOOKED,
			CustomerId:  customerId,
			ScreeningId: screeningId,
		}
		if _, err := repository.New[model.Ticket](tx).Insert(ticket); err != nil {
			return err
		}

		ids := make([]uint, 0, len(free))
		for _, s := range free {
			ids = append(ids, s.ID)
		}
		return tx.Model(&model.ScreeningSeat{}).
			Where("id IN ?", ids).
			Updates(map[string]any{"reserved": true, "ticket_id": ticket.ID}).Error
	})
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

// CancelTicket marks a booked ticket cancelled and frees its seats. Expired
// or already cancelled tickets are rejected with a *TicketStatusError.
func CancelTicket(db *gorm.DB, id uint) (*model.Ticket, error) {
	var ticket *model.Ticket
	err := db.Transaction(func(tx *gorm.DB) error {
		tickets := repository.New[model.Ticket](tx)
		t, err := tickets.GetById(id)
		if err != nil {
			return err
		}
		if t == nil {
			return ErrTicketNotFound
		}
		if t.Status != constants.TICKET_BOOKED {
			return &TicketStatusError{TicketId: t.ID, Status: t.Status}
		}
		if err := tx.Model(&model.ScreeningSeat{}).
			Where("ticket_id = ?", t.ID).
			Updates(map[string]any{"reserved": false, "ticket_id": nil}).Error; err != nil {
			return err
		}
		t.Status = constants.TICKET_CANCELLED
		ticket, err = tickets.Update(t)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

// ExpireTickets marks booked tickets of screenings that started more than
// TicketGracePeriod before now as expired.
func ExpireTickets(db *gorm.DB, now time.Time) (int64, error) {
	started := db.Model(&model.Screening{}).Select("id").Where("starts_at < ?", now.Add(-TicketGracePeriod))
	res := db.Model(&model.Ticket{}).
		Where("status = ? AND screening_id IN (?)", constants.TICKET_BOOKED, started).
		Update("status", constants.TICKET_EXPIRED)
	return res.RowsAffected, res.Error
}

func StartScreenings(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Model(&model.Screening{}).
		Where("status = ? AND starts_at < ?", constants.SCREENING_SCHEDULED, now).
		Update("status", constants.SCREENING_STARTED)
	return res.RowsAffected, res.Error
}
