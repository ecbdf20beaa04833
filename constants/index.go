package constants

const (
	ERROR_INPUT                = "Invalid input"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Could not read request data"
	DATA_INPUT_IS_NOT_NUMBER   = "Id must be a positive integer"
	ERROR_CREATE               = "Could not create record"
	ERROR_UPDATE               = "Could not update record"
	ERROR_DELETE               = "Could not delete record"
)

const (
	MOVIE_NOT_FOUND        = "Could not find any movie with id=%d."
	MOVIE_NOT_FOUND_SHORT  = "No movies with id=%d"
	SCREEN_NOT_FOUND       = "No screen with id = %d"
	CUSTOMER_NOT_FOUND     = "Could not find any customer with id=%d."
	SCREENING_NOT_FOUND    = "Could not find any screening with id=%d."
	TICKET_NOT_FOUND       = "Could not find any ticket with id=%d."
	NOT_ENOUGH_SEATS       = "Screening %d has only %d free seats"
	AUDITORIUM_TOO_SMALL   = "Screen %d has only %d seats"
	MOVIE_HAS_TICKETS      = "Movie %d has screenings with sold tickets"
	CUSTOMER_HAS_TICKETS   = "Customer %d still holds tickets"
	CUSTOMER_EMAIL_EXISTED = "Email already in use"
	TICKET_NOT_ACTIVE      = "Ticket %d is %s and can no longer be cancelled"
)

const (
	SCREENING_SCHEDULED = "SCHEDULED"
	SCREENING_STARTED   = "STARTED"

	TICKET_BOOKED    = "BOOKED"
	TICKET_EXPIRED   = "EXPIRED"
	TICKET_CANCELLED = "CANCELLED"
)
