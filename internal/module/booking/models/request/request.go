package request

type Availability struct {
	RoomCategoryID   string `query:"room_category_id" validate:"required,uuid"`
	CheckIn          string `query:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut         string `query:"check_out" validate:"required,datetime=2006-01-02"`
	ExcludeBookingID string `query:"exclude_booking_id" validate:"omitempty,uuid"`
}

type Quote struct {
	RoomCategoryID string `json:"room_category_id" validate:"required,uuid"`
	CheckIn        string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut       string `json:"check_out" validate:"required,datetime=2006-01-02"`
	NumAdults      int    `json:"num_adults" validate:"required,min=1"`
	NumChildren    int    `json:"num_children" validate:"min=0"`
	NumRooms       int    `json:"num_rooms" validate:"omitempty,min=1"`
	MealPlan       string `json:"meal_plan" validate:"omitempty,oneof=room_only breakfast_included half_board full_board"`
}

type CreateBooking struct {
	GuestName       string `json:"guest_name" validate:"required,max=200"`
	GuestEmail      string `json:"guest_email" validate:"required,email"`
	GuestPhone      string `json:"guest_phone" validate:"omitempty,max=40"`
	GuestCountry    string `json:"guest_country" validate:"omitempty,max=80"`
	UserID          string `json:"user_id" validate:"omitempty,uuid"`
	RoomCategoryID  string `json:"room_category_id" validate:"required,uuid"`
	CheckIn         string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut        string `json:"check_out" validate:"required,datetime=2006-01-02"`
	NumAdults       int    `json:"num_adults" validate:"required,min=1"`
	NumChildren     int    `json:"num_children" validate:"min=0"`
	NumRooms        int    `json:"num_rooms" validate:"omitempty,min=1"`
	MealPlan        string `json:"meal_plan" validate:"omitempty,oneof=room_only breakfast_included half_board full_board"`
	IsEnquiryOnly   bool   `json:"is_enquiry_only"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=2000"`
}

type UpdateStatus struct {
	Status string `json:"status" validate:"required,oneof=new_enquiry enquiry_responded quote_sent booking_confirmed checked_in checked_out cancelled no_show"`
}

type UpdateNotes struct {
	InternalNotes string `json:"internal_notes" validate:"max=2000"`
}

type ListBookings struct {
	Status         string `query:"status" validate:"omitempty,oneof=new_enquiry enquiry_responded quote_sent booking_confirmed checked_in checked_out cancelled no_show"`
	RoomCategoryID string `query:"room_category_id" validate:"omitempty,uuid"`
	From           string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To             string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Page           int    `query:"page" validate:"omitempty,min=1"`
	PageSize       int    `query:"page_size" validate:"omitempty,min=1,max=200"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}

// BookingEvent is published on the booking events topic after commit.
type BookingEvent struct {
	Type             string `json:"type" validate:"required"`
	BookingID        string `json:"booking_id" validate:"required,uuid"`
	BookingReference string `json:"booking_reference" validate:"required"`
	Status           string `json:"status" validate:"required"`
	PreviousStatus   string `json:"previous_status,omitempty"`
	GuestName        string `json:"guest_name"`
	GuestEmail       string `json:"guest_email" validate:"required,email"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	GrandTotal       string `json:"grand_total"`
	Currency         string `json:"currency"`
	OccurredAt       string `json:"occurred_at"`
}
