package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"
	"restaurant/internal/usecase"
	"restaurant/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var bookingNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func newBookingUsecase(bookings *BookingRepoMock) *usecase.BookingUsecase {
	return usecase.NewBookingUsecase(
		bookings,
		validator.NewBookingValidator(),
		stubBookingCodes{code: "BK1780308000000"},
		fixedClock{t: bookingNow},
		zap.NewNop(),
	)
}

// Createは受け取ったものにIDを付けて返す
func echoCreate(bookings *BookingRepoMock) {
	bookings.On("Create", mock.Anything, mock.Anything).Return(func(_ context.Context, b model.Booking) model.Booking {
		b.ID = 1
		return b
	}, nil)
}

func TestCreateTableBooking(t *testing.T) {
	bookings := new(BookingRepoMock)
	bookings.On("Create", mock.Anything, mock.MatchedBy(func(b model.Booking) bool {
		return b.BookingCode == "BK1780308000000" &&
			b.Type == model.BookingTypeTable &&
			b.SessionID == "s1" &&
			b.Guests == 4 &&
			!b.IsConfirmed
	})).Return(model.Booking{ID: 1, BookingCode: "BK1780308000000", Type: model.BookingTypeTable}, nil).Once()

	uc := newBookingUsecase(bookings)

	b, err := uc.CreateTableBooking(context.Background(), "s1", usecase.TableBookingInput{
		Date:            "2026-06-02",
		Time:            "19:00",
		Guests:          4,
		Name:            " Sam ",
		Email:           "sam@example.com",
		Phone:           "+1 (555) 123-4567",
		SpecialRequests: "Window table preferred",
	})
	require.NoError(t, err)
	assert.Equal(t, "BK1780308000000", b.BookingCode)
	bookings.AssertExpectations(t)
}

func TestCreateTableBooking_Invalid(t *testing.T) {
	bookings := new(BookingRepoMock)
	uc := newBookingUsecase(bookings)

	_, err := uc.CreateTableBooking(context.Background(), "s1", usecase.TableBookingInput{
		Date:   "2026-05-31",
		Time:   "19:00",
		Guests: 4,
		Name:   "Sam",
		Email:  "sam@example.com",
		Phone:  "5551234567",
	})
	assertHTTPStatus(t, err, http.StatusBadRequest, "past")
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	_, err = uc.CreateTableBooking(context.Background(), "", usecase.TableBookingInput{})
	assertHTTPStatus(t, err, http.StatusUnauthorized, "unauthorized")
}

func TestCreateEventBooking_DefaultsContactToPhone(t *testing.T) {
	bookings := new(BookingRepoMock)
	echoCreate(bookings)
	uc := newBookingUsecase(bookings)

	b, err := uc.CreateEventBooking(context.Background(), "s1", usecase.EventBookingInput{
		EventDate:   "2026-07-10",
		EventTime:   "18:00",
		GuestCount:  30,
		EventType:   "Corporate Event",
		MenuPackage: "platinum",
		Budget:      "$5000+",
		Name:        "Kim",
		Email:       "kim@example.com",
		Phone:       "555 987 6543",
	})
	require.NoError(t, err)
	assert.Equal(t, model.BookingTypeEvent, b.Type)
	assert.Equal(t, "phone", b.ContactMethod)
	assert.Equal(t, "platinum", b.MenuPackage)
	assert.Equal(t, int64(30), b.Guests)
	assert.Equal(t, "2026-07-10", b.Date)
}

func TestCreateEventBooking_TooFewGuests(t *testing.T) {
	uc := newBookingUsecase(new(BookingRepoMock))

	_, err := uc.CreateEventBooking(context.Background(), "s1", usecase.EventBookingInput{
		EventDate:   "2026-07-10",
		EventTime:   "18:00",
		GuestCount:  8,
		EventType:   "Anniversary",
		MenuPackage: "silver",
		Budget:      "$500",
		Name:        "Kim",
		Email:       "kim@example.com",
		Phone:       "555 987 6543",
	})
	assertHTTPStatus(t, err, http.StatusBadRequest, "minimum number of guests is 10")
}

func TestCreateBooking_CodeConflict(t *testing.T) {
	bookings := new(BookingRepoMock)
	bookings.On("Create", mock.Anything, mock.Anything).Return(model.Booking{}, repo.ErrConflict).Once()
	uc := newBookingUsecase(bookings)

	_, err := uc.CreateTableBooking(context.Background(), "s1", usecase.TableBookingInput{
		Date:   "2026-06-01",
		Time:   "11:00",
		Guests: 2,
		Name:   "Sam",
		Email:  "sam@example.com",
		Phone:  "5551234567",
	})
	assertHTTPStatus(t, err, http.StatusConflict, "booking code conflict")
}

func TestListBookings(t *testing.T) {
	bookings := new(BookingRepoMock)
	bookings.On("ListBySessionID", mock.Anything, "s1").Return(nil, nil).Once()
	bookings.On("ListBySessionID", mock.Anything, "s2").Return(nil, errDB).Once()
	uc := newBookingUsecase(bookings)

	list, err := uc.ListBookings(context.Background(), "s1")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = uc.ListBookings(context.Background(), "s2")
	assertHTTPStatus(t, err, http.StatusInternalServerError, "db error")
}

func TestEventOptions(t *testing.T) {
	uc := newBookingUsecase(new(BookingRepoMock))

	opts := uc.EventOptions()
	assert.Len(t, opts.EventTypes, 8)
	require.Len(t, opts.MenuPackages, 3)
	assert.Equal(t, int64(6500), opts.MenuPackages[1].PricePerPerson)
	assert.Equal(t, "11:00", opts.TimeSlots[0])
	assert.Equal(t, "21:30", opts.TimeSlots[len(opts.TimeSlots)-1])
}
