package ids

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

type UUIDGenerator struct{}

func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

type RealClock struct{}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// RC<unixミリ秒><0-999>
type ReceiptIDGenerator struct{}

func (g *ReceiptIDGenerator) NewReceiptID(now time.Time) string {
	return fmt.Sprintf("RC%d%d", now.UnixMilli(), rand.Intn(1000))
}

// BK<unixミリ秒>
type BookingCodeGenerator struct{}

func (g *BookingCodeGenerator) NewBookingCode(now time.Time) string {
	return fmt.Sprintf("BK%d", now.UnixMilli())
}
