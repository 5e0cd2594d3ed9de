package payment

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Method is the payment channel chosen at checkout.
type Method string

const (
	MethodCreditCard Method = "CREDIT_CARD"
	MethodPayPal     Method = "PAYPAL"
	MethodStripe     Method = "STRIPE"
)

// Payment is a single transaction against a booking.
type Payment struct {
	ID              int64           `json:"id"`
	BookingID       int64           `json:"bookingId"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	Method          Method          `json:"paymentMethod"`
	TransactionDate time.Time       `json:"transactionDate"`
}

// Group aggregates the payments made for one booking.
type Group struct {
	BookingID             int64           `json:"bookingId"`
	TotalAmount           decimal.Decimal `json:"totalAmount"`
	Status                string          `json:"status"`
	LatestTransactionDate time.Time       `json:"latestTransactionDate"`
	Payments              []Payment       `json:"payments"`
}

// GroupByBooking folds payments into one Group per booking. The group status
// follows the most recent transaction; groups keep first-seen order.
func GroupByBooking(payments []Payment) []Group {
	index := make(map[int64]int)
	var groups []Group
	for _, p := range payments {
		i, ok := index[p.BookingID]
		if !ok {
			index[p.BookingID] = len(groups)
			groups = append(groups, Group{
				BookingID:             p.BookingID,
				TotalAmount:           p.Amount,
				Status:                p.Status,
				LatestTransactionDate: p.TransactionDate,
				Payments:              []Payment{p},
			})
			continue
		}
		g := &groups[i]
		g.TotalAmount = g.TotalAmount.Add(p.Amount)
		g.Payments = append(g.Payments, p)
		if p.TransactionDate.After(g.LatestTransactionDate) {
			g.LatestTransactionDate = p.TransactionDate
			g.Status = p.Status
		}
	}
	return groups
}

// SortByLatest orders groups by their most recent transaction, newest first.
func SortByLatest(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].LatestTransactionDate.After(groups[j].LatestTransactionDate)
	})
}

// Total sums the amounts of the given payments.
func Total(payments []Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.Amount)
	}
	return sum
}
