// Package model defines the core data types shared across the application.
package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for invoice dates.
const DateLayout = "2006-01-02"

// InvoiceStatus describes where an invoice sits in its payment lifecycle.
type InvoiceStatus string

// Valid invoice statuses.
const (
	StatusPaid    InvoiceStatus = "paid"
	StatusPending InvoiceStatus = "pending"
	StatusOverdue InvoiceStatus = "overdue"
)

// Valid reports whether the status is one of the known values.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case StatusPaid, StatusPending, StatusOverdue:
		return true
	}
	return false
}

// Invoice is a single uploaded billing record.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoiceNumber"`
	ClientName    string        `json:"clientName"`
	Amount        float64       `json:"amount"`
	Date          string        `json:"date"`
	FileName      string        `json:"fileName"`
	FileURI       string        `json:"fileUri"`
	FileType      string        `json:"fileType"`
	UploadDate    string        `json:"uploadDate"`
	Status        InvoiceStatus `json:"status,omitempty"`
}

// BusinessDate parses the invoice's business date.
func (i *Invoice) BusinessDate() (time.Time, error) {
	t, err := time.Parse(DateLayout, i.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid invoice date %q: %w", i.Date, err)
	}
	return t, nil
}

// NewInvoiceID returns a timestamp-derived identifier. IDs are only
// required to be unique in practice, not guaranteed.
func NewInvoiceID() string {
	return fmt.Sprintf("%d", time.Now().UnixMilli())
}
