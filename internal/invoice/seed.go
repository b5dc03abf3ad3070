package invoice

import "github.com/Veraticus/faktura/internal/model"

// MockUser is the demo account every fresh install can sign in with.
func MockUser() model.User {
	return model.User{
		ID:      "1",
		Email:   "demo@example.com",
		Name:    "Demo User",
		Company: "Demo Company",
		Role:    model.RoleUser,
	}
}

// MockMonthlyRevenue is the fallback revenue series for the dashboard
// chart, indexed January through December.
func MockMonthlyRevenue() [12]float64 {
	return [12]float64{2500, 3200, 4100, 3800, 5200, 4700, 6100, 5800, 7200, 6500, 8100, 7500}
}

// MockInvoices is the deterministic dataset seeded into an empty store
// so the app has something to show before any real upload.
func MockInvoices() []model.Invoice {
	return []model.Invoice{
		{
			ID:            "1",
			InvoiceNumber: "INV-2024-001",
			ClientName:    "Acme Corporation",
			Amount:        2500.00,
			Date:          "2024-03-15",
			FileName:      "invoice_001.pdf",
			FileURI:       "file:///mock/invoice_001.pdf",
			FileType:      "application/pdf",
			UploadDate:    "2024-03-15",
			Status:        model.StatusPaid,
		},
		{
			ID:            "2",
			InvoiceNumber: "INV-2024-002",
			ClientName:    "Tech Solutions Ltd",
			Amount:        3750.00,
			Date:          "2024-03-10",
			FileName:      "invoice_002.pdf",
			FileURI:       "file:///mock/invoice_002.pdf",
			FileType:      "application/pdf",
			UploadDate:    "2024-03-10",
			Status:        model.StatusPending,
		},
		{
			ID:            "3",
			InvoiceNumber: "INV-2024-003",
			ClientName:    "Global Services Inc",
			Amount:        5200.00,
			Date:          "2024-03-05",
			FileName:      "invoice_003.pdf",
			FileURI:       "file:///mock/invoice_003.pdf",
			FileType:      "application/pdf",
			UploadDate:    "2024-03-05",
			Status:        model.StatusOverdue,
		},
		{
			ID:            "4",
			InvoiceNumber: "INV-2024-004",
			ClientName:    "Innovative Systems",
			Amount:        1800.00,
			Date:          "2024-03-01",
			FileName:      "invoice_004.pdf",
			FileURI:       "file:///mock/invoice_004.pdf",
			FileType:      "application/pdf",
			UploadDate:    "2024-03-01",
			Status:        model.StatusPaid,
		},
		{
			ID:            "5",
			InvoiceNumber: "INV-2024-005",
			ClientName:    "Digital Solutions",
			Amount:        4200.00,
			Date:          "2024-02-28",
			FileName:      "invoice_005.pdf",
			FileURI:       "file:///mock/invoice_005.pdf",
			FileType:      "application/pdf",
			UploadDate:    "2024-02-28",
			Status:        model.StatusPending,
		},
		{
			ID:            "6",
			InvoiceNumber: "INV-2024-006",
			ClientName:    "Smart Technologies",
			Amount:        3100.00,
			Date:          "2024-02-25",
			FileName:      "invoice_006.pdf",
			FileURI:       "file:///mock/invoice_006.pdf",
			FileType:      "application/pdf",
			UploadDate:    "2024-02-25",
			Status:        model.StatusPaid,
		},
		{
			ID:            "7",
			InvoiceNumber: "INV-2024-007",
			ClientName:    "Future Systems",
			Amount:        4800.00,
			Date:          "2024-02-20",
			FileName:      "invoice_007.pdf",
			FileURI:       "file:///mock/invoice_007.pdf",
			FileType:      "application/pdf",
			UploadDate:    "2024-02-20",
			Status:        model.StatusOverdue,
		},
		{
			ID:            "8",
			InvoiceNumber: "INV-2024-008",
			ClientName:    "Advanced Solutions",
			Amount:        2900.00,
			Date:          "2024-02-15",
			FileName:      "invoice_008.pdf",
			FileURI:       "file:///mock/invoice_008.pdf",
			FileType:      "application/pdf",
			UploadDate:    "2024-02-15",
			Status:        model.StatusPaid,
		},
	}
}
