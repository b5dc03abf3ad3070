package invoice

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// shareBaseURL is where a real deployment would host shared invoices.
// Nothing is ever uploaded there; the link only has to look plausible.
const shareBaseURL = "https://invoiceapp.example.com/share"

// ShareLink produces a shareable URL for an invoice. The token is
// random per call and backed by no server-side resource.
func ShareLink(invoiceID string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s/%s?token=%s", shareBaseURL, invoiceID, token)
}
