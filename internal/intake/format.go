package intake

import (
	"fmt"

	"actbot/internal/acts"
)

const Confirmation = "✅ Дані збережено."

// FormatNotification renders the message the administrator gets for a new act.
func FormatNotification(a acts.Act) string {
	return fmt.Sprintf("🔔 Новий акт від %s\n📅 %s 🕒 %s\n📍 %s\n📄 %s", a.SubmitterName, a.Date, a.Time, a.Location, a.Description)
}
