package mailer

import (
	"fmt"
	"strings"

	"farm-app/config"
	"farm-app/services"

	"gopkg.in/gomail.v2"
)

// SendAlertDigest mails the current alert list to the configured recipients.
// A digest with no alerts is skipped, not sent empty.
func SendAlertDigest(alerts []services.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	if config.SMTPHost == "" || len(config.AlertRecipients) == 0 {
		return fmt.Errorf("mailer is not configured")
	}

	var rows strings.Builder
	for _, a := range alerts {
		rows.WriteString(fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%s</td>
				<td>%s</td>
				<td>%s</td>
			</tr>`, a.Severity, a.Title, a.Description, a.Date))
	}

	body := fmt.Sprintf(`
		<h3>Farm Records - Active Alerts</h3>
		<p>There are %d active alerts.</p>
		<table border="1" cellpadding="5" cellspacing="0">
			<tr>
				<th>Severity</th>
				<th>Alert</th>
				<th>Detail</th>
				<th>Date</th>
			</tr>%s
		</table>
	`, len(alerts), rows.String())

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", config.AlertRecipients...)
	msg.SetHeader("Subject", fmt.Sprintf("Farm Alerts Digest (%d active)", len(alerts)))
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	return dialer.DialAndSend(msg)
}
