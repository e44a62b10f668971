package utils

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/wneessen/go-mail"

	"pizzamia_back_end/internal/models"
)

// GeneratePickupQR genera il QR di ritiro (payload: id ordine) come data URI
// pronto per un tag <img>.
func GeneratePickupQR(orderID string) (string, error) {
	png, err := qrcode.Encode(orderID, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// SendOrderConfirmationEmail invia la ricevuta HTML con il QR di ritiro.
// Best-effort: il chiamante la lancia in goroutine e ignora l'esito.
func SendOrderConfirmationEmail(to string, snap models.OrderSnapshot) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return fmt.Errorf("SMTP_HOST non configurato")
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@pizzamia.it"
	}

	qr, err := GeneratePickupQR(snap.OrderID)
	if err != nil {
		log.Printf("⚠️ QR di ritiro non generato per %s: %v", snap.OrderID, err)
		qr = ""
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Conferma del tuo ordine — Pizza Mia")
	msg.SetBodyString(mail.TypeTextHTML, GenerateOrderConfirmationHTML(snap, qr))

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Invio email di conferma a", to)
	return client.DialAndSend(msg)
}

// GenerateOrderConfirmationHTML compone la ricevuta HTML dell'ordine.
func GenerateOrderConfirmationHTML(snap models.OrderSnapshot, qrDataURI string) string {
	itemsHTML := ""
	for _, item := range snap.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.2f€</td>
				<td>%.2f€</td>
			</tr>`, item.Name, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}

	qrHTML := ""
	if qrDataURI != "" {
		qrHTML = fmt.Sprintf(`
		<p>Mostra questo codice al ritiro:</p>
		<img src="%s" alt="QR ritiro" width="160" height="160" />`, qrDataURI)
	}

	when := time.UnixMilli(snap.CreatedAt).Format("02/01/2006 15:04")

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="it">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Conferma ordine</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #fdf6ee; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #c62828;">🍕 Grazie per il tuo ordine!</h2>
		<p>Ciao,</p>
		<p>abbiamo ricevuto il tuo ordine <strong>%s</strong> del %s. Ecco il riepilogo:</p>
		<table style="width: 100%%; border-collapse: collapse;">
			<thead>
				<tr style="text-align: left; border-bottom: 1px solid #ddd;">
					<th>Articolo</th><th>Qtà</th><th>Prezzo</th><th>Totale</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>
		<p style="font-size: 18px;"><strong>Totale: %.2f€</strong></p>
		%s
		<p style="color: #888; font-size: 12px;">Pizza Mia — forno a legna dal 1987</p>
	</div>
</body>
</html>`, snap.OrderID, when, itemsHTML, models.Total(snap.Items), qrHTML)
}
