package clipper

import (
	"fmt"
	"io"
	"net/smtp"
	"strings"

	"github.com/kingb12/sprouts-coupons/lib/scrapers/sprouts"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jordan-wright/email"
)

// only the first few clipped offers get named in the email, nobody
// reads two hundred lines of coupons
const reportClippedCap = 20

func BuildReport(offers []sprouts.Offer) string {
	var clipped, available []sprouts.Offer
	for _, o := range offers {
		if o.IsClipped {
			clipped = append(clipped, o)
		} else {
			available = append(available, o)
		}
	}

	var b strings.Builder
	b.WriteString("Sprouts Coupons Report\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")
	fmt.Fprintf(&b, "Total offers: %d\n", len(offers))
	fmt.Fprintf(&b, "Clipped: %d\n", len(clipped))
	fmt.Fprintf(&b, "Available: %d\n\n", len(available))

	if len(clipped) > 0 {
		b.WriteString("Clipped Coupons:\n")
		b.WriteString(strings.Repeat("-", 20) + "\n")
		for i, offer := range clipped {
			if i == reportClippedCap {
				fmt.Fprintf(&b, "  ... and %d more\n", len(clipped)-reportClippedCap)
				break
			}
			fmt.Fprintf(&b, "  - %s\n", offer.Name)
		}
	}

	return b.String()
}

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

func RenderOffers(out io.Writer, offers []sprouts.Offer) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Status", "Name", "Description", "Expires"})
	for _, o := range offers {
		t.AppendRow(table.Row{o.Status(), o.Name, o.Description, o.ExpiresOn})
	}
	t.Render()
}

func RenderRuns(out io.Writer, runs []RunSummary) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Run", "Time", "Total", "Clipped", "Available", "Newly Clipped"})
	for _, r := range runs {
		t.AppendRow(table.Row{
			r.Id,
			r.Time.Format("2006-01-02 15:04"),
			r.Total,
			r.Clipped,
			r.Available,
			r.NewlyClipped,
		})
	}
	t.Render()
}

type SmtpConfig struct {
	Server       string `json:"server"`
	Port         int    `json:"port"`
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
	Recipient    string `json:"recipient"`
}

func (c SmtpConfig) Configured() bool {
	return c.Server != "" && c.EmailAddress != "" && c.Recipient != ""
}

// SendReport emails the text report. delivery failure is the
// caller's problem to log, the clips themselves already happened.
func SendReport(result RunResult, config SmtpConfig) error {
	mail := email.NewEmail()
	mail.From = fmt.Sprintf("Sprouts Clipper <%s>", config.EmailAddress)
	mail.To = []string{config.Recipient}
	mail.Subject = fmt.Sprintf("Sprouts coupons: %d clipped", len(result.NewlyClipped))
	mail.Text = []byte(BuildReport(result.Offers))

	addr := fmt.Sprintf("%s:%d", config.Server, config.Port)
	err := mail.Send(
		addr,
		smtp.PlainAuth("", config.EmailAddress, config.Password, config.Server),
	)
	if err != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		return mail.Send(addr, nil)
	}
	return err
}
