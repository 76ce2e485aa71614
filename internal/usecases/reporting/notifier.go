package reporting

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-insights-api/internal/config"
	"github.com/vfg2006/creator-insights-api/internal/domain"
)

// Notifier avisa o dono da conta que um relatório ficou pronto. O envio
// é melhor esforço: falha de notificação nunca desfaz a compilação.
type Notifier interface {
	NotifyReportReady(user *domain.User, report *domain.ReportRecord) error
}

type smtpNotifier struct {
	appConfig *config.Config
}

func NewSMTPNotifier(appConfig *config.Config) Notifier {
	return &smtpNotifier{appConfig: appConfig}
}

func (n *smtpNotifier) NotifyReportReady(user *domain.User, report *domain.ReportRecord) error {
	email := n.appConfig.Email
	if !email.Enabled {
		logrus.WithField("report_id", report.ID).Debug("Notificação por e-mail desabilitada, pulando envio")
		return nil
	}

	if user == nil || user.Email == "" {
		logrus.WithField("report_id", report.ID).Warn("Relatório pronto sem destinatário de e-mail")
		return nil
	}

	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\r\n", email.From)
	fmt.Fprintf(&body, "To: %s\r\n", user.Email)
	fmt.Fprintf(&body, "Subject: Seu relatório está pronto: %s\r\n", report.Title)
	body.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&body, "Olá %s,\r\n\r\n", user.Name)
	fmt.Fprintf(&body, "O relatório \"%s\" referente ao período de %s a %s já está disponível.\r\n",
		report.Title,
		report.PeriodStart.Format("02/01/2006"),
		report.PeriodEnd.Format("02/01/2006"),
	)

	addr := fmt.Sprintf("%s:%s", email.SMTPHost, email.SMTPPort)
	auth := smtp.PlainAuth("", email.From, email.Password, email.SMTPHost)

	if err := smtp.SendMail(addr, auth, email.From, []string{user.Email}, []byte(body.String())); err != nil {
		return fmt.Errorf("erro ao enviar e-mail de notificação: %w", err)
	}

	return nil
}
