package email

import (
	"github.com/google/wire"

	"jobmeet/config"
)

// ProvideEmailSender is a Wire provider function that creates a Sender
func ProvideEmailSender(cfg *config.Config) *Sender {
	return NewEmailSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFrom, cfg.TemplatesDir)
}

var Set = wire.NewSet(ProvideEmailSender)
