package mailer

// Config holds lesson email presentation settings.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	SubjectPrefix string `env:"MAIL_SUBJECT_PREFIX" envDefault:"JS Deep Dive"`
	Heading       string `env:"MAIL_HEADING" envDefault:"JavaScript Daily"`
	FooterNote    string `env:"MAIL_FOOTER_NOTE" envDefault:"Automated via GitHub Actions"`
}
