package config

import "os"

type Config struct {
	Port            string
	MongoURI        string
	Secret          string
	SmtpServer      string
	SmtpServerPort  int
	SmtpEmail       string
	SmtpPassword    string
	StripeSecretKey string
}

func NewConfig() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	smtpServer := os.Getenv("SMTP_SERVER")
	if smtpServer == "" {
		smtpServer = "smtp.gmail.com"
	}

	return &Config{
		Port:            port,
		MongoURI:        os.Getenv("MONGO_URI"),
		Secret:          os.Getenv("SECRET_KEY"),
		SmtpServer:      smtpServer,
		SmtpServerPort:  587,
		SmtpEmail:       os.Getenv("SMTP_AUTH_MAIL"),
		SmtpPassword:    os.Getenv("SMTP_AUTH_PASSWORD"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
	}
}
