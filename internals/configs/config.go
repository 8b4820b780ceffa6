package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	CronSecret       string

	// Web Push (VAPID)
	VapidPublicKey  string
	VapidPrivateKey string
	VapidSubject    string

	// Twilio (WhatsApp)
	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioWhatsAppFrom string

	// Fuso horário da igreja (todas as janelas de evento são comparadas nele)
	AppTimezone string
	appLocation *time.Location
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Arquivo .env não encontrado, usando ENV do sistema")
		} else {
			log.Println("✅ Arquivo .env carregado!")
		}
	} else {
		log.Println("🚀 Rodando no Railway, usando ENV do sistema")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	CronSecret = GetEnv("CRON_SECRET")

	VapidPublicKey = GetEnv("VAPID_PUBLIC_KEY")
	VapidPrivateKey = GetEnv("VAPID_PRIVATE_KEY")
	VapidSubject = GetEnvOr("VAPID_SUBJECT", "mailto:contato@voluntarios.app")

	TwilioAccountSID = GetEnv("TWILIO_ACCOUNT_SID")
	TwilioAuthToken = GetEnv("TWILIO_AUTH_TOKEN")
	TwilioWhatsAppFrom = GetEnv("TWILIO_WHATSAPP_FROM")

	AppTimezone = GetEnvOr("APP_TIMEZONE", "America/Sao_Paulo")
	loc, err := time.LoadLocation(AppTimezone)
	if err != nil {
		log.Printf("❌ APP_TIMEZONE inválido (%s), usando UTC: %v", AppTimezone, err)
		loc = time.UTC
	}
	appLocation = loc

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET não foi configurado!")
	} else {
		log.Println("✅ JWT_SECRET carregado.")
	}

	if CronSecret == "" {
		log.Println("⚠️ CRON_SECRET vazio - endpoints de cron ficarão bloqueados")
	}

	if VapidPublicKey == "" || VapidPrivateKey == "" {
		log.Println("⚠️ Chaves VAPID ausentes - push notifications desativadas")
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Location retorna o fuso configurado do deployment. Nunca usar time.Local
// nas comparações de janela de evento.
func Location() *time.Location {
	if appLocation == nil {
		return time.UTC
	}
	return appLocation
}
