package config

import (
	"time"

	"github.com/DIMO-Network/shared/pkg/db"
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// WhatsApp Cloud API send credentials.
	WhatsAppAccessToken   string `env:"WHATSAPP_ACCESS_TOKEN"`
	WhatsAppPhoneNumberID string `env:"WHATSAPP_PHONE_NUMBER_ID"`
	WhatsAppAPIURL        string `env:"WHATSAPP_API_URL"`
	WebhookVerifyToken    string `env:"WEBHOOK_VERIFY_TOKEN"`

	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// KnowledgeCacheTTL of zero disables the lookup cache.
	KnowledgeCacheTTL time.Duration `env:"KNOWLEDGE_CACHE_TTL" envDefault:"30s"`

	KafkaBrokers      string `env:"KAFKA_BROKERS"`
	ConversationTopic string `env:"CONVERSATION_TOPIC"`

	DB db.Settings `envPrefix:"DB_"`
}

const (
	DefaultWhatsAppAPIURL    = "https://graph.facebook.com/v19.0"
	DefaultConversationTopic = "topic.cruisebot.conversations"
	DefaultServiceName       = "cruise-bot"
)

// ApplyDefaults fills in values that were not provided through the environment.
func (s *Settings) ApplyDefaults() {
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.ServiceName == "" {
		s.ServiceName = DefaultServiceName
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.MonPort == 0 {
		s.MonPort = 8888
	}
	if s.WhatsAppAPIURL == "" {
		s.WhatsAppAPIURL = DefaultWhatsAppAPIURL
	}
	if s.ConversationTopic == "" {
		s.ConversationTopic = DefaultConversationTopic
	}
}
