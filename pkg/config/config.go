package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Org     OrgConfig
	Billing BillingConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// OrgConfig identidad de la organización (única; el sistema no es multi-tenant).
// Aparece en el encabezado del PDF y en la página de pago.
type OrgConfig struct {
	Name    string
	Address string
	Email   string
	Website string
	Phone   string
	Bank    BankConfig
	// QRPayload es el contenido codificado en el QR de pago (página 2 del PDF).
	QRPayload string
}

// BankConfig datos de transferencia bancaria impresos en la página de pago.
type BankConfig struct {
	BankName      string
	AccountName   string
	AccountNumber string
	IBAN          string
	SwiftCode     string
	Branch        string
}

// BillingConfig parámetros del ciclo de documentos.
type BillingConfig struct {
	CounterFloor   int64 // primer consecutivo emitido (QTN-1000 / INV-1000)
	InvoiceDueDays int   // vencimiento de factura: creación + N días
	QuoteValidDays int   // vigencia de cotización: creación + N días
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	userInfo := url.UserPassword(c.User, c.Password)
	u := &url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo .env).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, JWT_SECRET, ORG_NAME, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "console-api"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "console"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "console-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Org: OrgConfig{
			Name:    getString(v, "ORG_NAME", "Cloud One Technologies"),
			Address: getString(v, "ORG_ADDRESS", "Office 304 Haji Nasser Building, Dubai"),
			Email:   getString(v, "ORG_EMAIL", "info@cloudone.tech"),
			Website: getString(v, "ORG_WEBSITE", "www.cloudone.tech"),
			Phone:   getString(v, "ORG_PHONE", ""),
			Bank: BankConfig{
				BankName:      getString(v, "BANK_NAME", "Emirates NBD"),
				AccountName:   getString(v, "BANK_ACCOUNT_NAME", "Cloud One Technologies"),
				AccountNumber: getString(v, "BANK_ACCOUNT_NUMBER", "10189423567"),
				IBAN:          getString(v, "BANK_IBAN", "AE22 0260 0000 0101 8942 3567"),
				SwiftCode:     getString(v, "BANK_SWIFT", "EBILAEAD"),
				Branch:        getString(v, "BANK_BRANCH", "Al Sabkha Branch, Dubai"),
			},
			QRPayload: getString(v, "PAYMENT_QR_PAYLOAD", "GPay-CloudOneTechnologies-Payment"),
		},
		Billing: BillingConfig{
			CounterFloor:   int64(getInt(v, "BILLING_COUNTER_FLOOR", 1000)),
			InvoiceDueDays: getInt(v, "BILLING_INVOICE_DUE_DAYS", 15),
			QuoteValidDays: getInt(v, "BILLING_QUOTE_VALID_DAYS", 30),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
