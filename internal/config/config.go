package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	AppPort string
	AppEnv  string

	JWTSecret      string
	LocalStorePath string

	// Mobile money merchant wallet quoted in the payment instructions.
	MerchantNumber string

	// Flat shipping fee added on checkout, in whole Taka.
	ShippingFlatFee int64
}

const defaultShippingFee = 120

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:          os.Getenv("DB_HOST"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBPort:          os.Getenv("DB_PORT"),
		AppPort:         os.Getenv("APP_PORT"),
		AppEnv:          os.Getenv("APP_ENV"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		LocalStorePath:  os.Getenv("LOCAL_STORE_PATH"),
		MerchantNumber:  os.Getenv("MERCHANT_NUMBER"),
		ShippingFlatFee: defaultShippingFee,
	}

	if v := os.Getenv("SHIPPING_FLAT_FEE"); v != "" {
		fee, err := strconv.ParseInt(v, 10, 64)
		if err != nil || fee < 0 {
			log.Fatalf("invalid SHIPPING_FLAT_FEE: %q", v)
		}
		cfg.ShippingFlatFee = fee
	}

	if cfg.LocalStorePath == "" {
		cfg.LocalStorePath = "localstore.json"
	}

	if cfg.MerchantNumber == "" {
		log.Fatal("MERCHANT_NUMBER not set; payment instructions need the merchant wallet")
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
