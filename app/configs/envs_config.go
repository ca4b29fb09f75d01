package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string

	JWTSecret string

	OrderCurrency string

	StripeSecretKey   string
	RazorpayKeyID     string
	RazorpayKeySecret string

	AppURL string
	AppEnv string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	env := ENV{
		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            os.Getenv("DB_PORT"),
		Port:              os.Getenv("APP_PORT"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		OrderCurrency:     os.Getenv("ORDER_CURRENCY"),
		StripeSecretKey:   os.Getenv("STRIPE_SECRET_KEY"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		AppURL:            os.Getenv("APP_URL"),
		AppEnv:            os.Getenv("APP_ENV"),
	}

	if env.Port == "" {
		env.Port = ":8000"
	}
	if env.OrderCurrency == "" {
		env.OrderCurrency = "INR"
	}

	return env
}

var LoadENV = LoadEnv()
