package fakers

import (
	"github.com/chicstyle/go-boutique/app/helpers"
	"github.com/chicstyle/go-boutique/app/models"
	"github.com/go-faker/faker/v4"
)

func UserFaker() *models.User {
	return &models.User{
		Name:     faker.Name(),
		Email:    faker.Email(),
		Password: helpers.HashPassword("password"),
		Role:     models.RoleCustomer,
	}
}

func AdminFaker() *models.User {
	return &models.User{
		Name:     "Store Admin",
		Email:    "admin@go-boutique.local",
		Password: helpers.HashPassword("admin123"),
		Role:     models.RoleAdmin,
	}
}
