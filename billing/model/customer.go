package model

import (
	"time"
)

type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type Connection struct {
	ID               string    `json:"id"`
	CustomerID       string    `json:"customer_id"`
	TypeCode         string    `json:"type_code"`
	TypeDescription  string    `json:"type_description"`
	Division         string    `json:"division"`
	Subdivision      string    `json:"subdivision"`
	InstallationDate time.Time `json:"installation_date"`
	MeterType        string    `json:"meter_type"`
}
