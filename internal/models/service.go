package models

import "time"

// ServiceConfig contains runtime options for talking to the estimation service.
type ServiceConfig struct {
	Endpoint        string
	Timeout         time.Duration
	DefaultCurrency string
	Proxy           string
	UserAgent       string
}
