package config

import "os"

type GGAuthConfig struct {
	ForceCampusDomain bool
	CampusDomain      string
}

func NewGGAuthConfig() *GGAuthConfig {
	return &GGAuthConfig{
		ForceCampusDomain: os.Getenv("FORCE_CAMPUS_DOMAIN") == "true",
		CampusDomain:      os.Getenv("CAMPUS_EMAIL_DOMAIN"),
	}
}
