package model

// Scope carries the caller's session identity through every use case call.
type Scope struct {
	SessionID string
	UserID    string // set by the upstream identity proxy, may be empty
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
